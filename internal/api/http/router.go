package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/http/handlers"
	"github.com/spec-kit/society-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Dues           *handlers.DuesHandler
	Bookings       *handlers.BookingsHandler
	GuestPasses    *handlers.GuestPassHandler
	Tickets        *handlers.TicketsHandler
	AdminTickets   *handlers.AdminTicketsHandler
	Polls          *handlers.PollsHandler
	Marketplace    *handlers.MarketplaceHandler
	Notices        *handlers.NoticesHandler
	Maintenance    *handlers.MaintenanceHandler
	Expenses       *handlers.ExpensesHandler
	Payments       *handlers.PaymentsHandler
	Upload         *handlers.UploadHandler
	AuthMiddleware *auth.AuthMiddleware
	UploadDir      string
	UploadPath     string
}

// RegisterRoutes wires HTTP routes. Public routes come first; everything
// registered through the authed group requires a bearer token, with the
// role guard attached per route. Literal paths are registered ahead of
// parameterized siblings so they match first.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Static(cfg.UploadPath, cfg.UploadDir)

	app.Post("/auth/signup", cfg.Auth.Signup)
	app.Post("/auth/login", cfg.Auth.Login)

	authed := app.Group("", cfg.AuthMiddleware.Handle)
	resident := auth.RequireResident()
	admin := auth.RequireAdmin()
	anyRole := auth.RequireAnyRole()

	authed.Get("/user/profile", resident, cfg.Auth.Profile)
	authed.Get("/user/dues", resident, cfg.Auth.CurrentDue)

	authed.Post("/admin/dues", admin, cfg.Dues.Create)
	authed.Get("/admin/all-dues", admin, cfg.Dues.List)
	authed.Patch("/admin/dues/:id/status", admin, cfg.Dues.UpdateStatus)
	authed.Get("/admin/residents", admin, cfg.Auth.ListResidents)

	authed.Get("/bookings/amenities", anyRole, cfg.Bookings.Amenities)
	authed.Post("/bookings", resident, cfg.Bookings.Create)
	authed.Get("/bookings/my", resident, cfg.Bookings.ListMine)
	authed.Get("/bookings/all", admin, cfg.Bookings.ListAll)
	authed.Patch("/bookings/:id/cancel", resident, cfg.Bookings.Cancel)
	authed.Put("/bookings/:id/status", admin, cfg.Bookings.UpdateStatus)
	authed.Delete("/bookings/:id", admin, cfg.Bookings.Delete)

	authed.Post("/guestpass/request", resident, cfg.GuestPasses.Request)
	authed.Get("/guestpass/my", resident, cfg.GuestPasses.ListMine)
	authed.Get("/guestpass/all", admin, cfg.GuestPasses.ListAll)
	authed.Patch("/guestpass/:id/approve", admin, cfg.GuestPasses.Approve)
	authed.Patch("/guestpass/:id/reject", admin, cfg.GuestPasses.Reject)
	authed.Patch("/guestpass/:id/cancel", resident, cfg.GuestPasses.Cancel)

	authed.Post("/tickets", resident, cfg.Tickets.Create)
	authed.Get("/tickets/user", resident, cfg.Tickets.ListMine)
	authed.Get("/tickets/my", resident, cfg.Tickets.ListMine)
	authed.Get("/tickets/:id", resident, cfg.Tickets.Get)
	authed.Post("/tickets/:id/verify-close-otp", resident, cfg.Tickets.VerifyClose)
	authed.Get("/admin/tickets", admin, cfg.AdminTickets.List)
	authed.Get("/admin/tickets/overview", admin, cfg.AdminTickets.Overview)
	authed.Get("/admin/tickets/sla-alerts", admin, cfg.AdminTickets.SLAAlerts)
	authed.Patch("/admin/tickets/:id/assign", admin, cfg.AdminTickets.Assign)
	authed.Patch("/admin/tickets/:id/status", admin, cfg.AdminTickets.UpdateStatus)
	authed.Post("/admin/tickets/:id/request-close", admin, cfg.AdminTickets.RequestClose)

	authed.Post("/polls", admin, cfg.Polls.Create)
	authed.Get("/polls", resident, cfg.Polls.List)
	authed.Get("/polls/admin/all", admin, cfg.Polls.List)
	authed.Get("/polls/admin/:id", admin, cfg.Polls.Get)
	authed.Get("/polls/:id", resident, cfg.Polls.Get)
	authed.Post("/polls/vote/:pollId", resident, cfg.Polls.Vote)
	authed.Delete("/polls/:id", admin, cfg.Polls.Delete)

	authed.Post("/marketplace", resident, cfg.Marketplace.Create)
	authed.Get("/marketplace", resident, cfg.Marketplace.List)
	authed.Get("/marketplace/my-listings", resident, cfg.Marketplace.ListMine)
	authed.Get("/marketplace/:id", resident, cfg.Marketplace.Get)
	authed.Put("/marketplace/:id", resident, cfg.Marketplace.Update)
	authed.Delete("/marketplace/:id", resident, cfg.Marketplace.Delete)

	authed.Post("/notices", admin, cfg.Notices.Publish)
	authed.Get("/notices/admin", admin, cfg.Notices.ListAdmin)
	authed.Get("/notices/user", resident, cfg.Notices.List)

	authed.Post("/maintenance", admin, cfg.Maintenance.Create)
	authed.Get("/maintenance", anyRole, cfg.Maintenance.List)
	authed.Patch("/maintenance/:id/status", admin, cfg.Maintenance.UpdateStatus)
	authed.Post("/admin/maintenance-forecast", admin, cfg.Maintenance.Forecast)

	authed.Post("/expenses", admin, cfg.Expenses.Create)
	authed.Get("/expenses", admin, cfg.Expenses.List)

	authed.Post("/payment/create-order", resident, cfg.Payments.CreateOrder)
	authed.Post("/payment/verify-payment", resident, cfg.Payments.Verify)

	authed.Post("/upload", resident, cfg.Upload.Upload)
}
