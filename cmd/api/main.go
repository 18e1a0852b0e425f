package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/society-service/internal/api/http"
	"github.com/spec-kit/society-service/internal/api/http/handlers"
	"github.com/spec-kit/society-service/internal/auth"
	"github.com/spec-kit/society-service/internal/config"
	"github.com/spec-kit/society-service/internal/events"
	"github.com/spec-kit/society-service/internal/notify"
	"github.com/spec-kit/society-service/internal/observability"
	"github.com/spec-kit/society-service/internal/payment"
	"github.com/spec-kit/society-service/internal/persistence"
	"github.com/spec-kit/society-service/internal/repository"
	"github.com/spec-kit/society-service/internal/service"
	"github.com/spec-kit/society-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	residentRepo := repository.NewResidentRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	dueRepo := repository.NewDueRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	guestPassRepo := repository.NewGuestPassRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	pollRepo := repository.NewPollRepository(pool)
	marketplaceRepo := repository.NewMarketplaceRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)
	maintenanceRepo := repository.NewMaintenanceRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)

	var sender notify.Sender
	if cfg.Notify.AMQPURL != "" {
		sender = notify.NewAMQPSender(cfg.Notify.AMQPURL, cfg.Notify.SMSQueue, logger)
	} else {
		sender = notify.NewLogSender(logger)
	}

	dispatcher := events.NewInMemoryDispatcher()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authService := service.NewAuthService(residentRepo, adminRepo, tokens, cfg.Auth.BcryptCost, logger)
	dueService := service.NewDueService(dueRepo, residentRepo, dispatcher)
	bookingService := service.NewBookingService(bookingRepo, dispatcher)
	guestPassService := service.NewGuestPassService(guestPassRepo, dispatcher)
	ticketService := service.NewTicketService(service.TicketDependencies{
		Tickets:          ticketRepo,
		Residents:        residentRepo,
		Sender:           sender,
		Dispatcher:       dispatcher,
		OTPTTL:           cfg.Notify.OTPTTL(),
		DeliveryRequired: cfg.Notify.DeliveryRequired,
		Logger:           logger,
	})
	pollService := service.NewPollService(pollRepo)
	marketplaceService := service.NewMarketplaceService(marketplaceRepo)
	noticeService := service.NewNoticeService(noticeRepo, redis, cfg.Redis.NoticeCacheTTL())
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, cfg.ML)
	expenseService := service.NewExpenseService(expenseRepo)
	gateway := payment.NewClient(cfg.Payment)
	paymentService := service.NewPaymentService(gateway, dueRepo, dueService)

	if err := authService.EnsureDefaultAdmin(ctx, cfg.Auth.DefaultAdminID, cfg.Auth.DefaultAdminPassword); err != nil {
		logger.Fatal("failed to seed default admin", zap.Error(err))
	}

	notificationService := service.NewNotificationService(dispatcher, sender, residentRepo, logger)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(tokens, residentRepo, adminRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: int(cfg.Upload.MaxSizeBytes) + 1024*1024,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, dueService),
		Dues:           handlers.NewDuesHandler(dueService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		GuestPasses:    handlers.NewGuestPassHandler(guestPassService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		AdminTickets:   handlers.NewAdminTicketsHandler(ticketService),
		Polls:          handlers.NewPollsHandler(pollService),
		Marketplace:    handlers.NewMarketplaceHandler(marketplaceService),
		Notices:        handlers.NewNoticesHandler(noticeService),
		Maintenance:    handlers.NewMaintenanceHandler(maintenanceService),
		Expenses:       handlers.NewExpensesHandler(expenseService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		Upload:         handlers.NewUploadHandler(cfg.Upload),
		AuthMiddleware: authMiddleware,
		UploadDir:      cfg.Upload.Dir,
		UploadPath:     cfg.Upload.PublicPath,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
