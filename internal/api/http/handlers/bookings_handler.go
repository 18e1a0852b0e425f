package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// BookingsHandler exposes amenity reservation endpoints.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookingService}
}

// Amenities handles GET /bookings/amenities.
func (h *BookingsHandler) Amenities(c *fiber.Ctx) error {
	return dataResponse(c, http.StatusOK, h.bookings.Amenities())
}

// Create handles POST /bookings.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.bookings.CreateBooking(c.Context(), resident.ID, service.BookingCreateInput{
		AmenityName:      req.AmenityName,
		EventDescription: req.EventDescription,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
	})
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusCreated, dto.NewBookingResponse(booking))
}

// ListMine handles GET /bookings/my.
func (h *BookingsHandler) ListMine(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}
	bookings, err := h.bookings.ListMyBookings(c.Context(), resident.ID)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewBookingListResponse(bookings))
}

// Cancel handles PATCH /bookings/:id/cancel.
func (h *BookingsHandler) Cancel(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}
	booking, err := h.bookings.CancelBooking(c.Context(), resident.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewBookingResponse(booking))
}

// ListAll handles GET /bookings/all.
func (h *BookingsHandler) ListAll(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListAllBookings(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewBookingListResponse(bookings))
}

// Delete handles DELETE /bookings/:id.
func (h *BookingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.bookings.DeleteBooking(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, fiber.Map{"deleted": true})
}

// UpdateStatus handles PUT /bookings/:id/status.
func (h *BookingsHandler) UpdateStatus(c *fiber.Ctx) error {
	admin, err := adminFrom(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.bookings.SetStatus(c.Context(), admin.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewBookingResponse(booking))
}
