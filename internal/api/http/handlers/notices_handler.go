package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// NoticesHandler exposes the announcement board.
type NoticesHandler struct {
	notices *service.NoticeService
}

// NewNoticesHandler constructs handler.
func NewNoticesHandler(noticeService *service.NoticeService) *NoticesHandler {
	return &NoticesHandler{notices: noticeService}
}

// Publish handles POST /notices.
func (h *NoticesHandler) Publish(c *fiber.Ctx) error {
	admin, err := adminFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	notice, err := h.notices.PublishNotice(c.Context(), admin.ID, req.Title, req.Body)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusCreated, dto.NewNoticeResponse(notice))
}

// List handles GET /notices/user through the cache.
func (h *NoticesHandler) List(c *fiber.Ctx) error {
	notices, err := h.notices.ListNotices(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewNoticeListResponse(notices))
}

// ListAdmin handles GET /notices/admin.
func (h *NoticesHandler) ListAdmin(c *fiber.Ctx) error {
	notices, err := h.notices.ListNoticesFresh(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewNoticeListResponse(notices))
}
