package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// PollsHandler exposes community ballot endpoints.
type PollsHandler struct {
	polls *service.PollService
}

// NewPollsHandler constructs handler.
func NewPollsHandler(pollService *service.PollService) *PollsHandler {
	return &PollsHandler{polls: pollService}
}

// Create handles POST /polls.
func (h *PollsHandler) Create(c *fiber.Ctx) error {
	admin, err := adminFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreatePollRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	poll, err := h.polls.CreatePoll(c.Context(), admin.ID, req.Question, req.Options)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusCreated, dto.NewPollResponse(poll))
}

// List handles GET /polls and GET /polls/admin/all.
func (h *PollsHandler) List(c *fiber.Ctx) error {
	polls, err := h.polls.ListPolls(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewPollListResponse(polls))
}

// Get handles GET /polls/:id and GET /polls/admin/:id.
func (h *PollsHandler) Get(c *fiber.Ctx) error {
	poll, err := h.polls.GetPoll(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewPollResponse(poll))
}

// Vote handles POST /polls/vote/:pollId.
func (h *PollsHandler) Vote(c *fiber.Ctx) error {
	var req dto.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	poll, err := h.polls.Vote(c.Context(), c.Params("pollId"), req.OptionIndex)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewPollResponse(poll))
}

// Delete handles DELETE /polls/:id.
func (h *PollsHandler) Delete(c *fiber.Ctx) error {
	if err := h.polls.DeletePoll(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, fiber.Map{"deleted": true})
}
