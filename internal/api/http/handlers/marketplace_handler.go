package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// MarketplaceHandler exposes resident marketplace endpoints.
type MarketplaceHandler struct {
	market *service.MarketplaceService
}

// NewMarketplaceHandler constructs handler.
func NewMarketplaceHandler(marketService *service.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{market: marketService}
}

// Create handles POST /marketplace.
func (h *MarketplaceHandler) Create(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}

	var req dto.ListingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.market.CreateListing(c.Context(), resident.ID, service.ListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusCreated, dto.NewListingResponse(item))
}

// List handles GET /marketplace.
func (h *MarketplaceHandler) List(c *fiber.Ctx) error {
	items, err := h.market.ListAvailable(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewListingListResponse(items))
}

// ListMine handles GET /marketplace/my-listings.
func (h *MarketplaceHandler) ListMine(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}
	items, err := h.market.ListMine(c.Context(), resident.ID)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewListingListResponse(items))
}

// Get handles GET /marketplace/:id.
func (h *MarketplaceHandler) Get(c *fiber.Ctx) error {
	item, err := h.market.GetListing(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewListingResponse(item))
}

// Update handles PUT /marketplace/:id.
func (h *MarketplaceHandler) Update(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}

	var req dto.ListingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.market.UpdateListing(c.Context(), resident.ID, c.Params("id"), service.ListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		ImageURL:    req.ImageURL,
	}, req.Status)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewListingResponse(item))
}

// Delete handles DELETE /marketplace/:id.
func (h *MarketplaceHandler) Delete(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}
	if err := h.market.DeleteListing(c.Context(), resident.ID, c.Params("id")); err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, fiber.Map{"deleted": true})
}
