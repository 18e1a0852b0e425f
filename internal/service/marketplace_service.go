package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// MarketplaceService manages resident-to-resident sale listings.
type MarketplaceService struct {
	items repository.MarketplaceRepository
}

// NewMarketplaceService wires the marketplace service.
func NewMarketplaceService(items repository.MarketplaceRepository) *MarketplaceService {
	return &MarketplaceService{items: items}
}

// ListingInput describes a new or updated listing.
type ListingInput struct {
	Title       string
	Description string
	Price       float64
	Category    domain.ListingCategory
	Condition   domain.ListingCondition
	ImageURL    string
}

// CreateListing publishes an Available listing for the seller.
func (s *MarketplaceService) CreateListing(ctx context.Context, sellerID string, input ListingInput) (*domain.MarketplaceItem, error) {
	if err := validateListing(input); err != nil {
		return nil, err
	}

	item := &domain.MarketplaceItem{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Category:    input.Category,
		Condition:   input.Condition,
		ImageURL:    input.ImageURL,
		SellerID:    sellerID,
		Status:      domain.ListingStatusAvailable,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, apperrors.MapError(err)
	}
	return item, nil
}

// ListAvailable returns listings still for sale.
func (s *MarketplaceService) ListAvailable(ctx context.Context) ([]domain.MarketplaceItem, error) {
	items, err := s.items.ListAvailable(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// GetListing returns a single listing by id.
func (s *MarketplaceService) GetListing(ctx context.Context, itemID string) (*domain.MarketplaceItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("listing", map[string]any{"item_id": itemID})
		}
		return nil, apperrors.MapError(err)
	}
	return item, nil
}

// ListMine returns the seller's own listings regardless of status.
func (s *MarketplaceService) ListMine(ctx context.Context, sellerID string) ([]domain.MarketplaceItem, error) {
	items, err := s.items.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// UpdateListing edits a listing. Only the seller may update.
func (s *MarketplaceService) UpdateListing(ctx context.Context, sellerID, itemID string, input ListingInput, status domain.ListingStatus) (*domain.MarketplaceItem, error) {
	item, err := s.ownedItem(ctx, sellerID, itemID)
	if err != nil {
		return nil, err
	}
	if err := validateListing(input); err != nil {
		return nil, err
	}
	if status != "" && !domain.ValidListingStatus(status) {
		return nil, apperrors.NewValidationError("invalid listing status", map[string]any{"status": string(status)})
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.Price = input.Price
	item.Category = input.Category
	item.Condition = input.Condition
	if input.ImageURL != "" {
		item.ImageURL = input.ImageURL
	}
	if status != "" {
		item.Status = status
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, apperrors.MapError(err)
	}
	return item, nil
}

// DeleteListing removes a listing. Only the seller may delete.
func (s *MarketplaceService) DeleteListing(ctx context.Context, sellerID, itemID string) error {
	if _, err := s.ownedItem(ctx, sellerID, itemID); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, itemID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *MarketplaceService) ownedItem(ctx context.Context, sellerID, itemID string) (*domain.MarketplaceItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("listing", map[string]any{"item_id": itemID})
		}
		return nil, apperrors.MapError(err)
	}
	if item.SellerID != sellerID {
		return nil, apperrors.NewForbidden("only the seller may modify this listing")
	}
	return item, nil
}

func validateListing(input ListingInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return apperrors.NewValidationError("title is required", nil)
	}
	if input.Price < 0 {
		return apperrors.NewValidationError("price must not be negative", nil)
	}
	if !domain.ValidListingCategory(input.Category) {
		return apperrors.NewValidationError("invalid listing category", map[string]any{"category": string(input.Category)})
	}
	if !domain.ValidListingCondition(input.Condition) {
		return apperrors.NewValidationError("invalid listing condition", map[string]any{"condition": string(input.Condition)})
	}
	return nil
}
