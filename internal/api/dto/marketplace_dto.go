package dto

import (
	"time"

	"github.com/spec-kit/society-service/internal/domain"
)

// ListingRequest payload for creating and editing listings.
type ListingRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Price       float64                 `json:"price"`
	Category    domain.ListingCategory  `json:"category"`
	Condition   domain.ListingCondition `json:"condition"`
	ImageURL    string                  `json:"imageUrl"`
	Status      domain.ListingStatus    `json:"status"`
}

// ListingResponse is the marketplace-item shape.
type ListingResponse struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description,omitempty"`
	Price       float64                 `json:"price"`
	Category    domain.ListingCategory  `json:"category"`
	Condition   domain.ListingCondition `json:"condition"`
	ImageURL    string                  `json:"imageUrl,omitempty"`
	Status      domain.ListingStatus    `json:"status"`
	Seller      *domain.ResidentRef     `json:"seller,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// NewListingResponse maps an item.
func NewListingResponse(item *domain.MarketplaceItem) ListingResponse {
	return ListingResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Condition:   item.Condition,
		ImageURL:    item.ImageURL,
		Status:      item.Status,
		Seller:      item.Seller,
		CreatedAt:   item.CreatedAt,
	}
}

// NewListingListResponse maps a slice of items.
func NewListingListResponse(items []domain.MarketplaceItem) []ListingResponse {
	out := make([]ListingResponse, 0, len(items))
	for i := range items {
		out = append(out, NewListingResponse(&items[i]))
	}
	return out
}
