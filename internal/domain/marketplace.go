package domain

import "time"

// ListingStatus enumerates marketplace item availability.
type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "Available"
	ListingStatusSold      ListingStatus = "Sold"
	ListingStatusReserved  ListingStatus = "Reserved"
)

// ValidListingStatus reports whether s is an enumerated listing state.
func ValidListingStatus(s ListingStatus) bool {
	switch s {
	case ListingStatusAvailable, ListingStatusSold, ListingStatusReserved:
		return true
	}
	return false
}

// ListingCategory enumerates item categories.
type ListingCategory string

const (
	ListingCategoryFurniture   ListingCategory = "Furniture"
	ListingCategoryElectronics ListingCategory = "Electronics"
	ListingCategoryClothing    ListingCategory = "Clothing"
	ListingCategoryBooks       ListingCategory = "Books"
	ListingCategoryVehicle     ListingCategory = "Vehicle"
	ListingCategoryOther       ListingCategory = "Other"
)

// ValidListingCategory reports whether c is an enumerated category.
func ValidListingCategory(c ListingCategory) bool {
	switch c {
	case ListingCategoryFurniture, ListingCategoryElectronics, ListingCategoryClothing,
		ListingCategoryBooks, ListingCategoryVehicle, ListingCategoryOther:
		return true
	}
	return false
}

// ListingCondition enumerates item wear grades.
type ListingCondition string

const (
	ListingConditionNew       ListingCondition = "New"
	ListingConditionLikeNew   ListingCondition = "Like New"
	ListingConditionUsedGood  ListingCondition = "Used - Good"
	ListingConditionUsedFair  ListingCondition = "Used - Fair"
	ListingConditionPartsOnly ListingCondition = "Parts Only"
)

// ValidListingCondition reports whether c is an enumerated condition.
func ValidListingCondition(c ListingCondition) bool {
	switch c {
	case ListingConditionNew, ListingConditionLikeNew, ListingConditionUsedGood,
		ListingConditionUsedFair, ListingConditionPartsOnly:
		return true
	}
	return false
}

// MarketplaceItem is a resident-to-resident sale listing.
type MarketplaceItem struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Category    ListingCategory
	Condition   ListingCondition
	ImageURL    string
	SellerID    string
	Status      ListingStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Seller *ResidentRef
}
