package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItem       = "pantry item added successfully"
	MessageSuccessUpdatePantryItem    = "pantry item updated successfully"
	MessageSuccessDeletePantryItem    = "pantry item deleted successfully"
	MessageSuccessGetPantryItems      = "pantry items retrieved successfully"
	MessageSuccessConsumePantryItem   = "pantry item consumed successfully"
	MessageSuccessTrackWaste          = "waste recorded successfully"
	MessageSuccessScanBarcode         = "barcode scan completed"
	MessageSuccessGetAnalytics        = "inventory analytics retrieved successfully"
	MessageSuccessExpiryCheck         = "expiry check completed"
	MessageSuccessGetCategories       = "categories retrieved successfully"
	MessageSuccessGetStorageLocations = "storage locations retrieved successfully"
	MessageSuccessUploadItemImage     = "item image uploaded successfully"

	MessageFailedAddPantryItem     = "failed to add pantry item"
	MessageFailedUpdatePantryItem  = "failed to update pantry item"
	MessageFailedDeletePantryItem  = "failed to delete pantry item"
	MessageFailedGetPantryItems    = "failed to retrieve pantry items"
	MessageFailedConsumePantryItem = "failed to consume pantry item"
	MessageFailedTrackWaste        = "failed to record waste"
	MessageFailedScanBarcode       = "failed to scan barcode"
	MessageFailedGetAnalytics      = "failed to retrieve inventory analytics"
	MessageFailedExpiryCheck       = "failed to run expiry check"
	MessageFailedUploadItemImage   = "failed to upload item image"

	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrInvalidWasteAmount = errors.New("waste amount must be positive")
)

// Closed sets exposed by the static lookup endpoints.
var (
	PantryCategories = []string{
		"produce", "dairy", "meat", "seafood", "grains", "bakery",
		"beverages", "snacks", "condiments", "frozen", "other",
	}

	StorageLocations = []string{
		"pantry", "fridge", "freezer", "counter", "cupboard",
	}
)

type (
	AddPantryItemRequest struct {
		Name            string   `json:"name" validate:"required"`
		Description     string   `json:"description"`
		Category        string   `json:"category" validate:"required"`
		StorageLocation string   `json:"storage_location" validate:"required"`
		Quantity        float64  `json:"quantity" validate:"min=0"`
		Unit            string   `json:"unit" validate:"required"`
		Price           *float64 `json:"price" validate:"omitempty,min=0"`
		Currency        string   `json:"currency"`
		Brand           string   `json:"brand"`
		Barcode         string   `json:"barcode"`
		PurchaseDate    string   `json:"purchase_date"`
		ExpiryDate      string   `json:"expiry_date"`
		Notes           string   `json:"notes"`
		Metadata        string   `json:"metadata"`
	}

	UpdatePantryItemRequest struct {
		Name            string   `json:"name" validate:"omitempty"`
		Description     *string  `json:"description"`
		Category        string   `json:"category" validate:"omitempty"`
		StorageLocation string   `json:"storage_location" validate:"omitempty"`
		Quantity        *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit            string   `json:"unit" validate:"omitempty"`
		Price           *float64 `json:"price" validate:"omitempty,min=0"`
		Brand           string   `json:"brand"`
		Barcode         string   `json:"barcode"`
		ExpiryDate      string   `json:"expiry_date"`
		Notes           *string  `json:"notes"`
	}

	// PantryItemFilters narrows the household's active item set; every
	// present field adds one predicate.
	PantryItemFilters struct {
		Category        string `json:"category" query:"category"`
		StorageLocation string `json:"storage_location" query:"storage_location"`
		Status          string `json:"status" query:"status"`
		Search          string `json:"search" query:"search"`
		LowStock        bool   `json:"low_stock" query:"low_stock"`
		ExpiringSoon    bool   `json:"expiring_soon" query:"expiring_soon"`
	}

	PantryItemResponse struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Description     string     `json:"description,omitempty"`
		Category        string     `json:"category"`
		Status          string     `json:"status"`
		StorageLocation string     `json:"storage_location"`
		Quantity        float64    `json:"quantity"`
		Unit            string     `json:"unit"`
		Price           *float64   `json:"price,omitempty"`
		Currency        string     `json:"currency,omitempty"`
		Brand           string     `json:"brand,omitempty"`
		Barcode         string     `json:"barcode,omitempty"`
		ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
		Notes           string     `json:"notes,omitempty"`
		ImageURL        string     `json:"image_url,omitempty"`
		IsExpired       bool       `json:"is_expired"`
		IsExpiringSoon  bool       `json:"is_expiring_soon"`
		StockLevel      string     `json:"stock_level"`
		NeedsRestocking bool       `json:"needs_restocking"`
		CreatedAt       time.Time  `json:"created_at"`
	}

	ConsumePantryItemRequest struct {
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
	}

	TrackWasteRequest struct {
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Reason   string  `json:"reason" validate:"required"`
	}

	ScanBarcodeRequest struct {
		Barcode string `json:"barcode" validate:"required"`
	}

	ProductSuggestion struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Unit     string `json:"unit"`
		Brand    string `json:"brand,omitempty"`
	}

	ScanBarcodeResponse struct {
		Found       bool                `json:"found"`
		Item        *PantryItemResponse `json:"item,omitempty"`
		Suggestions []ProductSuggestion `json:"suggestions,omitempty"`
	}

	CategoryBreakdown struct {
		Category string  `json:"category"`
		Count    int     `json:"count"`
		Value    float64 `json:"value"`
	}

	LocationBreakdown struct {
		Location string  `json:"location"`
		Count    int     `json:"count"`
		Value    float64 `json:"value"`
	}

	ExpiryBucket struct {
		Days  int `json:"days"`
		Count int `json:"count"`
	}

	InventoryAnalyticsResponse struct {
		TotalItems     int                 `json:"total_items"`
		ActiveItems    int                 `json:"active_items"`
		LowStockItems  int                 `json:"low_stock_items"`
		ExpiringItems  int                 `json:"expiring_items"`
		ExpiredItems   int                 `json:"expired_items"`
		TotalValue     float64             `json:"total_value"`
		Categories     []CategoryBreakdown `json:"categories"`
		Locations      []LocationBreakdown `json:"locations"`
		ExpiryTimeline []ExpiryBucket      `json:"expiry_timeline"`
	}

	ExpiryCheckResponse struct {
		ExpiringSoon []PantryItemResponse `json:"expiring_soon"`
		Expired      []PantryItemResponse `json:"expired"`
	}
)
