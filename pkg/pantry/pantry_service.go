package pantry

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
	"strconv"
	"strings"
	"time"

	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/entities"
	"mindfulmeals-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Five fixed buckets for the expiry timeline; each item lands in the first
// bucket large enough for its remaining days and in no other.
var expiryTimelineDays = []int{1, 3, 7, 14, 30}

type (
	PantryService interface {
		AddItem(ctx context.Context, req domain.AddPantryItemRequest, householdID string) (domain.PantryItemResponse, error)
		GetItems(ctx context.Context, householdID string, filters domain.PantryItemFilters, page, limit int) ([]domain.PantryItemResponse, int64, error)
		GetItemByID(ctx context.Context, id string, householdID string) (domain.PantryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, householdID string) error
		DeleteItem(ctx context.Context, id string, householdID string) error
		ConsumeItem(ctx context.Context, id string, quantity float64, householdID string) error
		TrackWaste(ctx context.Context, id string, req domain.TrackWasteRequest, householdID string) error
		ScanBarcode(ctx context.Context, barcode string, householdID string) (domain.ScanBarcodeResponse, error)
		GetInventoryAnalytics(ctx context.Context, householdID string) (domain.InventoryAnalyticsResponse, error)
		CheckExpiry(ctx context.Context, householdID string, days int) (domain.ExpiryCheckResponse, error)
		UploadItemImage(ctx context.Context, id string, image *multipart.FileHeader, householdID string) error
	}

	pantryService struct {
		pantryRepository PantryRepository
		productLookup    ProductLookup
		s3               storage.AwsS3
		now              func() time.Time
	}
)

func NewPantryService(pantryRepository PantryRepository, productLookup ProductLookup, s3 storage.AwsS3) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		productLookup:    productLookup,
		s3:               s3,
		now:              time.Now,
	}
}

func (s *pantryService) AddItem(ctx context.Context, req domain.AddPantryItemRequest, householdID string) (domain.PantryItemResponse, error) {
	if req.Quantity < 0 {
		return domain.PantryItemResponse{}, domain.ErrInvalidQuantity
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrParseUUID
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	var purchaseDate *time.Time
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		purchaseDate = &parsed
	}

	item := &entities.PantryItem{
		ID:              uuid.New(),
		HouseholdID:     householdUUID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		StorageLocation: req.StorageLocation,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		Price:           req.Price,
		Currency:        req.Currency,
		Brand:           req.Brand,
		Barcode:         req.Barcode,
		PurchaseDate:    purchaseDate,
		ExpiryDate:      expiryDate,
		Notes:           req.Notes,
		Metadata:        req.Metadata,
		IsActive:        true,
	}
	item.Status = s.deriveStatus(item)

	if err := s.pantryRepository.AddItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return s.toResponse(item), nil
}

func (s *pantryService) GetItems(ctx context.Context, householdID string, filters domain.PantryItemFilters, page, limit int) ([]domain.PantryItemResponse, int64, error) {
	items, count, err := s.pantryRepository.QueryItems(ctx, householdID, filters, s.now(), page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.PantryItemResponse
	for _, item := range items {
		response = append(response, s.toResponse(item))
	}

	return response, count, nil
}

func (s *pantryService) GetItemByID(ctx context.Context, id string, householdID string) (domain.PantryItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, householdID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}
	return s.toResponse(item), nil
}

func (s *pantryService) UpdateItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, householdID string) error {
	item, err := s.getOwnedItem(ctx, id, householdID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.StorageLocation != "" {
		item.StorageLocation = req.StorageLocation
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.Price != nil {
		item.Price = req.Price
	}
	if req.Brand != "" {
		item.Brand = req.Brand
	}
	if req.Barcode != "" {
		item.Barcode = req.Barcode
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = &expiryDate
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	item.Status = s.deriveStatus(item)

	return s.pantryRepository.UpdateItem(ctx, item)
}

// DeleteItem is a soft delete; rows are never physically removed.
func (s *pantryService) DeleteItem(ctx context.Context, id string, householdID string) error {
	item, err := s.getOwnedItem(ctx, id, householdID)
	if err != nil {
		return err
	}

	item.IsActive = false
	return s.pantryRepository.UpdateItem(ctx, item)
}

func (s *pantryService) ConsumeItem(ctx context.Context, id string, quantity float64, householdID string) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	item, err := s.getOwnedItem(ctx, id, householdID)
	if err != nil {
		return err
	}

	item.Quantity -= quantity
	if item.Quantity <= 0 {
		item.Quantity = 0
		item.Status = entities.PantryStatusConsumed
	} else {
		item.Status = s.deriveStatus(item)
	}

	return s.pantryRepository.UpdateItem(ctx, item)
}

func (s *pantryService) TrackWaste(ctx context.Context, id string, req domain.TrackWasteRequest, householdID string) error {
	if req.Quantity <= 0 {
		return domain.ErrInvalidWasteAmount
	}

	item, err := s.getOwnedItem(ctx, id, householdID)
	if err != nil {
		return err
	}

	item.Status = entities.PantryStatusWasted
	item.Quantity -= req.Quantity
	if item.Quantity < 0 {
		item.Quantity = 0
	}

	// Appended rather than overwritten so repeated waste events keep their
	// history.
	entry := fmt.Sprintf("[%s] Wasted: %s %s - Reason: %s",
		s.now().Format("2006-01-02 15:04"),
		strconv.FormatFloat(req.Quantity, 'f', -1, 64),
		item.Unit,
		req.Reason,
	)
	if item.Notes == "" {
		item.Notes = entry
	} else {
		item.Notes = item.Notes + "\n" + entry
	}

	return s.pantryRepository.UpdateItem(ctx, item)
}

func (s *pantryService) ScanBarcode(ctx context.Context, barcode string, householdID string) (domain.ScanBarcodeResponse, error) {
	item, err := s.pantryRepository.GetItemByBarcode(ctx, householdID, barcode)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScanBarcodeResponse{}, err
		}

		suggestions, err := s.productLookup.Suggest(ctx, barcode)
		if err != nil {
			return domain.ScanBarcodeResponse{}, err
		}
		return domain.ScanBarcodeResponse{Found: false, Suggestions: suggestions}, nil
	}

	response := s.toResponse(item)
	return domain.ScanBarcodeResponse{Found: true, Item: &response}, nil
}

func (s *pantryService) GetInventoryAnalytics(ctx context.Context, householdID string) (domain.InventoryAnalyticsResponse, error) {
	items, err := s.pantryRepository.GetActiveItems(ctx, householdID)
	if err != nil {
		return domain.InventoryAnalyticsResponse{}, err
	}

	now := s.now()
	analytics := domain.InventoryAnalyticsResponse{
		TotalItems:  len(items),
		ActiveItems: len(items),
	}

	categoryCount := map[string]int{}
	categoryValue := map[string]float64{}
	locationCount := map[string]int{}
	locationValue := map[string]float64{}
	bucketCount := map[int]int{}

	for _, item := range items {
		var value float64
		if item.Price != nil {
			value = *item.Price
		}
		analytics.TotalValue += value

		if item.NeedsRestocking() {
			analytics.LowStockItems++
		}
		if item.IsExpired(now) {
			analytics.ExpiredItems++
		}
		if item.IsExpiringSoon(now) {
			analytics.ExpiringItems++
		}

		if item.Category != "" {
			categoryCount[item.Category]++
			categoryValue[item.Category] += value
		}
		if item.StorageLocation != "" {
			locationCount[item.StorageLocation]++
			locationValue[item.StorageLocation] += value
		}

		if days, ok := item.DaysUntilExpiry(now); ok && days > 0 {
			for _, bucket := range expiryTimelineDays {
				if days <= bucket {
					bucketCount[bucket]++
					break
				}
			}
		}
	}

	for category, count := range categoryCount {
		analytics.Categories = append(analytics.Categories, domain.CategoryBreakdown{
			Category: category,
			Count:    count,
			Value:    categoryValue[category],
		})
	}
	sort.Slice(analytics.Categories, func(i, j int) bool {
		return analytics.Categories[i].Category < analytics.Categories[j].Category
	})

	for location, count := range locationCount {
		analytics.Locations = append(analytics.Locations, domain.LocationBreakdown{
			Location: location,
			Count:    count,
			Value:    locationValue[location],
		})
	}
	sort.Slice(analytics.Locations, func(i, j int) bool {
		return analytics.Locations[i].Location < analytics.Locations[j].Location
	})

	for _, bucket := range expiryTimelineDays {
		analytics.ExpiryTimeline = append(analytics.ExpiryTimeline, domain.ExpiryBucket{
			Days:  bucket,
			Count: bucketCount[bucket],
		})
	}

	return analytics, nil
}

func (s *pantryService) CheckExpiry(ctx context.Context, householdID string, days int) (domain.ExpiryCheckResponse, error) {
	if days <= 0 {
		days = entities.ExpiringSoonDays
	}

	items, err := s.pantryRepository.GetActiveItems(ctx, householdID)
	if err != nil {
		return domain.ExpiryCheckResponse{}, err
	}

	now := s.now()
	response := domain.ExpiryCheckResponse{}
	for _, item := range items {
		remaining, ok := item.DaysUntilExpiry(now)
		if !ok {
			continue
		}
		switch {
		case item.IsExpired(now):
			response.Expired = append(response.Expired, s.toResponse(item))
		case remaining > 0 && remaining <= days:
			response.ExpiringSoon = append(response.ExpiringSoon, s.toResponse(item))
		}
	}

	return response, nil
}

func (s *pantryService) UploadItemImage(ctx context.Context, id string, image *multipart.FileHeader, householdID string) error {
	item, err := s.getOwnedItem(ctx, id, householdID)
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("pantry-item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, image, "pantry-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "pantry-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.pantryRepository.UpdateItem(ctx, item)
}

func (s *pantryService) getOwnedItem(ctx context.Context, id string, householdID string) (*entities.PantryItem, error) {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}

	if !item.IsActive || !strings.EqualFold(item.HouseholdID.String(), householdID) {
		return nil, domain.ErrPantryItemNotFound
	}

	return item, nil
}

func (s *pantryService) deriveStatus(item *entities.PantryItem) string {
	if item.IsExpired(s.now()) {
		return entities.PantryStatusExpired
	}
	if item.NeedsRestocking() {
		return entities.PantryStatusLowStock
	}
	return entities.PantryStatusActive
}

func (s *pantryService) toResponse(item *entities.PantryItem) domain.PantryItemResponse {
	now := s.now()
	return domain.PantryItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Description:     item.Description,
		Category:        item.Category,
		Status:          item.Status,
		StorageLocation: item.StorageLocation,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		Price:           item.Price,
		Currency:        item.Currency,
		Brand:           item.Brand,
		Barcode:         item.Barcode,
		ExpiryDate:      item.ExpiryDate,
		Notes:           item.Notes,
		ImageURL:        item.ImageURL,
		IsExpired:       item.IsExpired(now),
		IsExpiringSoon:  item.IsExpiringSoon(now),
		StockLevel:      item.StockLevel(),
		NeedsRestocking: item.NeedsRestocking(),
		CreatedAt:       item.CreatedAt,
	}
}
