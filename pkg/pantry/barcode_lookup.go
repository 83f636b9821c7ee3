package pantry

import (
	"context"

	"mindfulmeals-backend/domain"
)

// ProductLookup resolves barcodes that are not already in the pantry.
// The static implementation stands in until an external product database
// integration exists.
type ProductLookup interface {
	Suggest(ctx context.Context, barcode string) ([]domain.ProductSuggestion, error)
}

type staticProductLookup struct{}

func NewStaticProductLookup() ProductLookup {
	return &staticProductLookup{}
}

func (l *staticProductLookup) Suggest(_ context.Context, _ string) ([]domain.ProductSuggestion, error) {
	return []domain.ProductSuggestion{
		{Name: "Organic Whole Milk", Category: "dairy", Unit: "litre", Brand: "Happy Farm"},
		{Name: "Whole Wheat Bread", Category: "bakery", Unit: "loaf", Brand: "Daily Bake"},
	}, nil
}
