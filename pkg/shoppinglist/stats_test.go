package shoppinglist

import (
	"testing"

	"mindfulmeals-backend/entities"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalItems)
	assert.Equal(t, 0, stats.PendingItems)
	assert.Equal(t, 0.0, stats.EstimatedTotal)
	assert.Empty(t, stats.Categories)
	assert.Empty(t, stats.Vendors)
	assert.NotNil(t, stats.Categories)
	assert.NotNil(t, stats.Vendors)
}

func TestComputeStats(t *testing.T) {
	items := []*entities.ShoppingListItem{
		{
			Name:           "milk",
			Category:       "dairy",
			Priority:       entities.PriorityUrgent,
			Vendor:         "Green Grocer",
			EstimatedPrice: floatPtr(3.50),
			IsOrganic:      true,
			IsCompleted:    true,
		},
		{
			Name:           "bread",
			Category:       "bakery",
			Priority:       entities.PriorityHigh,
			EstimatedPrice: floatPtr(2.25),
			IsLocal:        true,
		},
		{
			Name:     "rice",
			Category: "grains",
			Priority: entities.PriorityMedium,
			Vendor:   "Corner Market",
		},
	}

	stats := ComputeStats(items)

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 1, stats.CompletedItems)
	assert.Equal(t, 2, stats.PendingItems)
	assert.Equal(t, 1, stats.UrgentItems)
	assert.Equal(t, 1, stats.HighPriority)
	assert.Equal(t, 1, stats.OrganicItems)
	assert.Equal(t, 1, stats.LocalItems)
	assert.InDelta(t, 5.75, stats.EstimatedTotal, 1e-9)
	assert.Equal(t, []string{"bakery", "dairy", "grains"}, stats.Categories)
	assert.Equal(t, []string{"Corner Market", "Green Grocer"}, stats.Vendors)
}

func TestComputeStatsPendingPlusCompletedEqualsTotal(t *testing.T) {
	items := []*entities.ShoppingListItem{
		{Name: "a", IsCompleted: true},
		{Name: "b"},
		{Name: "c"},
		{Name: "d", IsCompleted: true},
	}

	stats := ComputeStats(items)
	assert.Equal(t, stats.TotalItems, stats.CompletedItems+stats.PendingItems)
}
