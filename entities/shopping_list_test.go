package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestShoppingListItemBudgetUtilization(t *testing.T) {
	tests := []struct {
		name      string
		estimated *float64
		actual    *float64
		expected  float64
		defined   bool
	}{
		{name: "both prices present", estimated: floatPtr(4.0), actual: floatPtr(5.0), expected: 1.25, defined: true},
		{name: "under budget", estimated: floatPtr(10.0), actual: floatPtr(5.0), expected: 0.5, defined: true},
		{name: "missing estimate", estimated: nil, actual: floatPtr(5.0), defined: false},
		{name: "missing actual", estimated: floatPtr(4.0), actual: nil, defined: false},
		{name: "zero estimate", estimated: floatPtr(0), actual: floatPtr(5.0), defined: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := ShoppingListItem{EstimatedPrice: tt.estimated, ActualPrice: tt.actual}
			utilization, ok := item.BudgetUtilization()
			assert.Equal(t, tt.defined, ok)
			if tt.defined {
				assert.InDelta(t, tt.expected, utilization, 1e-9)
			}
		})
	}
}

func TestShoppingListItemIsOverBudget(t *testing.T) {
	over, ok := (&ShoppingListItem{EstimatedPrice: floatPtr(4.0), ActualPrice: floatPtr(5.0)}).IsOverBudget()
	assert.True(t, ok)
	assert.True(t, over)

	over, ok = (&ShoppingListItem{EstimatedPrice: floatPtr(5.0), ActualPrice: floatPtr(5.0)}).IsOverBudget()
	assert.True(t, ok)
	assert.False(t, over)

	_, ok = (&ShoppingListItem{ActualPrice: floatPtr(5.0)}).IsOverBudget()
	assert.False(t, ok)
}
