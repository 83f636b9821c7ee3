package shoppinglist

import (
	"sort"

	"mindfulmeals-backend/entities"
)

// ComputeStats derives the materialized snapshot from the live item set.
// Every write path calls it inside the same transaction as the mutation, so
// a reader can never observe stats that disagree with the items.
func ComputeStats(items []*entities.ShoppingListItem) entities.ListStats {
	stats := entities.ListStats{
		TotalItems: len(items),
		Categories: []string{},
		Vendors:    []string{},
	}

	categories := map[string]struct{}{}
	vendors := map[string]struct{}{}

	for _, item := range items {
		if item.IsCompleted {
			stats.CompletedItems++
		} else {
			stats.PendingItems++
		}
		switch item.Priority {
		case entities.PriorityUrgent:
			stats.UrgentItems++
		case entities.PriorityHigh:
			stats.HighPriority++
		}
		if item.IsOrganic {
			stats.OrganicItems++
		}
		if item.IsLocal {
			stats.LocalItems++
		}
		if item.EstimatedPrice != nil {
			stats.EstimatedTotal += *item.EstimatedPrice
		}
		if item.Category != "" {
			categories[item.Category] = struct{}{}
		}
		if item.Vendor != "" {
			vendors[item.Vendor] = struct{}{}
		}
	}

	for category := range categories {
		stats.Categories = append(stats.Categories, category)
	}
	sort.Strings(stats.Categories)

	for vendor := range vendors {
		stats.Vendors = append(stats.Vendors, vendor)
	}
	sort.Strings(stats.Vendors)

	return stats
}
