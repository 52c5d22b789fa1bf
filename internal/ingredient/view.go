package ingredient

import (
	"sort"
	"strings"

	"github.com/mahi55555/pantry/internal/date"
)

// Status filter values accepted by the list endpoint.
const (
	FilterInStock    = "in-stock"
	FilterLowStock   = "low-stock"
	FilterOutOfStock = "out-of-stock"
	FilterExpired    = "expired"
)

// Sort keys accepted by the list endpoint.
const (
	SortByName     = "name"
	SortByCategory = "category"
	SortByQuantity = "quantity"
	SortByExpiry   = "expiry"
	SortByStatus   = "status"
)

// ListOptions is the derived-view request: free-text search, AND-combined
// filters, and a sort key. Empty fields are inactive.
type ListOptions struct {
	Search   string
	Category Category
	Status   string
	SortBy   string
}

// ApplyListOptions produces a new ordered slice; the input is never
// mutated. Sorting is stable so equal entries keep their source order.
func ApplyListOptions(items []Ingredient, opts ListOptions, today date.Date) []Ingredient {
	search := strings.ToLower(opts.Search)

	filtered := make([]Ingredient, 0, len(items))
	for _, ing := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(ing.Name), search) &&
			!strings.Contains(strings.ToLower(string(ing.Category)), search) {
			continue
		}
		if opts.Category != "" && ing.Category != opts.Category {
			continue
		}
		if opts.Status != "" && !matchesStatus(ing, opts.Status, today) {
			continue
		}
		filtered = append(filtered, ing)
	}

	switch opts.SortBy {
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case SortByCategory:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Category < filtered[j].Category
		})
	case SortByQuantity:
		// highest stock first
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Quantity > filtered[j].Quantity
		})
	case SortByExpiry:
		sort.SliceStable(filtered, func(i, j int) bool {
			return expiryLess(filtered[i].ExpiryDate, filtered[j].ExpiryDate)
		})
	case SortByStatus:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].StatusOn(today).Stock.Rank() < filtered[j].StatusOn(today).Stock.Rank()
		})
	}

	return filtered
}

func matchesStatus(ing Ingredient, filter string, today date.Date) bool {
	status := ing.StatusOn(today)
	switch filter {
	case FilterInStock:
		return status.Stock == InStock
	case FilterLowStock:
		return status.Stock == LowStock
	case FilterOutOfStock:
		return status.Stock == OutOfStock
	case FilterExpired:
		return status.Expired
	}
	return true
}

// Undated entries sort after all dated ones; two missing dates are equal.
func expiryLess(a, b *date.Date) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.Before(*b)
}
