package recipe

import (
	"sort"
	"strings"
)

// Total-time buckets accepted by the list endpoint.
const (
	FilterQuick  = "quick"  // <= 30 min
	FilterMedium = "medium" // 31-60 min
	FilterLong   = "long"   // > 60 min
)

// Sort keys accepted by the list endpoint.
const (
	SortByName        = "name"
	SortByServings    = "servings"
	SortByPrepTime    = "prepTime"
	SortByTotalTime   = "totalTime"
	SortByIngredients = "ingredients"
)

type ListOptions struct {
	Search string
	Time   string
	SortBy string
}

// ApplyListOptions produces a new ordered slice; the input is never
// mutated. Sorting is stable so equal entries keep their source order.
func ApplyListOptions(items []Recipe, opts ListOptions) []Recipe {
	search := strings.ToLower(opts.Search)

	filtered := make([]Recipe, 0, len(items))
	for _, r := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		if opts.Time != "" && !matchesTime(r.TotalTime(), opts.Time) {
			continue
		}
		filtered = append(filtered, r)
	}

	switch opts.SortBy {
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case SortByServings:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Servings > filtered[j].Servings
		})
	case SortByPrepTime:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PrepTime < filtered[j].PrepTime
		})
	case SortByTotalTime:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].TotalTime() < filtered[j].TotalTime()
		})
	case SortByIngredients:
		sort.SliceStable(filtered, func(i, j int) bool {
			return len(filtered[i].Ingredients) > len(filtered[j].Ingredients)
		})
	}

	return filtered
}

func matchesTime(total int, bucket string) bool {
	switch bucket {
	case FilterQuick:
		return total <= 30
	case FilterMedium:
		return total > 30 && total <= 60
	case FilterLong:
		return total > 60
	}
	return true
}
