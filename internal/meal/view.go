package meal

import (
	"sort"
	"strings"

	"github.com/mahi55555/pantry/internal/recipe"
)

// Status filter values accepted by the list endpoint.
const (
	FilterCompleted = "completed"
	FilterPending   = "pending"
)

// UnknownRecipe is shown when a meal points at a recipe that no longer
// exists. Dangling references are tolerated, not rejected.
const UnknownRecipe = "Unknown"

type ListOptions struct {
	Search string
	Status string
	Slot   Slot
	SortBy string
}

// ApplyListOptions produces a new ordered slice; the inputs are never
// mutated. Search matches the joined recipe name, the slot, and the raw
// date string. Sorting is by date then slot rank; YYYY-MM-DD strings
// compare chronologically as plain strings.
func ApplyListOptions(items []Meal, recipes []recipe.Recipe, opts ListOptions) []Meal {
	names := make(map[string]string, len(recipes))
	for _, r := range recipes {
		names[r.ID] = r.Name
	}
	nameOf := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return UnknownRecipe
	}

	search := strings.ToLower(opts.Search)

	filtered := make([]Meal, 0, len(items))
	for _, m := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(nameOf(m.RecipeID)), search) &&
			!strings.Contains(strings.ToLower(string(m.Time)), search) &&
			!strings.Contains(m.Date, opts.Search) {
			continue
		}
		switch opts.Status {
		case FilterCompleted:
			if !m.Done {
				continue
			}
		case FilterPending:
			if m.Done {
				continue
			}
		}
		if opts.Slot != "" && m.Time != opts.Slot {
			continue
		}
		filtered = append(filtered, m)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Time.Rank() < filtered[j].Time.Rank()
	})

	return filtered
}
