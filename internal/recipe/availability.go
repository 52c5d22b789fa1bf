package recipe

import (
	"fmt"

	"github.com/mahi55555/pantry/internal/ingredient"
)

// AvailabilityResult reports whether a recipe can be made from current
// stock. Issues are ordered to match the recipe's ingredient lines.
type AvailabilityResult struct {
	CanMake bool     `json:"canMake"`
	Issues  []string `json:"issues"`
}

// CheckAvailability compares a recipe's requirements against the given
// stock snapshot. An unset id, an unknown recipe, or a recipe with no
// ingredient lines is trivially makeable. A dangling ingredient
// reference is reported as an issue, not an error.
func CheckAvailability(recipeID string, recipes []Recipe, stock []ingredient.Ingredient) AvailabilityResult {
	if recipeID == "" {
		return AvailabilityResult{CanMake: true, Issues: []string{}}
	}

	var target *Recipe
	for i := range recipes {
		if recipes[i].ID == recipeID {
			target = &recipes[i]
			break
		}
	}
	if target == nil || len(target.Ingredients) == 0 {
		return AvailabilityResult{CanMake: true, Issues: []string{}}
	}

	byID := make(map[string]ingredient.Ingredient, len(stock))
	for _, ing := range stock {
		byID[ing.ID] = ing
	}

	issues := []string{}
	for _, line := range target.Ingredients {
		ing, ok := byID[line.IngredientID]
		if !ok {
			issues = append(issues, fmt.Sprintf("Missing ingredient: %s", line.IngredientID))
			continue
		}
		if ing.Quantity < line.Quantity {
			issues = append(issues, fmt.Sprintf(
				"Not enough %s (required %v, available %v)",
				ing.Name, line.Quantity, ing.Quantity,
			))
		}
	}

	return AvailabilityResult{CanMake: len(issues) == 0, Issues: issues}
}
