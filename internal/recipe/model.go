package recipe

// IngredientLine is one entry in a recipe's ingredient list. The
// referenced ingredient is not required to still exist; dangling ids are
// tolerated and surface as issues, never as errors. Duplicate lines for
// the same ingredient are kept independent.
type IngredientLine struct {
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
}

// Recipe is the domain entity.
type Recipe struct {
	ID           string           `json:"id"`
	UserID       string           `json:"-"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Instructions string           `json:"instructions"`
	Servings     int              `json:"servings"`
	PrepTime     int              `json:"prepTime"`
	CookTime     int              `json:"cookTime"`
	Ingredients  []IngredientLine `json:"ingredients"`
}

// TotalTime is prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}
