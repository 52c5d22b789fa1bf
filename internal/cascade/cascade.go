// Package cascade resolves the blast radius of a destructive delete
// across the three linked collections. Deleting an ingredient takes out
// every recipe that uses it and every meal planned from those recipes;
// deleting a recipe takes out its meals. The resolver only reports
// scope; Service applies the deletes in dependency order.
package cascade

import (
	"github.com/mahi55555/pantry/internal/meal"
	"github.com/mahi55555/pantry/internal/recipe"
)

// Impact is the exact and complete set of dependents that must be
// removed together with the target. Partial application would leave
// dangling references, which is what this package exists to prevent.
type Impact struct {
	Recipes []recipe.Recipe `json:"affectedRecipes"`
	Meals   []meal.Meal     `json:"affectedMeals"`
}

// ForIngredient walks the two-hop closure ingredient -> recipes ->
// meals over reverse indexes. Meals have no dependents of their own, so
// the walk stops there.
func ForIngredient(ingredientID string, recipes []recipe.Recipe, meals []meal.Meal) Impact {
	byIngredient := make(map[string][]int)
	for i, r := range recipes {
		seen := make(map[string]bool, len(r.Ingredients))
		for _, line := range r.Ingredients {
			if !seen[line.IngredientID] {
				seen[line.IngredientID] = true
				byIngredient[line.IngredientID] = append(byIngredient[line.IngredientID], i)
			}
		}
	}

	byRecipe := make(map[string][]int)
	for i, m := range meals {
		byRecipe[m.RecipeID] = append(byRecipe[m.RecipeID], i)
	}

	var impact Impact
	for _, ri := range byIngredient[ingredientID] {
		impact.Recipes = append(impact.Recipes, recipes[ri])
		for _, mi := range byRecipe[recipes[ri].ID] {
			impact.Meals = append(impact.Meals, meals[mi])
		}
	}
	return impact
}

// ForRecipe is the one-hop case: only meals depend on a recipe.
func ForRecipe(recipeID string, meals []meal.Meal) Impact {
	var impact Impact
	for _, m := range meals {
		if m.RecipeID == recipeID {
			impact.Meals = append(impact.Meals, m)
		}
	}
	return impact
}

// RecipeIDs lists the affected recipe ids in impact order.
func (im Impact) RecipeIDs() []string {
	ids := make([]string, 0, len(im.Recipes))
	for _, r := range im.Recipes {
		ids = append(ids, r.ID)
	}
	return ids
}
