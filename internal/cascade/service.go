package cascade

import (
	"context"

	"github.com/mahi55555/pantry/internal/ingredient"
	"github.com/mahi55555/pantry/internal/meal"
	"github.com/mahi55555/pantry/internal/recipe"
)

// Service performs cascading deletes. It always resolves the impact set
// against fresh snapshots of all collections before the first write,
// then deletes meals, then recipes, then the target, so an interrupted
// sequence can never leave a reference pointing at nothing.
type Service struct {
	ingredients ingredient.Repository
	recipes     recipe.Repository
	meals       meal.Repository
}

func NewService(
	ingredients ingredient.Repository,
	recipes recipe.Repository,
	meals meal.Repository,
) *Service {
	return &Service{
		ingredients: ingredients,
		recipes:     recipes,
		meals:       meals,
	}
}

// --------------------------------------------------
// Ingredient delete (two-hop cascade)
// --------------------------------------------------
func (s *Service) DeleteIngredient(ctx context.Context, userID, id string) (int, int, error) {
	// Existence check up front so a bad id is a 404, not a silent no-op.
	if _, err := s.ingredients.GetByID(ctx, userID, id); err != nil {
		return 0, 0, err
	}

	recipes, err := s.recipes.ListByUser(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	meals, err := s.meals.ListByUser(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	impact := ForIngredient(id, recipes, meals)

	if err := s.meals.DeleteByRecipeIDs(ctx, userID, impact.RecipeIDs()); err != nil {
		return 0, 0, err
	}
	if err := s.recipes.DeleteByIDs(ctx, userID, impact.RecipeIDs()); err != nil {
		return 0, 0, err
	}
	if err := s.ingredients.Delete(ctx, userID, id); err != nil {
		return 0, 0, err
	}

	return len(impact.Recipes), len(impact.Meals), nil
}

// --------------------------------------------------
// Recipe delete (one-hop cascade)
// --------------------------------------------------
func (s *Service) DeleteRecipe(ctx context.Context, userID, id string) (int, error) {
	if _, err := s.recipes.GetByID(ctx, userID, id); err != nil {
		return 0, err
	}

	meals, err := s.meals.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	impact := ForRecipe(id, meals)

	if err := s.meals.DeleteByRecipeIDs(ctx, userID, []string{id}); err != nil {
		return 0, err
	}
	if err := s.recipes.Delete(ctx, userID, id); err != nil {
		return 0, err
	}

	return len(impact.Meals), nil
}
