package meal

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mahi55555/pantry/internal/date"
	"github.com/mahi55555/pantry/internal/ingredient"
	"github.com/mahi55555/pantry/internal/recipe"
)

// RecipeReader is the slice of the recipe store this service needs.
type RecipeReader interface {
	GetByID(ctx context.Context, userID, id string) (*recipe.Recipe, error)
	ListByUser(ctx context.Context, userID string) ([]recipe.Recipe, error)
}

// IngredientStore reads and writes stock levels for deduct/restore.
type IngredientStore interface {
	ListByUser(ctx context.Context, userID string) ([]ingredient.Ingredient, error)
	Update(ctx context.Context, ing *ingredient.Ingredient) error
}

type Service struct {
	repo        Repository
	recipes     RecipeReader
	ingredients IngredientStore
}

func NewService(repo Repository, recipes RecipeReader, ingredients IngredientStore) *Service {
	return &Service{repo: repo, recipes: recipes, ingredients: ingredients}
}

func newID() string {
	u := uuid.New()
	return "meal" + hex.EncodeToString(u[:4])
}

// --------------------------------------------------
// Create (validates stock, then deducts it)
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, m *Meal) (*Meal, error) {
	m.Time = Slot(strings.ToLower(strings.TrimSpace(string(m.Time))))

	if m.Date == "" || m.Time == "" || m.RecipeID == "" {
		return nil, errors.New("missing fields (date, time, recipeId)")
	}
	if _, err := date.Parse(m.Date); err != nil {
		return nil, err
	}

	if err := s.deductStock(ctx, m.UserID, m.RecipeID); err != nil {
		return nil, err
	}

	m.ID = newID()
	m.Done = false
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, userID, id string) (*Meal, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Meal, error) {
	return s.repo.ListByUser(ctx, userID)
}

// --------------------------------------------------
// Re-point a meal at another recipe
// --------------------------------------------------
// The old recipe's quantities go back into stock first (unless the meal
// was already cooked), then the new recipe's are validated and deducted.
func (s *Service) ChangeRecipe(ctx context.Context, userID, id, newRecipeID string) (*Meal, error) {
	if newRecipeID == "" {
		return nil, errors.New("missing recipeId")
	}

	m, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if !m.Done {
		s.restoreStock(ctx, userID, m.RecipeID)
	}

	if err := s.deductStock(ctx, userID, newRecipeID); err != nil {
		return nil, err
	}

	m.RecipeID = newRecipeID
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// --------------------------------------------------
// Mark done / delete
// --------------------------------------------------
func (s *Service) MarkDone(ctx context.Context, userID, id string) error {
	return s.repo.MarkDone(ctx, userID, id)
}

// Delete removes a meal; a not-yet-cooked meal hands its ingredients
// back to stock.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	m, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}

	if !m.Done {
		s.restoreStock(ctx, userID, m.RecipeID)
	}
	return s.repo.Delete(ctx, userID, id)
}

// --------------------------------------------------
// Stock movement
// --------------------------------------------------

func (s *Service) deductStock(ctx context.Context, userID, recipeID string) error {
	rec, err := s.recipes.GetByID(ctx, userID, recipeID)
	if err != nil {
		return errors.New("Recipe not found")
	}

	stock, err := s.ingredients.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	result := recipe.CheckAvailability(rec.ID, []recipe.Recipe{*rec}, stock)
	if !result.CanMake {
		return errors.New(result.Issues[0])
	}

	byID := make(map[string]*ingredient.Ingredient, len(stock))
	for i := range stock {
		byID[stock[i].ID] = &stock[i]
	}

	touched := make(map[string]*ingredient.Ingredient)
	for _, line := range rec.Ingredients {
		ing := byID[line.IngredientID]
		ing.Quantity -= line.Quantity
		touched[ing.ID] = ing
	}

	for _, ing := range touched {
		if err := s.ingredients.Update(ctx, ing); err != nil {
			return err
		}
	}
	return nil
}

// restoreStock is best-effort: ingredients deleted since the meal was
// planned are skipped silently, matching the permissive dangling-
// reference model.
func (s *Service) restoreStock(ctx context.Context, userID, recipeID string) {
	rec, err := s.recipes.GetByID(ctx, userID, recipeID)
	if err != nil {
		return
	}

	stock, err := s.ingredients.ListByUser(ctx, userID)
	if err != nil {
		return
	}

	byID := make(map[string]*ingredient.Ingredient, len(stock))
	for i := range stock {
		byID[stock[i].ID] = &stock[i]
	}

	touched := make(map[string]*ingredient.Ingredient)
	for _, line := range rec.Ingredients {
		if ing, ok := byID[line.IngredientID]; ok {
			ing.Quantity += line.Quantity
			touched[ing.ID] = ing
		}
	}

	for _, ing := range touched {
		_ = s.ingredients.Update(ctx, ing)
	}
}
