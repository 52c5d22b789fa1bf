package meal

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("meal not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, m *Meal) error
	GetByID(ctx context.Context, userID, id string) (*Meal, error)
	ListByUser(ctx context.Context, userID string) ([]Meal, error)
	Update(ctx context.Context, m *Meal) error
	Delete(ctx context.Context, userID, id string) error
	MarkDone(ctx context.Context, userID, id string) error

	// DeleteByRecipeIDs removes every meal planned from the given
	// recipes; the cascade paths use it before touching the recipes.
	DeleteByRecipeIDs(ctx context.Context, userID string, recipeIDs []string) error
}
