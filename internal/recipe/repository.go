package recipe

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("recipe not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, r *Recipe) error
	GetByID(ctx context.Context, userID, id string) (*Recipe, error)
	ListByUser(ctx context.Context, userID string) ([]Recipe, error)
	Update(ctx context.Context, r *Recipe) error
	Delete(ctx context.Context, userID, id string) error

	// DeleteByIDs removes several recipes at once; the ingredient
	// cascade uses it after resolving the impact set.
	DeleteByIDs(ctx context.Context, userID string, ids []string) error
}
