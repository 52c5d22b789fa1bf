package ingredient

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("ingredient not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, ing *Ingredient) error
	GetByID(ctx context.Context, userID, id string) (*Ingredient, error)
	ListByUser(ctx context.Context, userID string) ([]Ingredient, error)
	Update(ctx context.Context, ing *Ingredient) error
	Delete(ctx context.Context, userID, id string) error
}
