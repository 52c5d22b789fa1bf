package recipe

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Recipe
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*Recipe),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, rec *Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := cloneRecipe(rec)
	r.items[rec.ID] = copied
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, userID, id string) (*Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[id]
	if !ok || rec.UserID != userID {
		return nil, ErrNotFound
	}
	return cloneRecipe(rec), nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Recipe
	for _, id := range r.order {
		rec, ok := r.items[id]
		if ok && rec.UserID == userID {
			out = append(out, *cloneRecipe(rec))
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, rec *Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[rec.ID]
	if !ok || existing.UserID != rec.UserID {
		return ErrNotFound
	}
	r.items[rec.ID] = cloneRecipe(rec)
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	r.remove(id)
	return nil
}

func (r *InMemoryRepository) DeleteByIDs(ctx context.Context, userID string, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		existing, ok := r.items[id]
		if ok && existing.UserID == userID {
			r.remove(id)
		}
	}
	return nil
}

// caller must hold the lock
func (r *InMemoryRepository) remove(id string) {
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func cloneRecipe(rec *Recipe) *Recipe {
	copied := *rec
	copied.Ingredients = append([]IngredientLine(nil), rec.Ingredients...)
	return &copied
}
