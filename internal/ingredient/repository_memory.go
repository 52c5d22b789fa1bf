package ingredient

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// InMemoryRepository backs tests and local runs without Postgres.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Ingredient
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*Ingredient),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *ing
	r.items[ing.ID] = &copied
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, userID, id string) (*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ing, ok := r.items[id]
	if !ok || ing.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *ing
	return &copied, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Ingredient
	for _, ing := range r.items {
		if ing.UserID == userID {
			out = append(out, *ing)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[ing.ID]
	if !ok || existing.UserID != ing.UserID {
		return ErrNotFound
	}
	copied := *ing
	r.items[ing.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
