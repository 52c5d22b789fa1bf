package meal

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Meal
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*Meal),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, m *Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *m
	r.items[m.ID] = &copied
	r.order = append(r.order, m.ID)
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, userID, id string) (*Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok || m.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Meal
	for _, id := range r.order {
		m, ok := r.items[id]
		if ok && m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, m *Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[m.ID]
	if !ok || existing.UserID != m.UserID {
		return ErrNotFound
	}
	copied := *m
	r.items[m.ID] = &copied
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

func (r *InMemoryRepository) MarkDone(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	existing.Done = true
	return nil
}

func (r *InMemoryRepository) DeleteByRecipeIDs(ctx context.Context, userID string, recipeIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets := make(map[string]bool, len(recipeIDs))
	for _, id := range recipeIDs {
		targets[id] = true
	}

	var ids []string
	for id, m := range r.items {
		if m.UserID == userID && targets[m.RecipeID] {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		r.remove(id)
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
