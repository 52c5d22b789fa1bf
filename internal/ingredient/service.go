package ingredient

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"

	"github.com/mahi55555/pantry/internal/date"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func newID() string {
	u := uuid.New()
	return "ing" + hex.EncodeToString(u[:4])
}

// --------------------------------------------------
// Create
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, ing *Ingredient) (*Ingredient, error) {
	if ing.Name == "" || ing.Unit == "" || ing.Category == "" {
		return nil, errors.New("missing required fields")
	}

	ing.ID = newID()
	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, userID, id string) (*Ingredient, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Ingredient, error) {
	return s.repo.ListByUser(ctx, userID)
}

// LowStock returns ingredients below their minimum threshold.
func (s *Service) LowStock(ctx context.Context, userID string) ([]Ingredient, error) {
	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []Ingredient
	for _, ing := range all {
		if ing.Quantity < ing.MinQuantity {
			out = append(out, ing)
		}
	}
	return out, nil
}

// Expired returns ingredients whose expiry date has passed as of today.
func (s *Service) Expired(ctx context.Context, userID string, today date.Date) ([]Ingredient, error) {
	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []Ingredient
	for _, ing := range all {
		if ing.StatusOn(today).Expired {
			out = append(out, ing)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, ing *Ingredient) error {
	if ing.Name == "" || ing.Unit == "" || ing.Category == "" {
		return errors.New("missing required fields")
	}
	return s.repo.Update(ctx, ing)
}
