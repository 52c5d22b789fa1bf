package recipe

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mahi55555/pantry/internal/ingredient"
)

// IngredientReader is the slice of the ingredient store this service
// needs: the caller's current stock snapshot.
type IngredientReader interface {
	ListByUser(ctx context.Context, userID string) ([]ingredient.Ingredient, error)
}

type Service struct {
	repo        Repository
	ingredients IngredientReader
}

func NewService(repo Repository, ingredients IngredientReader) *Service {
	return &Service{repo: repo, ingredients: ingredients}
}

func newID() string {
	u := uuid.New()
	return "rec" + hex.EncodeToString(u[:4])
}

// --------------------------------------------------
// Create
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, rec *Recipe) (*Recipe, error) {
	if rec.Name == "" {
		return nil, errors.New("missing required fields")
	}

	if err := s.checkOwnership(ctx, rec.UserID, rec.Ingredients); err != nil {
		return nil, err
	}

	rec.ID = newID()
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, userID, id string) (*Recipe, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Recipe, error) {
	return s.repo.ListByUser(ctx, userID)
}

// --------------------------------------------------
// Update
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, rec *Recipe) error {
	if rec.Name == "" {
		return errors.New("missing required fields")
	}
	if err := s.checkOwnership(ctx, rec.UserID, rec.Ingredients); err != nil {
		return err
	}
	return s.repo.Update(ctx, rec)
}

// --------------------------------------------------
// Availability (makeability against current stock)
// --------------------------------------------------
func (s *Service) Availability(ctx context.Context, userID, recipeID string) (AvailabilityResult, error) {
	recipes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return AvailabilityResult{}, err
	}
	stock, err := s.ingredients.ListByUser(ctx, userID)
	if err != nil {
		return AvailabilityResult{}, err
	}
	return CheckAvailability(recipeID, recipes, stock), nil
}

// checkOwnership rejects lines referencing ingredients the caller does
// not own at write time. References that dangle later (after a cascade
// delete) are a read-time data condition, not a write-time error.
func (s *Service) checkOwnership(ctx context.Context, userID string, lines []IngredientLine) error {
	if len(lines) == 0 {
		return nil
	}

	stock, err := s.ingredients.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	owned := make(map[string]bool, len(stock))
	for _, ing := range stock {
		owned[ing.ID] = true
	}

	var unauthorized []string
	for _, line := range lines {
		if !owned[line.IngredientID] {
			unauthorized = append(unauthorized, line.IngredientID)
		}
	}
	if len(unauthorized) > 0 {
		return fmt.Errorf("you don't own the following ingredients: %s", strings.Join(unauthorized, ", "))
	}
	return nil
}
