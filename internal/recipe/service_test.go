package recipe

import (
	"context"
	"strings"
	"testing"

	"github.com/mahi55555/pantry/internal/ingredient"
)

type stubIngredientReader struct {
	items []ingredient.Ingredient
}

func (s stubIngredientReader) ListByUser(ctx context.Context, userID string) ([]ingredient.Ingredient, error) {
	return s.items, nil
}

func TestCreateRecipe_Success(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), stubIngredientReader{items: stock()})

	rec, err := svc.Create(context.Background(), &Recipe{
		UserID:   "u1",
		Name:     "Bread",
		Servings: 4,
		Ingredients: []IngredientLine{
			{IngredientID: "ing-flour", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(rec.ID, "rec") {
		t.Errorf("expected generated id with rec prefix, got %q", rec.ID)
	}

	got, err := svc.Get(context.Background(), "u1", rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Bread" {
		t.Errorf("unexpected name %q", got.Name)
	}
}

func TestCreateRecipe_MissingName(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), stubIngredientReader{})

	if _, err := svc.Create(context.Background(), &Recipe{UserID: "u1"}); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestCreateRecipe_RejectsForeignIngredients(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), stubIngredientReader{items: stock()})

	_, err := svc.Create(context.Background(), &Recipe{
		UserID: "u1",
		Name:   "Cake",
		Ingredients: []IngredientLine{
			{IngredientID: "ing-flour", Quantity: 1},
			{IngredientID: "ing-stolen", Quantity: 1},
		},
	})
	if err == nil {
		t.Fatal("expected ownership error")
	}
	if !strings.Contains(err.Error(), "ing-stolen") {
		t.Errorf("error should name the offending id: %v", err)
	}
}

func TestAvailability_ThroughService(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, stubIngredientReader{items: stock()})

	rec, err := svc.Create(context.Background(), &Recipe{
		UserID: "u1",
		Name:   "Omelette",
		Ingredients: []IngredientLine{
			{IngredientID: "ing-eggs", Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	result, err := svc.Availability(context.Background(), "u1", rec.ID)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if !result.CanMake {
		t.Fatalf("expected canMake = true, got %+v", result)
	}
}
