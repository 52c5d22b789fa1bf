package ingredient

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mahi55555/pantry/internal/date"
)

func TestCreateIngredient_Success(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	created, err := service.Create(context.Background(), &Ingredient{
		UserID:      "user-1",
		Name:        "Flour",
		Unit:        "kg",
		Category:    CategoryGrains,
		Quantity:    2,
		MinQuantity: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(created.ID, "ing") {
		t.Errorf("expected ing-prefixed id, got %q", created.ID)
	}

	stored, err := repo.GetByID(context.Background(), "user-1", created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Name != "Flour" {
		t.Errorf("expected Flour, got %q", stored.Name)
	}
}

func TestCreateIngredient_MissingFields(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	_, err := service.Create(context.Background(), &Ingredient{
		UserID: "user-1",
		Name:   "Flour",
	})
	if err == nil {
		t.Fatal("expected error for missing fields")
	}
}

func TestGetIngredient_OtherUserIsNotFound(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	created, err := service.Create(context.Background(), &Ingredient{
		UserID:   "user-1",
		Name:     "Flour",
		Unit:     "kg",
		Category: CategoryGrains,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Get(context.Background(), "user-2", created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLowStock(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	seed := []Ingredient{
		{UserID: "user-1", Name: "Flour", Unit: "kg", Category: CategoryGrains, Quantity: 2, MinQuantity: 1},
		{UserID: "user-1", Name: "Milk", Unit: "l", Category: CategoryDairy, Quantity: 1, MinQuantity: 2},
		{UserID: "user-1", Name: "Eggs", Unit: "pcs", Category: CategoryOther, Quantity: 0, MinQuantity: 6},
	}
	for i := range seed {
		if _, err := service.Create(context.Background(), &seed[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	low, err := service.LowStock(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("expected 2 low-stock ingredients, got %d", len(low))
	}
}

func TestExpired(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	seed := []Ingredient{
		{UserID: "user-1", Name: "Milk", Unit: "l", Category: CategoryDairy, Quantity: 1, MinQuantity: 0, ExpiryDate: expiry("2024-05-01")},
		{UserID: "user-1", Name: "Flour", Unit: "kg", Category: CategoryGrains, Quantity: 1, MinQuantity: 0, ExpiryDate: expiry("2024-08-01")},
		{UserID: "user-1", Name: "Salt", Unit: "g", Category: CategorySpices, Quantity: 1, MinQuantity: 0},
	}
	for i := range seed {
		if _, err := service.Create(context.Background(), &seed[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	expired, err := service.Expired(context.Background(), "user-1", date.New(2024, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expired) != 1 || expired[0].Name != "Milk" {
		t.Fatalf("expected only Milk to be expired, got %+v", expired)
	}
}
