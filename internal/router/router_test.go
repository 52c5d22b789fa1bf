package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mahi55555/pantry/internal/auth"
	"github.com/mahi55555/pantry/internal/calendar"
	"github.com/mahi55555/pantry/internal/cascade"
	"github.com/mahi55555/pantry/internal/ingredient"
	"github.com/mahi55555/pantry/internal/meal"
	"github.com/mahi55555/pantry/internal/recipe"
)

// setupApp wires the whole API against in-memory stores.
func setupApp() *gin.Engine {
	gin.SetMode(gin.TestMode)

	ingredientRepo := ingredient.NewInMemoryRepository()
	recipeRepo := recipe.NewInMemoryRepository()
	mealRepo := meal.NewInMemoryRepository()

	authService := auth.NewService(auth.NewInMemoryUserRepository())
	ingredientService := ingredient.NewService(ingredientRepo)
	recipeService := recipe.NewService(recipeRepo, ingredientRepo)
	mealService := meal.NewService(mealRepo, recipeRepo, ingredientRepo)
	cascadeService := cascade.NewService(ingredientRepo, recipeRepo, mealRepo)

	return New(
		auth.NewHandler(authService),
		ingredient.NewHandler(ingredientService, cascadeService),
		recipe.NewHandler(recipeService, cascadeService),
		meal.NewHandler(mealService, recipeRepo),
		calendar.NewHandler(mealRepo, recipeRepo),
	)
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	ID      string          `json:"id"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

func do(r *gin.Engine, method, path, token string, payload interface{}) (*httptest.ResponseRecorder, apiResponse) {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func signupAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, _ := do(r, http.MethodPost, "/api/signup", "", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup failed with %d: %s", w.Code, w.Body.String())
	}

	w, resp := do(r, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "Password@123",
	})
	if w.Code != http.StatusOK || resp.Token == "" {
		t.Fatalf("login failed with %d: %s", w.Code, w.Body.String())
	}
	return resp.Token
}

func TestHealthCheck(t *testing.T) {
	r := setupApp()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupApp()

	for _, path := range []string{"/api/ingredients", "/api/recipes", "/api/meals", "/api/meals/calendar"} {
		w, _ := do(r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestEndToEndFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupApp()
	token := signupAndLogin(t, r)

	// stock an ingredient
	w, resp := do(r, http.MethodPost, "/api/ingredients", token, map[string]interface{}{
		"name": "Flour", "unit": "kg", "category": "grains", "quantity": 10, "minQuantity": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create ingredient: %d %s", w.Code, w.Body.String())
	}
	flourID := resp.ID

	// a recipe over it
	w, resp = do(r, http.MethodPost, "/api/recipes", token, map[string]interface{}{
		"name": "Bread", "servings": 4, "prepTime": 15, "cookTime": 40,
		"ingredients": []map[string]interface{}{
			{"ingredientId": flourID, "quantity": 2},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create recipe: %d %s", w.Code, w.Body.String())
	}
	breadID := resp.ID

	// availability against current stock
	w, resp = do(r, http.MethodGet, "/api/recipes/"+breadID+"/availability", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("availability: %d %s", w.Code, w.Body.String())
	}
	var avail recipe.AvailabilityResult
	if err := json.Unmarshal(resp.Data, &avail); err != nil {
		t.Fatalf("availability payload: %v", err)
	}
	if !avail.CanMake {
		t.Fatalf("expected canMake with 10kg in stock: %+v", avail)
	}

	// schedule it; stock drops by the recipe's 2kg
	w, resp = do(r, http.MethodPost, "/api/meals", token, map[string]interface{}{
		"date": "2024-03-15", "time": "dinner", "recipeId": breadID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create meal: %d %s", w.Code, w.Body.String())
	}

	w, resp = do(r, http.MethodGet, "/api/ingredients/"+flourID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get ingredient: %d %s", w.Code, w.Body.String())
	}
	var flour ingredient.Ingredient
	if err := json.Unmarshal(resp.Data, &flour); err != nil {
		t.Fatalf("ingredient payload: %v", err)
	}
	if flour.Quantity != 8 {
		t.Errorf("flour after scheduling = %v, want 8", flour.Quantity)
	}

	// the meal shows up on the month grid
	w, resp = do(r, http.MethodGet, "/api/meals/calendar?year=2024&month=3", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("calendar: %d %s", w.Code, w.Body.String())
	}

	// deleting the ingredient takes the recipe and meal with it
	w, resp = do(r, http.MethodDelete, "/api/ingredients/"+flourID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete ingredient: %d %s", w.Code, w.Body.String())
	}
	want := fmt.Sprintf("Ingredient deleted. Also removed %d recipe(s) and associated meal(s).", 1)
	if resp.Message != want {
		t.Errorf("cascade message %q, want %q", resp.Message, want)
	}

	w, _ = do(r, http.MethodGet, "/api/recipes/"+breadID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("recipe should be gone, got %d", w.Code)
	}

	w, resp = do(r, http.MethodGet, "/api/meals", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list meals: %d %s", w.Code, w.Body.String())
	}
	var meals []meal.Meal
	if err := json.Unmarshal(resp.Data, &meals); err != nil {
		t.Fatalf("meals payload: %v", err)
	}
	if len(meals) != 0 {
		t.Errorf("expected no surviving meals, got %d", len(meals))
	}
}

func TestUsersAreIsolated(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupApp()

	tokenA := signupAndLogin(t, r)

	w, _ := do(r, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "Other User", "email": "other@example.com", "password": "Password@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second signup: %d", w.Code)
	}
	w, respB := do(r, http.MethodPost, "/api/login", "", map[string]string{
		"email": "other@example.com", "password": "Password@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second login: %d", w.Code)
	}
	tokenB := respB.Token

	w, resp := do(r, http.MethodPost, "/api/ingredients", tokenA, map[string]interface{}{
		"name": "Salt", "unit": "g", "category": "spices", "quantity": 500,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create ingredient: %d", w.Code)
	}

	w, _ = do(r, http.MethodGet, "/api/ingredients/"+resp.ID, tokenB, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("cross-user read should 404, got %d", w.Code)
	}
}
