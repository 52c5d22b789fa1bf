package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mahi55555/pantry/internal/auth"
	"github.com/mahi55555/pantry/internal/calendar"
	"github.com/mahi55555/pantry/internal/cascade"
	"github.com/mahi55555/pantry/internal/db"
	"github.com/mahi55555/pantry/internal/ingredient"
	"github.com/mahi55555/pantry/internal/meal"
	"github.com/mahi55555/pantry/internal/recipe"
	"github.com/mahi55555/pantry/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	ingredientRepo := ingredient.NewPostgresRepository(pgDB)
	recipeRepo := recipe.NewPostgresRepository(pgDB)
	mealRepo := meal.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	ingredientService := ingredient.NewService(ingredientRepo)
	recipeService := recipe.NewService(recipeRepo, ingredientRepo)
	mealService := meal.NewService(mealRepo, recipeRepo, ingredientRepo)
	cascadeService := cascade.NewService(ingredientRepo, recipeRepo, mealRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	ingredientHandler := ingredient.NewHandler(ingredientService, cascadeService)
	recipeHandler := recipe.NewHandler(recipeService, cascadeService)
	mealHandler := meal.NewHandler(mealService, recipeRepo)
	calendarHandler := calendar.NewHandler(mealRepo, recipeRepo)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(
		authHandler,
		ingredientHandler,
		recipeHandler,
		mealHandler,
		calendarHandler,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("API listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
