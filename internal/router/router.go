package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mahi55555/pantry/internal/auth"
	"github.com/mahi55555/pantry/internal/calendar"
	"github.com/mahi55555/pantry/internal/ingredient"
	"github.com/mahi55555/pantry/internal/meal"
	"github.com/mahi55555/pantry/internal/middleware"
	"github.com/mahi55555/pantry/internal/recipe"
)

// New wires the full route table. Everything under /api except the auth
// routes requires a valid bearer token.
func New(
	authHandler *auth.Handler,
	ingredientHandler *ingredient.Handler,
	recipeHandler *recipe.Handler,
	mealHandler *meal.Handler,
	calendarHandler *calendar.Handler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Accept", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PUBLIC AUTH ─────────────────────────
	r.POST("/api/signup", authHandler.Signup)
	r.POST("/api/login", authHandler.Login)
	r.POST("/api/forgot-password", authHandler.ForgotPassword)

	// ───────────────────────── PROTECTED API ─────────────────────────
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())

	ingredients := api.Group("/ingredients")
	{
		ingredients.POST("", ingredientHandler.Create)
		ingredients.GET("", ingredientHandler.List)
		ingredients.GET("/low-stock", ingredientHandler.LowStock)
		ingredients.GET("/expired", ingredientHandler.Expired)
		ingredients.GET("/:id", ingredientHandler.Get)
		ingredients.PUT("/:id", ingredientHandler.Update)
		ingredients.DELETE("/:id", ingredientHandler.Delete)
	}

	recipes := api.Group("/recipes")
	{
		recipes.POST("", recipeHandler.Create)
		recipes.GET("", recipeHandler.List)
		recipes.GET("/:id", recipeHandler.Get)
		recipes.GET("/:id/availability", recipeHandler.Availability)
		recipes.PUT("/:id", recipeHandler.Update)
		recipes.DELETE("/:id", recipeHandler.Delete)
	}

	meals := api.Group("/meals")
	{
		meals.POST("", mealHandler.Create)
		meals.GET("", mealHandler.List)
		meals.GET("/calendar", calendarHandler.MonthView)
		meals.GET("/:id", mealHandler.Get)
		meals.PUT("/:id", mealHandler.Update)
		meals.PUT("/:id/done", mealHandler.MarkDone)
		meals.DELETE("/:id", mealHandler.Delete)
	}

	return r
}
