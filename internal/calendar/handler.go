package calendar

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahi55555/pantry/internal/meal"
	"github.com/mahi55555/pantry/internal/recipe"
)

// MealReader is the slice of the meal store the grid endpoint needs.
type MealReader interface {
	ListByUser(ctx context.Context, userID string) ([]meal.Meal, error)
}

// RecipeReader resolves recipe names for the filtered view's search join.
type RecipeReader interface {
	ListByUser(ctx context.Context, userID string) ([]recipe.Recipe, error)
}

type Handler struct {
	meals   MealReader
	recipes RecipeReader
}

func NewHandler(meals MealReader, recipes RecipeReader) *Handler {
	return &Handler{meals: meals, recipes: recipes}
}

// --------------------------------------------------
// Month grid (optionally over a filtered meal view)
// --------------------------------------------------
func (h *Handler) MonthView(c *gin.Context) {
	userID := c.GetString("userID")

	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid year"})
		return
	}
	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid month, expected 1-12"})
		return
	}

	meals, err := h.meals.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	recipes, err := h.recipes.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	opts := meal.ListOptions{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Slot:   meal.Slot(c.Query("time")),
	}
	view := meal.ApplyListOptions(meals, recipes, opts)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"year":  year,
			"month": monthNum,
			"cells": MonthGrid(year, time.Month(monthNum), view),
		},
	})
}
