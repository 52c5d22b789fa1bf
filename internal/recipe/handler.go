package recipe

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CascadeDeleter removes a recipe together with the meals planned from
// it, and reports how many meals were removed.
type CascadeDeleter interface {
	DeleteRecipe(ctx context.Context, userID, id string) (mealsRemoved int, err error)
}

type Handler struct {
	service *Service
	deleter CascadeDeleter
}

func NewHandler(service *Service, deleter CascadeDeleter) *Handler {
	return &Handler{service: service, deleter: deleter}
}

type recipeRequest struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Instructions string           `json:"instructions"`
	Servings     int              `json:"servings"`
	PrepTime     int              `json:"prepTime"`
	CookTime     int              `json:"cookTime"`
	Ingredients  []IngredientLine `json:"ingredients"`
}

func (req *recipeRequest) toRecipe(userID string) *Recipe {
	return &Recipe{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Instructions: req.Instructions,
		Servings:     req.Servings,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Ingredients:  req.Ingredients,
	}
}

// --------------------------------------------------
// Create recipe
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.toRecipe(userID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Recipe added",
		"id":      created.ID,
	})
}

// --------------------------------------------------
// List recipes (search / filter / sort)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	opts := ListOptions{
		Search: c.Query("search"),
		Time:   c.Query("time"),
		SortBy: c.Query("sort"),
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": ApplyListOptions(items, opts)})
}

// --------------------------------------------------
// Get one recipe
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")

	rec, err := h.service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rec})
}

// --------------------------------------------------
// Availability check against current stock
// --------------------------------------------------
func (h *Handler) Availability(c *gin.Context) {
	userID := c.GetString("userID")

	result, err := h.service.Availability(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// --------------------------------------------------
// Update recipe
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON"})
		return
	}

	rec := req.toRecipe(userID)
	rec.ID = c.Param("id")

	if err := h.service.Update(c.Request.Context(), rec); err != nil {
		if err == ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Recipe not found or unauthorized"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recipe updated"})
}

// --------------------------------------------------
// Delete recipe (cascades to meals)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	if _, err := h.deleter.DeleteRecipe(c.Request.Context(), userID, c.Param("id")); err != nil {
		if err == ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Recipe not found or unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recipe and associated meals deleted"})
}
