package ingredient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahi55555/pantry/internal/date"
)

// CascadeDeleter removes an ingredient together with every recipe and
// meal that depends on it, and reports how many of each were removed.
type CascadeDeleter interface {
	DeleteIngredient(ctx context.Context, userID, id string) (recipesRemoved, mealsRemoved int, err error)
}

type Handler struct {
	service *Service
	deleter CascadeDeleter
}

func NewHandler(service *Service, deleter CascadeDeleter) *Handler {
	return &Handler{service: service, deleter: deleter}
}

type ingredientRequest struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
	Quantity    float64 `json:"quantity"`
	MinQuantity float64 `json:"minQuantity"`
	ExpiryDate  string  `json:"expiryDate"`
}

func (req *ingredientRequest) toIngredient(userID string) (*Ingredient, error) {
	ing := &Ingredient{
		UserID:      userID,
		Name:        req.Name,
		Unit:        req.Unit,
		Category:    Category(req.Category),
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
	}
	if req.ExpiryDate != "" {
		d, err := date.Parse(req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		ing.ExpiryDate = &d
	}
	return ing, nil
}

// --------------------------------------------------
// Create ingredient
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON"})
		return
	}

	ing, err := req.toIngredient(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), ing)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Ingredient added",
		"id":      created.ID,
	})
}

// --------------------------------------------------
// List ingredients (search / filter / sort)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	opts := ListOptions{
		Search:   c.Query("search"),
		Category: Category(c.Query("category")),
		Status:   c.Query("status"),
		SortBy:   c.DefaultQuery("sort", SortByName),
	}

	view := ApplyListOptions(items, opts, date.Today())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

// --------------------------------------------------
// Get one ingredient
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")

	ing, err := h.service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ingredient not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": ing})
}

// --------------------------------------------------
// Update ingredient
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")

	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON"})
		return
	}

	ing, err := req.toIngredient(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	ing.ID = c.Param("id")

	if err := h.service.Update(c.Request.Context(), ing); err != nil {
		if err == ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ingredient not found or unauthorized"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ingredient updated"})
}

// --------------------------------------------------
// Delete ingredient (cascades to recipes and meals)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	recipes, _, err := h.deleter.DeleteIngredient(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ingredient not found or unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Ingredient deleted. Also removed %d recipe(s) and associated meal(s).", recipes),
	})
}

// --------------------------------------------------
// Low stock / expired views
// --------------------------------------------------
func (h *Handler) LowStock(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.service.LowStock(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

func (h *Handler) Expired(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.service.Expired(c.Request.Context(), userID, date.Today())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}
