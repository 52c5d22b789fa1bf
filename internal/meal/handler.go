package meal

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	recipes RecipeReader
}

func NewHandler(service *Service, recipes RecipeReader) *Handler {
	return &Handler{service: service, recipes: recipes}
}

type mealRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	RecipeID string `json:"recipeId"`
}

// --------------------------------------------------
// Schedule a meal
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON"})
		return
	}

	m := &Meal{
		UserID:   userID,
		Date:     req.Date,
		Time:     Slot(req.Time),
		RecipeID: req.RecipeID,
	}

	created, err := h.service.Create(c.Request.Context(), m)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Meal added",
		"mealId":  created.ID,
		"data":    created,
	})
}

// --------------------------------------------------
// List meals (search / filter / sort)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	recipes, err := h.recipes.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	opts := ListOptions{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Slot:   Slot(c.Query("time")),
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": ApplyListOptions(items, recipes, opts)})
}

// --------------------------------------------------
// Get one meal
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")

	m, err := h.service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Meal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": m})
}

// --------------------------------------------------
// Re-point a meal at another recipe
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")

	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON"})
		return
	}

	m, err := h.service.ChangeRecipe(c.Request.Context(), userID, c.Param("id"), req.RecipeID)
	if err != nil {
		if err == ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Meal not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Meal updated", "data": m})
}

// --------------------------------------------------
// Mark done
// --------------------------------------------------
func (h *Handler) MarkDone(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.service.MarkDone(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Meal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Meal marked as done"})
}

// --------------------------------------------------
// Delete meal
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Meal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Meal deleted"})
}
