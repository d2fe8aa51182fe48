package handlers

import (
	"net/http"

	"github.com/campushire/jobboard-api/internal/dtos"
	"github.com/campushire/jobboard-api/internal/services"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	CategoryService *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{CategoryService: categories}
}

// ListCategories is GET /admin/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory is POST /admin/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dtos.CategoryCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	category, err := h.CategoryService.CreateCategory(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// SetActive is PATCH /admin/categories/:id/active
func (h *CategoryHandler) SetActive(c *gin.Context) {
	categoryID, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.CategoryActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	category, err := h.CategoryService.SetActive(categoryID, *req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Stats is GET /admin/categories/:id/stats. Stats are recomputed per request,
// never cached.
func (h *CategoryHandler) Stats(c *gin.Context) {
	categoryID, ok := pathID(c)
	if !ok {
		return
	}
	stats, err := h.CategoryService.Stats(categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
