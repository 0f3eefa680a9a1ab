package handlers

import (
	"net/http"
	"strconv"

	"bill-reminder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService service.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories handles GET /api/categories
// @Summary List all categories
// @Description Get the full category collection
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {array} service.CategoryResponse "Successfully retrieved categories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get categories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories
// @Summary Create a new category
// @Description Create a category with a name and optional display color
// @Tags categories
// @Accept json
// @Produce json
// @Param category body service.CreateCategoryRequest true "Category data"
// @Success 201 {object} service.CategoryResponse "Successfully created category"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// DeleteCategory handles DELETE /api/categories/:id
// @Summary Delete a category
// @Description Delete a category; dependent reminders are kept and shown uncategorized
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} service.ChangeResponse "Deletion result with affected row count"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	result, err := h.categoryService.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseID parses a decimal path ID into the model key type
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
