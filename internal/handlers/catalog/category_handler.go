package catalog

import (
	"net/http"

	"zabudowy-service/internal/domain/catalog"
	"zabudowy-service/internal/pkg/response"
	service "zabudowy-service/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context(), false)
	if err != nil {
		response.FromError(c, err, "failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, "categories retrieved", categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "category not found")
		return
	}
	response.Success(c, http.StatusOK, "category retrieved", category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req catalog.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "failed to create category")
		return
	}
	response.Success(c, http.StatusCreated, "category created", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req catalog.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err, "failed to update category")
		return
	}
	response.Success(c, http.StatusOK, "category updated", category)
}

// DeleteCategory refuses to remove a category that still has projects so the
// portfolio never loses its grouping silently.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err, "failed to delete category")
		return
	}
	response.Success(c, http.StatusOK, "category deleted", nil)
}
