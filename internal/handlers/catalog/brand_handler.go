package catalog

import (
	"net/http"

	"zabudowy-service/internal/domain/catalog"
	"zabudowy-service/internal/pkg/response"
	service "zabudowy-service/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

type BrandHandler struct {
	brandService *service.BrandService
}

func NewBrandHandler(brandService *service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// ListBrands returns every brand, drafts included.
func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.brandService.ListBrands(c.Request.Context(), false)
	if err != nil {
		response.FromError(c, err, "failed to list brands")
		return
	}
	response.Success(c, http.StatusOK, "brands retrieved", brands)
}

func (h *BrandHandler) GetBrand(c *gin.Context) {
	brand, err := h.brandService.GetBrand(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "brand not found")
		return
	}
	response.Success(c, http.StatusOK, "brand retrieved", brand)
}

func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req catalog.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	brand, err := h.brandService.CreateBrand(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "failed to create brand")
		return
	}
	response.Success(c, http.StatusCreated, "brand created", brand)
}

func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	var req catalog.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	brand, err := h.brandService.UpdateBrand(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err, "failed to update brand")
		return
	}
	response.Success(c, http.StatusOK, "brand updated", brand)
}

func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	if err := h.brandService.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err, "failed to delete brand")
		return
	}
	response.Success(c, http.StatusOK, "brand deleted", nil)
}
