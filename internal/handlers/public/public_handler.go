package public

import (
	"net/http"

	"zabudowy-service/internal/domain/project"
	"zabudowy-service/internal/pkg/response"
	catalogsvc "zabudowy-service/internal/service/catalog"
	projectsvc "zabudowy-service/internal/service/project"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated website endpoints. Everything it
// returns is restricted to published content.
type PublicHandler struct {
	brandService    *catalogsvc.BrandService
	categoryService *catalogsvc.CategoryService
	viewService     *catalogsvc.ViewService
	projectService  *projectsvc.Service
}

func NewPublicHandler(
	brandService *catalogsvc.BrandService,
	categoryService *catalogsvc.CategoryService,
	viewService *catalogsvc.ViewService,
	projectService *projectsvc.Service,
) *PublicHandler {
	return &PublicHandler{
		brandService:    brandService,
		categoryService: categoryService,
		viewService:     viewService,
		projectService:  projectService,
	}
}

// ListBrands returns the published brand catalog for navigation.
func (h *PublicHandler) ListBrands(c *gin.Context) {
	brands, err := h.brandService.ListBrands(c.Request.Context(), true)
	if err != nil {
		response.FromError(c, err, "failed to list brands")
		return
	}
	response.Success(c, http.StatusOK, "brands retrieved", brands)
}

// ListCategories returns the published category catalog.
func (h *PublicHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context(), true)
	if err != nil {
		response.FromError(c, err, "failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, "categories retrieved", categories)
}

// GetBrandView serves a brand detail page payload by slug.
func (h *PublicHandler) GetBrandView(c *gin.Context) {
	view, err := h.viewService.GetBrandView(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err, "brand not found")
		return
	}
	response.Success(c, http.StatusOK, "brand retrieved", view)
}

// GetCategoryView serves a category detail page payload by slug.
func (h *PublicHandler) GetCategoryView(c *gin.Context) {
	view, err := h.viewService.GetCategoryView(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err, "category not found")
		return
	}
	response.Success(c, http.StatusOK, "category retrieved", view)
}

// ListProjects serves the portfolio listing with optional category, featured
// and limit filters.
func (h *PublicHandler) ListProjects(c *gin.Context) {
	var filters project.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters", err)
		return
	}

	projects, err := h.viewService.ListPublicProjects(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, err, "failed to list projects")
		return
	}
	response.Success(c, http.StatusOK, "projects retrieved", projects)
}

// ListFeaturedProjects serves the landing-page selection of featured projects.
func (h *PublicHandler) ListFeaturedProjects(c *gin.Context) {
	filters := project.ListFilters{Featured: true}
	projects, err := h.viewService.ListPublicProjects(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, err, "failed to list featured projects")
		return
	}
	response.Success(c, http.StatusOK, "projects retrieved", projects)
}

// GetProject serves a single published project by slug. Drafts 404 here even
// when the slug matches.
func (h *PublicHandler) GetProject(c *gin.Context) {
	p, err := h.projectService.GetPublishedProject(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err, "project not found")
		return
	}
	response.Success(c, http.StatusOK, "project retrieved", p)
}
