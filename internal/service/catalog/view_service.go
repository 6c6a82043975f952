package catalog

import (
	"context"

	"zabudowy-service/internal/domain/catalog"
	"zabudowy-service/internal/domain/project"
	xerrors "zabudowy-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// viewPageSize caps how many projects a detail page shows.
const viewPageSize = 6

// ProjectLister narrows the project repository to what the read service needs.
type ProjectLister interface {
	ListPublished(ctx context.Context, categoryID string, limit int) ([]project.Project, error)
	ListFeatured(ctx context.Context, limit int) ([]project.Project, error)
	ListByBrandName(ctx context.Context, brandName string, limit int) ([]project.Project, error)
}

// BrandView is the denormalized payload for a brand detail page. Linked
// categories are returned whatever their published flag says; filtering is
// the presentation layer's call.
type BrandView struct {
	Brand      catalog.VehicleBrand   `json:"brand"`
	Categories []catalog.Category     `json:"categories"`
	Models     []catalog.VehicleModel `json:"models"`
	Gallery    []string               `json:"gallery"`
	Projects   []project.Project      `json:"projects"`
}

// CategoryView is the denormalized payload for a category detail page.
type CategoryView struct {
	Category       catalog.Category        `json:"category"`
	VehicleBrands  []catalog.VehicleBrand  `json:"vehicleBrands"`
	Features       []string                `json:"features"`
	Benefits       []string                `json:"benefits"`
	Specifications []catalog.Specification `json:"specifications"`
	Gallery        []string                `json:"gallery"`
	Projects       []project.Project       `json:"projects"`
}

// ViewService assembles the read-only catalog views. All operations are
// side-effect free and tolerate entities with zero links or projects.
type ViewService struct {
	brands     BrandRepository
	categories CategoryRepository
	projects   ProjectLister
	logger     *zap.Logger
}

func NewViewService(brands BrandRepository, categories CategoryRepository, projects ProjectLister, logger *zap.Logger) *ViewService {
	return &ViewService{
		brands:     brands,
		categories: categories,
		projects:   projects,
		logger:     logger,
	}
}

// GetBrandView resolves a brand by slug together with its linked categories,
// parsed documents, and recent projects. Projects are matched by substring
// containment against the free-text vehicle_brand label; the brand catalog
// has no foreign key from projects.
func (s *ViewService) GetBrandView(ctx context.Context, slug string) (*BrandView, error) {
	brand, err := s.brands.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	models, err := catalog.ParseModels(brand.Models)
	if err != nil {
		return nil, xerrors.Wrap(err, "invalid models document")
	}
	gallery, err := catalog.ParseStringList(brand.Gallery)
	if err != nil {
		return nil, xerrors.Wrap(err, "invalid gallery document")
	}

	projects, err := s.projects.ListByBrandName(ctx, brand.Name, viewPageSize)
	if err != nil {
		return nil, err
	}

	categories := brand.Categories
	if categories == nil {
		categories = []catalog.Category{}
	}

	return &BrandView{
		Brand:      *brand,
		Categories: categories,
		Models:     models,
		Gallery:    gallery,
		Projects:   projects,
	}, nil
}

// GetCategoryView resolves a category by slug together with its linked
// brands, parsed documents, and recent projects. Unlike the brand view,
// projects are selected by the strict category foreign key.
func (s *ViewService) GetCategoryView(ctx context.Context, slug string) (*CategoryView, error) {
	category, err := s.categories.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	features, err := catalog.ParseStringList(category.Features)
	if err != nil {
		return nil, xerrors.Wrap(err, "invalid features document")
	}
	benefits, err := catalog.ParseStringList(category.Benefits)
	if err != nil {
		return nil, xerrors.Wrap(err, "invalid benefits document")
	}
	specs, err := catalog.ParseSpecifications(category.Specifications)
	if err != nil {
		return nil, xerrors.Wrap(err, "invalid specifications document")
	}
	gallery, err := catalog.ParseStringList(category.Gallery)
	if err != nil {
		return nil, xerrors.Wrap(err, "invalid gallery document")
	}

	projects, err := s.projects.ListPublished(ctx, category.ID, viewPageSize)
	if err != nil {
		return nil, err
	}

	brands := category.VehicleBrands
	if brands == nil {
		brands = []catalog.VehicleBrand{}
	}

	return &CategoryView{
		Category:       *category,
		VehicleBrands:  brands,
		Features:       features,
		Benefits:       benefits,
		Specifications: specs,
		Gallery:        gallery,
		Projects:       projects,
	}, nil
}

// ListPublicProjects lists published projects for the portfolio pages. An
// unknown category slug yields an empty list rather than an error so a stale
// link renders an empty page.
func (s *ViewService) ListPublicProjects(ctx context.Context, filters *project.ListFilters) ([]project.Project, error) {
	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	if filters.Featured {
		return s.projects.ListFeatured(ctx, limit)
	}

	categoryID := ""
	if filters.CategorySlug != "" {
		category, err := s.categories.FindBySlug(ctx, filters.CategorySlug)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				return []project.Project{}, nil
			}
			return nil, err
		}
		categoryID = category.ID
	}

	return s.projects.ListPublished(ctx, categoryID, limit)
}
