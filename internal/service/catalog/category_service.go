package catalog

import (
	"context"
	"strings"

	"zabudowy-service/internal/domain/catalog"
	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/gosimple/slug"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// CategoryRepository is the storage surface the category service needs.
type CategoryRepository interface {
	Create(ctx context.Context, category *catalog.Category, brandIDs []string) error
	Update(ctx context.Context, category *catalog.Category, brandIDs []string) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*catalog.Category, error)
	FindBySlug(ctx context.Context, slug string) (*catalog.Category, error)
	List(ctx context.Context, publishedOnly bool) ([]catalog.Category, error)
	ExistsSlug(ctx context.Context, slug, excludeID string) (bool, error)
	CountProjects(ctx context.Context, categoryID string) (int, error)
}

type CategoryService struct {
	categories CategoryRepository
	logger     *zap.Logger
}

func NewCategoryService(categories CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		logger:     logger,
	}
}

// CreateCategory validates the payload, rejects slug collisions before any
// write, then inserts the category together with its brand links.
func (s *CategoryService) CreateCategory(ctx context.Context, req *catalog.CategoryRequest) (*catalog.Category, error) {
	req.ApplyDefaults()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, xerrors.InvalidInput("category name is required")
	}

	categorySlug, err := s.resolveSlug(ctx, req.Slug, name, "")
	if err != nil {
		return nil, err
	}

	category := s.buildCategory(ulid.Make().String(), name, categorySlug, req)
	if err := s.categories.Create(ctx, category, req.VehicleBrandIDs); err != nil {
		s.logger.Error("failed to create category", zap.String("slug", categorySlug), zap.Error(err))
		return nil, err
	}

	s.logger.Info("category created",
		zap.String("category_id", category.ID),
		zap.String("slug", category.Slug),
	)

	return s.categories.FindByID(ctx, category.ID)
}

// UpdateCategory performs a full-field replace plus link resynchronization.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req *catalog.CategoryRequest) (*catalog.Category, error) {
	req.ApplyDefaults()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, xerrors.InvalidInput("category name is required")
	}

	categorySlug, err := s.resolveSlug(ctx, req.Slug, name, id)
	if err != nil {
		return nil, err
	}

	category := s.buildCategory(id, name, categorySlug, req)
	if err := s.categories.Update(ctx, category, req.VehicleBrandIDs); err != nil {
		s.logger.Error("failed to update category", zap.String("category_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("category updated",
		zap.String("category_id", id),
		zap.Int("linked_brands", len(req.VehicleBrandIDs)),
	)

	return s.categories.FindByID(ctx, id)
}

// DeleteCategory refuses to remove a category that still has projects; the
// conflict message names the dependent count.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	count, err := s.categories.CountProjects(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return xerrors.Conflict("cannot delete category with %d projects", count)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("category deleted", zap.String("category_id", id))
	return nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*catalog.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) ListCategories(ctx context.Context, publishedOnly bool) ([]catalog.Category, error) {
	return s.categories.List(ctx, publishedOnly)
}

func (s *CategoryService) buildCategory(id, name, categorySlug string, req *catalog.CategoryRequest) *catalog.Category {
	return &catalog.Category{
		ID:                 id,
		Name:               name,
		Slug:               categorySlug,
		Description:        req.Description,
		LongDescription:    req.LongDescription,
		ContentDescription: req.ContentDescription,
		Icon:               req.Icon,
		Color:              req.Color,
		Features:           req.Features,
		Benefits:           req.Benefits,
		Specifications:     req.Specifications,
		Image:              req.Image,
		HeroImage:          req.HeroImage,
		Gallery:            req.Gallery,
		MetaTitle:          req.MetaTitle,
		MetaDescription:    req.MetaDescription,
		SortOrder:          req.SortOrder,
		Published:          *req.Published,
	}
}

func (s *CategoryService) resolveSlug(ctx context.Context, submitted, name, excludeID string) (string, error) {
	categorySlug := strings.TrimSpace(submitted)
	if categorySlug == "" {
		categorySlug = slug.Make(name)
	}

	exists, err := s.categories.ExistsSlug(ctx, categorySlug, excludeID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", xerrors.Conflict("category with slug %q already exists", categorySlug)
	}
	return categorySlug, nil
}
