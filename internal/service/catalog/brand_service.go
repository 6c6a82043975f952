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

// BrandRepository is the storage surface the brand service needs. The
// postgres implementation runs each mutation together with its link rewrite
// in a single transaction.
type BrandRepository interface {
	Create(ctx context.Context, brand *catalog.VehicleBrand, categoryIDs []string) error
	Update(ctx context.Context, brand *catalog.VehicleBrand, categoryIDs []string) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*catalog.VehicleBrand, error)
	FindBySlug(ctx context.Context, slug string) (*catalog.VehicleBrand, error)
	List(ctx context.Context, publishedOnly bool) ([]catalog.VehicleBrand, error)
	ExistsSlug(ctx context.Context, slug, excludeID string) (bool, error)
}

type BrandService struct {
	brands BrandRepository
	logger *zap.Logger
}

func NewBrandService(brands BrandRepository, logger *zap.Logger) *BrandService {
	return &BrandService{
		brands: brands,
		logger: logger,
	}
}

// CreateBrand validates the payload, rejects slug collisions before any
// write, then inserts the brand together with its category links.
func (s *BrandService) CreateBrand(ctx context.Context, req *catalog.BrandRequest) (*catalog.VehicleBrand, error) {
	req.ApplyDefaults()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, xerrors.InvalidInput("brand name is required")
	}

	brandSlug, err := s.resolveSlug(ctx, req.Slug, name, "")
	if err != nil {
		return nil, err
	}

	brand := &catalog.VehicleBrand{
		ID:                 ulid.Make().String(),
		Name:               name,
		Slug:               brandSlug,
		FullName:           req.FullName,
		Description:        req.Description,
		LongDescription:    req.LongDescription,
		ContentDescription: req.ContentDescription,
		Type:               catalog.BrandType(req.Type),
		Models:             req.Models,
		Image:              req.Image,
		HeroImage:          req.HeroImage,
		Gallery:            req.Gallery,
		MetaTitle:          req.MetaTitle,
		MetaDescription:    req.MetaDescription,
		SortOrder:          req.SortOrder,
		Published:          *req.Published,
	}

	if err := s.brands.Create(ctx, brand, req.CategoryIDs); err != nil {
		s.logger.Error("failed to create vehicle brand", zap.String("slug", brandSlug), zap.Error(err))
		return nil, err
	}

	s.logger.Info("vehicle brand created",
		zap.String("brand_id", brand.ID),
		zap.String("slug", brand.Slug),
	)

	return s.brands.FindByID(ctx, brand.ID)
}

// UpdateBrand performs a full-field replace plus link resynchronization. The
// slug-collision check excludes the brand's own row; on conflict nothing is
// written.
func (s *BrandService) UpdateBrand(ctx context.Context, id string, req *catalog.BrandRequest) (*catalog.VehicleBrand, error) {
	req.ApplyDefaults()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, xerrors.InvalidInput("brand name is required")
	}

	brandSlug, err := s.resolveSlug(ctx, req.Slug, name, id)
	if err != nil {
		return nil, err
	}

	brand := &catalog.VehicleBrand{
		ID:                 id,
		Name:               name,
		Slug:               brandSlug,
		FullName:           req.FullName,
		Description:        req.Description,
		LongDescription:    req.LongDescription,
		ContentDescription: req.ContentDescription,
		Type:               catalog.BrandType(req.Type),
		Models:             req.Models,
		Image:              req.Image,
		HeroImage:          req.HeroImage,
		Gallery:            req.Gallery,
		MetaTitle:          req.MetaTitle,
		MetaDescription:    req.MetaDescription,
		SortOrder:          req.SortOrder,
		Published:          *req.Published,
	}

	if err := s.brands.Update(ctx, brand, req.CategoryIDs); err != nil {
		s.logger.Error("failed to update vehicle brand", zap.String("brand_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("vehicle brand updated",
		zap.String("brand_id", id),
		zap.Int("linked_categories", len(req.CategoryIDs)),
	)

	return s.brands.FindByID(ctx, id)
}

// DeleteBrand removes a brand unconditionally; the storage layer drops its
// join rows.
func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	if err := s.brands.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("vehicle brand deleted", zap.String("brand_id", id))
	return nil
}

func (s *BrandService) GetBrand(ctx context.Context, id string) (*catalog.VehicleBrand, error) {
	return s.brands.FindByID(ctx, id)
}

func (s *BrandService) ListBrands(ctx context.Context, publishedOnly bool) ([]catalog.VehicleBrand, error) {
	return s.brands.List(ctx, publishedOnly)
}

// resolveSlug trims the submitted slug, derives one from the name when the
// form left it empty, and enforces uniqueness.
func (s *BrandService) resolveSlug(ctx context.Context, submitted, name, excludeID string) (string, error) {
	brandSlug := strings.TrimSpace(submitted)
	if brandSlug == "" {
		brandSlug = slug.Make(name)
	}

	exists, err := s.brands.ExistsSlug(ctx, brandSlug, excludeID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", xerrors.Conflict("brand with slug %q already exists", brandSlug)
	}
	return brandSlug, nil
}
