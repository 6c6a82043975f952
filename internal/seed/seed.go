package seed

import (
	"context"
	"fmt"

	"zabudowy-service/internal/domain/catalog"
	"zabudowy-service/internal/domain/project"
	xerrors "zabudowy-service/internal/pkg/errors"
	catalogsvc "zabudowy-service/internal/service/catalog"
	projectsvc "zabudowy-service/internal/service/project"
	settingssvc "zabudowy-service/internal/service/settings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Seeder loads the starter catalog. Every fixture is keyed by slug and
// skipped when it already exists, so running the seed twice is harmless.
type Seeder struct {
	brands     catalogsvc.BrandRepository
	categories catalogsvc.CategoryRepository
	projects   projectsvc.Repository
	settings   settingssvc.Repository
	logger     *zap.Logger
}

func NewSeeder(
	brands catalogsvc.BrandRepository,
	categories catalogsvc.CategoryRepository,
	projects projectsvc.Repository,
	settings settingssvc.Repository,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		brands:     brands,
		categories: categories,
		projects:   projects,
		settings:   settings,
		logger:     logger,
	}
}

type brandFixture struct {
	brand catalog.VehicleBrand
}

type categoryFixture struct {
	category   catalog.Category
	brandSlugs []string
}

type projectFixture struct {
	project      project.Project
	categorySlug string
}

// Run inserts all fixtures that are not present yet.
func (s *Seeder) Run(ctx context.Context, authorID string) error {
	brandIDs, err := s.seedBrands(ctx)
	if err != nil {
		return fmt.Errorf("seed brands: %w", err)
	}

	categoryIDs, err := s.seedCategories(ctx, brandIDs)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	if err := s.seedProjects(ctx, categoryIDs, authorID); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	if err := s.seedSettings(ctx); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	s.logger.Info("seed completed")
	return nil
}

func (s *Seeder) seedBrands(ctx context.Context) (map[string]string, error) {
	ids := make(map[string]string)

	for _, f := range brandFixtures {
		existing, err := s.brands.FindBySlug(ctx, f.brand.Slug)
		if err == nil {
			ids[f.brand.Slug] = existing.ID
			continue
		}
		if !xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, err
		}

		b := f.brand
		b.ID = ulid.Make().String()
		if err := s.brands.Create(ctx, &b, nil); err != nil {
			return nil, err
		}
		ids[b.Slug] = b.ID
		s.logger.Info("seeded brand", zap.String("slug", b.Slug))
	}

	return ids, nil
}

func (s *Seeder) seedCategories(ctx context.Context, brandIDs map[string]string) (map[string]string, error) {
	ids := make(map[string]string)

	for _, f := range categoryFixtures {
		existing, err := s.categories.FindBySlug(ctx, f.category.Slug)
		if err == nil {
			ids[f.category.Slug] = existing.ID
			continue
		}
		if !xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, err
		}

		linked := make([]string, 0, len(f.brandSlugs))
		for _, slug := range f.brandSlugs {
			if id, ok := brandIDs[slug]; ok {
				linked = append(linked, id)
			}
		}

		cat := f.category
		cat.ID = ulid.Make().String()
		if err := s.categories.Create(ctx, &cat, linked); err != nil {
			return nil, err
		}
		ids[cat.Slug] = cat.ID
		s.logger.Info("seeded category", zap.String("slug", cat.Slug), zap.Int("brands", len(linked)))
	}

	return ids, nil
}

func (s *Seeder) seedProjects(ctx context.Context, categoryIDs map[string]string, authorID string) error {
	for _, f := range projectFixtures {
		exists, err := s.projects.ExistsSlug(ctx, f.project.Slug, "")
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		p := f.project
		p.ID = ulid.Make().String()
		p.CategoryID = categoryIDs[f.categorySlug]
		p.AuthorID = authorID
		if p.Images == nil {
			p.Images = []string{}
		}
		if err := s.projects.Create(ctx, &p); err != nil {
			return err
		}
		s.logger.Info("seeded project", zap.String("slug", p.Slug))
	}

	return nil
}

func (s *Seeder) seedSettings(ctx context.Context) error {
	for _, kv := range settingFixtures {
		existing, err := s.settings.Get(ctx, kv.key)
		if err == nil && existing.Value != "" {
			continue
		}
		if err != nil && !xerrors.Is(err, xerrors.ErrNotFound) {
			return err
		}
		if err := s.settings.Upsert(ctx, ulid.Make().String(), kv.key, kv.value); err != nil {
			return err
		}
	}
	return nil
}
