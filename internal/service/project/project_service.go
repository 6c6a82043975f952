package project

import (
	"context"
	"strings"

	"zabudowy-service/internal/domain/project"
	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/gosimple/slug"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Repository is the storage surface the project service needs.
type Repository interface {
	Create(ctx context.Context, p *project.Project) error
	Update(ctx context.Context, p *project.Project) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*project.Project, error)
	FindBySlug(ctx context.Context, slug string) (*project.Project, error)
	ListAll(ctx context.Context) ([]project.Project, error)
	ListPublished(ctx context.Context, categoryID string, limit int) ([]project.Project, error)
	ListFeatured(ctx context.Context, limit int) ([]project.Project, error)
	ExistsSlug(ctx context.Context, slug, excludeID string) (bool, error)
}

type Service struct {
	projects Repository
	logger   *zap.Logger
}

func NewService(projects Repository, logger *zap.Logger) *Service {
	return &Service{
		projects: projects,
		logger:   logger,
	}
}

// CreateProject validates the payload and inserts a new project attributed to
// the authenticated admin. Slug collisions are rejected before any write.
func (s *Service) CreateProject(ctx context.Context, authorID string, req *project.Request) (*project.Project, error) {
	req.ApplyDefaults()

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, xerrors.InvalidInput("project title is required")
	}

	projectSlug, err := s.resolveSlug(ctx, req.Slug, title, "")
	if err != nil {
		return nil, err
	}

	p := &project.Project{
		ID:              ulid.Make().String(),
		Title:           title,
		Slug:            projectSlug,
		Description:     req.Description,
		Content:         req.Content,
		CategoryID:      req.CategoryID,
		VehicleBrand:    req.VehicleBrand,
		VehicleModel:    req.VehicleModel,
		Year:            req.Year,
		Images:          req.Images,
		Thumbnail:       req.Thumbnail,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Featured:        req.Featured,
		Published:       req.Published,
		AuthorID:        authorID,
	}

	if err := s.projects.Create(ctx, p); err != nil {
		s.logger.Error("failed to create project", zap.String("slug", projectSlug), zap.Error(err))
		return nil, err
	}

	s.logger.Info("project created",
		zap.String("project_id", p.ID),
		zap.String("slug", p.Slug),
	)

	return s.projects.FindByID(ctx, p.ID)
}

// UpdateProject performs a full-field replace. Authorship never changes.
func (s *Service) UpdateProject(ctx context.Context, id string, req *project.Request) (*project.Project, error) {
	req.ApplyDefaults()

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, xerrors.InvalidInput("project title is required")
	}

	projectSlug, err := s.resolveSlug(ctx, req.Slug, title, id)
	if err != nil {
		return nil, err
	}

	p := &project.Project{
		ID:              id,
		Title:           title,
		Slug:            projectSlug,
		Description:     req.Description,
		Content:         req.Content,
		CategoryID:      req.CategoryID,
		VehicleBrand:    req.VehicleBrand,
		VehicleModel:    req.VehicleModel,
		Year:            req.Year,
		Images:          req.Images,
		Thumbnail:       req.Thumbnail,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Featured:        req.Featured,
		Published:       req.Published,
	}

	if err := s.projects.Update(ctx, p); err != nil {
		s.logger.Error("failed to update project", zap.String("project_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("project updated", zap.String("project_id", id))

	return s.projects.FindByID(ctx, id)
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("project deleted", zap.String("project_id", id))
	return nil
}

func (s *Service) GetProject(ctx context.Context, id string) (*project.Project, error) {
	return s.projects.FindByID(ctx, id)
}

// GetPublishedProject resolves a project for the public site; unpublished
// projects are reported as missing.
func (s *Service) GetPublishedProject(ctx context.Context, slug string) (*project.Project, error) {
	p, err := s.projects.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, xerrors.ErrNotFound
	}
	return p, nil
}

func (s *Service) ListProjects(ctx context.Context) ([]project.Project, error) {
	return s.projects.ListAll(ctx)
}

func (s *Service) ListPublished(ctx context.Context, categoryID string, limit int) ([]project.Project, error) {
	return s.projects.ListPublished(ctx, categoryID, limit)
}

func (s *Service) ListFeatured(ctx context.Context, limit int) ([]project.Project, error) {
	return s.projects.ListFeatured(ctx, limit)
}

func (s *Service) resolveSlug(ctx context.Context, submitted, title, excludeID string) (string, error) {
	projectSlug := strings.TrimSpace(submitted)
	if projectSlug == "" {
		projectSlug = slug.Make(title)
	}

	exists, err := s.projects.ExistsSlug(ctx, projectSlug, excludeID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", xerrors.Conflict("project with slug %q already exists", projectSlug)
	}
	return projectSlug, nil
}
