package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"zabudowy-service/internal/domain/catalog"
	"zabudowy-service/internal/domain/project"
	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, title, slug, description, content, COALESCE(category_id, ''),
	vehicle_brand, vehicle_model, year, images, thumbnail, meta_title, meta_description,
	featured, published, COALESCE(author_id, ''), created_at, updated_at`

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project. The author is set here and never changes.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal project images: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO projects (
			id, title, slug, description, content, category_id, vehicle_brand, vehicle_model,
			year, images, thumbnail, meta_title, meta_description, featured, published, author_id
		) VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13, $14, $15, NULLIF($16, ''))
		RETURNING created_at, updated_at
	`,
		p.ID, p.Title, p.Slug, p.Description, p.Content, p.CategoryID, p.VehicleBrand,
		p.VehicleModel, p.Year, imagesJSON, p.Thumbnail, p.MetaTitle, p.MetaDescription,
		p.Featured, p.Published, p.AuthorID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return xerrors.Conflict("project with slug %q already exists", p.Slug)
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update replaces every editable field; author_id is left untouched.
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal project images: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE projects SET
			title = $2, slug = $3, description = $4, content = $5, category_id = NULLIF($6, ''),
			vehicle_brand = $7, vehicle_model = $8, year = $9, images = $10, thumbnail = $11,
			meta_title = $12, meta_description = $13, featured = $14, published = $15,
			updated_at = now()
		WHERE id = $1
	`,
		p.ID, p.Title, p.Slug, p.Description, p.Content, p.CategoryID, p.VehicleBrand,
		p.VehicleModel, p.Year, imagesJSON, p.Thumbnail, p.MetaTitle, p.MetaDescription,
		p.Featured, p.Published,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return xerrors.Conflict("project with slug %q already exists", p.Slug)
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.NotFound("project %s not found", p.ID)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.NotFound("project %s not found", id)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*project.Project, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*project.Project, error) {
	return r.findOne(ctx, "slug = $1", slug)
}

func (r *ProjectRepository) findOne(ctx context.Context, where string, arg interface{}) (*project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE %s`, projectColumns, where)

	p, err := scanProject(r.db.QueryRow(ctx, query, arg))
	if err == pgx.ErrNoRows {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	projects := []project.Project{*p}
	if err := r.attachCategories(ctx, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

// ListAll returns every project for the admin screens, newest first.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects ORDER BY created_at DESC`, projectColumns)
	return r.list(ctx, query)
}

// ListPublished returns published projects, optionally narrowed to one
// category, newest first. limit <= 0 means no limit.
func (r *ProjectRepository) ListPublished(ctx context.Context, categoryID string, limit int) ([]project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE published = TRUE`, projectColumns)
	args := []interface{}{}
	if categoryID != "" {
		query += ` AND category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}
	return r.list(ctx, query, args...)
}

// ListFeatured returns published projects flagged for the landing page.
func (r *ProjectRepository) ListFeatured(ctx context.Context, limit int) ([]project.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE published = TRUE AND featured = TRUE
		ORDER BY created_at DESC
	`, projectColumns)
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}
	return r.list(ctx, query)
}

// ListByBrandName returns published projects whose free-text vehicle_brand
// label contains the given brand name. The match is case-sensitive substring
// containment; projects carry no foreign key into the brand catalog.
func (r *ProjectRepository) ListByBrandName(ctx context.Context, brandName string, limit int) ([]project.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE published = TRUE AND vehicle_brand LIKE '%%' || $1 || '%%'
		ORDER BY created_at DESC
	`, projectColumns)
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}
	return r.list(ctx, query, brandName)
}

func (r *ProjectRepository) list(ctx context.Context, query string, args ...interface{}) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachCategories(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ExistsSlug reports whether another project already uses the slug.
func (r *ProjectRepository) ExistsSlug(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM projects WHERE slug = $1 AND id <> $2)
	`, slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project slug: %w", err)
	}
	return exists, nil
}

func (r *ProjectRepository) attachCategories(ctx context.Context, projects []project.Project) error {
	ids := make([]string, 0, len(projects))
	seen := map[string]struct{}{}
	for _, p := range projects {
		if p.CategoryID == "" {
			continue
		}
		if _, ok := seen[p.CategoryID]; ok {
			continue
		}
		seen[p.CategoryID] = struct{}{}
		ids = append(ids, p.CategoryID)
	}
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`SELECT %s FROM categories WHERE id = ANY($1)`, categoryColumns)
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load project categories: %w", err)
	}
	defer rows.Close()

	byID := map[string]catalog.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return fmt.Errorf("failed to scan project category: %w", err)
		}
		byID[c.ID] = *c
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range projects {
		if c, ok := byID[projects[i].CategoryID]; ok {
			category := c
			projects[i].Category = &category
		}
	}
	return nil
}

func scanProject(row rowScanner) (*project.Project, error) {
	var p project.Project
	var imagesJSON []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Content, &p.CategoryID,
		&p.VehicleBrand, &p.VehicleModel, &p.Year, &imagesJSON, &p.Thumbnail,
		&p.MetaTitle, &p.MetaDescription, &p.Featured, &p.Published, &p.AuthorID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Images = []string{}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project images: %w", err)
		}
	}
	return &p, nil
}
