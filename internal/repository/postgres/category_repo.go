package postgres

import (
	"context"
	"fmt"
	"strings"

	"zabudowy-service/internal/domain/catalog"
	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, name, slug, description, long_description, content_description,
	icon, color, features, benefits, specifications, image, hero_image, gallery,
	meta_title, meta_description, sort_order, published, created_at, updated_at`

// prefixColumns qualifies every column of a comma-separated list with a table
// alias, for use in join queries.
func prefixColumns(columns, alias string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

type CategoryRepository struct {
	db    *pgxpool.Pool
	links *CatalogLinkRepository
}

func NewCategoryRepository(db *pgxpool.Pool, links *CatalogLinkRepository) *CategoryRepository {
	return &CategoryRepository{db: db, links: links}
}

// Create inserts the category and its brand links in one transaction.
func (r *CategoryRepository) Create(ctx context.Context, category *catalog.Category, brandIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO categories (
			id, name, slug, description, long_description, content_description,
			icon, color, features, benefits, specifications, image, hero_image, gallery,
			meta_title, meta_description, sort_order, published
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at, updated_at
	`,
		category.ID, category.Name, category.Slug, category.Description,
		category.LongDescription, category.ContentDescription, category.Icon, category.Color,
		category.Features, category.Benefits, category.Specifications, category.Image,
		category.HeroImage, category.Gallery, category.MetaTitle, category.MetaDescription,
		category.SortOrder, category.Published,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return xerrors.Conflict("category with slug %q already exists", category.Slug)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	if err := r.links.ReplaceForCategory(ctx, tx, category.ID, brandIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update replaces every editable field and rebuilds the brand links in one
// transaction.
func (r *CategoryRepository) Update(ctx context.Context, category *catalog.Category, brandIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE categories SET
			name = $2, slug = $3, description = $4, long_description = $5,
			content_description = $6, icon = $7, color = $8, features = $9, benefits = $10,
			specifications = $11, image = $12, hero_image = $13, gallery = $14,
			meta_title = $15, meta_description = $16, sort_order = $17, published = $18,
			updated_at = now()
		WHERE id = $1
	`,
		category.ID, category.Name, category.Slug, category.Description,
		category.LongDescription, category.ContentDescription, category.Icon, category.Color,
		category.Features, category.Benefits, category.Specifications, category.Image,
		category.HeroImage, category.Gallery, category.MetaTitle, category.MetaDescription,
		category.SortOrder, category.Published,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return xerrors.Conflict("category with slug %q already exists", category.Slug)
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.NotFound("category %s not found", category.ID)
	}

	if err := r.links.ReplaceForCategory(ctx, tx, category.ID, brandIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the category; join rows cascade. Callers are responsible for
// the no-dependent-projects check.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.NotFound("category %s not found", id)
	}
	return nil
}

// FindByID loads a category with its linked brands.
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*catalog.Category, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindBySlug loads a category with its linked brands.
func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	return r.findOne(ctx, "slug = $1", slug)
}

func (r *CategoryRepository) findOne(ctx context.Context, where string, arg interface{}) (*catalog.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE %s`, categoryColumns, where)

	category, err := scanCategory(r.db.QueryRow(ctx, query, arg))
	if err == pgx.ErrNoRows {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	brands, err := r.linkedBrands(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	category.VehicleBrands = brands
	return category, nil
}

// List returns categories ordered for display, each with its linked brands.
func (r *CategoryRepository) List(ctx context.Context, publishedOnly bool) ([]catalog.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories`, categoryColumns)
	if publishedOnly {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY sort_order ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []catalog.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachBrands(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ExistsSlug reports whether another category already uses the slug.
func (r *CategoryRepository) ExistsSlug(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)
	`, slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category slug: %w", err)
	}
	return exists, nil
}

// CountProjects counts the projects referencing the category; a non-zero
// count blocks deletion at the service layer.
func (r *CategoryRepository) CountProjects(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count category projects: %w", err)
	}
	return count, nil
}

func (r *CategoryRepository) linkedBrands(ctx context.Context, categoryID string) ([]catalog.VehicleBrand, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM vehicle_brands b
		JOIN category_vehicle_brands cvb ON cvb.vehicle_brand_id = b.id
		WHERE cvb.category_id = $1
		ORDER BY b.sort_order ASC, b.name ASC
	`, prefixColumns(brandColumns, "b"))

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load linked brands: %w", err)
	}
	defer rows.Close()

	brands := []catalog.VehicleBrand{}
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan linked brand: %w", err)
		}
		brands = append(brands, *brand)
	}
	return brands, rows.Err()
}

func (r *CategoryRepository) attachBrands(ctx context.Context, categories []catalog.Category) error {
	if len(categories) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		SELECT cvb.category_id, %s FROM vehicle_brands b
		JOIN category_vehicle_brands cvb ON cvb.vehicle_brand_id = b.id
		ORDER BY b.sort_order ASC, b.name ASC
	`, prefixColumns(brandColumns, "b"))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to load brand links: %w", err)
	}
	defer rows.Close()

	byCategory := map[string][]catalog.VehicleBrand{}
	for rows.Next() {
		var categoryID string
		var b catalog.VehicleBrand
		if err := rows.Scan(
			&categoryID,
			&b.ID, &b.Name, &b.Slug, &b.FullName, &b.Description, &b.LongDescription,
			&b.ContentDescription, &b.Type, &b.Models, &b.Image, &b.HeroImage, &b.Gallery,
			&b.MetaTitle, &b.MetaDescription, &b.SortOrder, &b.Published,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan brand link: %w", err)
		}
		byCategory[categoryID] = append(byCategory[categoryID], b)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range categories {
		if linked, ok := byCategory[categories[i].ID]; ok {
			categories[i].VehicleBrands = linked
		} else {
			categories[i].VehicleBrands = []catalog.VehicleBrand{}
		}
	}
	return nil
}

func scanCategory(row rowScanner) (*catalog.Category, error) {
	var c catalog.Category
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.LongDescription, &c.ContentDescription,
		&c.Icon, &c.Color, &c.Features, &c.Benefits, &c.Specifications,
		&c.Image, &c.HeroImage, &c.Gallery, &c.MetaTitle, &c.MetaDescription,
		&c.SortOrder, &c.Published, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
