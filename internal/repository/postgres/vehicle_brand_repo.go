package postgres

import (
	"context"
	"fmt"

	"zabudowy-service/internal/domain/catalog"
	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const brandColumns = `id, name, slug, full_name, description, long_description, content_description,
	type, models, image, hero_image, gallery, meta_title, meta_description,
	sort_order, published, created_at, updated_at`

type VehicleBrandRepository struct {
	db    *pgxpool.Pool
	links *CatalogLinkRepository
}

func NewVehicleBrandRepository(db *pgxpool.Pool, links *CatalogLinkRepository) *VehicleBrandRepository {
	return &VehicleBrandRepository{db: db, links: links}
}

// Create inserts the brand and its category links in one transaction.
func (r *VehicleBrandRepository) Create(ctx context.Context, brand *catalog.VehicleBrand, categoryIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO vehicle_brands (
			id, name, slug, full_name, description, long_description, content_description,
			type, models, image, hero_image, gallery, meta_title, meta_description,
			sort_order, published
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at
	`,
		brand.ID, brand.Name, brand.Slug, brand.FullName, brand.Description,
		brand.LongDescription, brand.ContentDescription, brand.Type, brand.Models,
		brand.Image, brand.HeroImage, brand.Gallery, brand.MetaTitle, brand.MetaDescription,
		brand.SortOrder, brand.Published,
	).Scan(&brand.CreatedAt, &brand.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return xerrors.Conflict("brand with slug %q already exists", brand.Slug)
		}
		return fmt.Errorf("failed to create vehicle brand: %w", err)
	}

	if err := r.links.ReplaceForBrand(ctx, tx, brand.ID, categoryIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update replaces every editable field and rebuilds the category links in one
// transaction.
func (r *VehicleBrandRepository) Update(ctx context.Context, brand *catalog.VehicleBrand, categoryIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE vehicle_brands SET
			name = $2, slug = $3, full_name = $4, description = $5, long_description = $6,
			content_description = $7, type = $8, models = $9, image = $10, hero_image = $11,
			gallery = $12, meta_title = $13, meta_description = $14, sort_order = $15,
			published = $16, updated_at = now()
		WHERE id = $1
	`,
		brand.ID, brand.Name, brand.Slug, brand.FullName, brand.Description,
		brand.LongDescription, brand.ContentDescription, brand.Type, brand.Models,
		brand.Image, brand.HeroImage, brand.Gallery, brand.MetaTitle, brand.MetaDescription,
		brand.SortOrder, brand.Published,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return xerrors.Conflict("brand with slug %q already exists", brand.Slug)
		}
		return fmt.Errorf("failed to update vehicle brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.NotFound("vehicle brand %s not found", brand.ID)
	}

	if err := r.links.ReplaceForBrand(ctx, tx, brand.ID, categoryIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the brand; its join rows go with it via ON DELETE CASCADE.
func (r *VehicleBrandRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vehicle_brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.NotFound("vehicle brand %s not found", id)
	}
	return nil
}

// FindByID loads a brand with its linked categories.
func (r *VehicleBrandRepository) FindByID(ctx context.Context, id string) (*catalog.VehicleBrand, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindBySlug loads a brand with its linked categories.
func (r *VehicleBrandRepository) FindBySlug(ctx context.Context, slug string) (*catalog.VehicleBrand, error) {
	return r.findOne(ctx, "slug = $1", slug)
}

func (r *VehicleBrandRepository) findOne(ctx context.Context, where string, arg interface{}) (*catalog.VehicleBrand, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicle_brands WHERE %s`, brandColumns, where)

	brand, err := scanBrand(r.db.QueryRow(ctx, query, arg))
	if err == pgx.ErrNoRows {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle brand: %w", err)
	}

	categories, err := r.linkedCategories(ctx, brand.ID)
	if err != nil {
		return nil, err
	}
	brand.Categories = categories
	return brand, nil
}

// List returns brands ordered for display. When publishedOnly is set,
// unpublished brands are skipped. Linked categories are resolved in a single
// follow-up query.
func (r *VehicleBrandRepository) List(ctx context.Context, publishedOnly bool) ([]catalog.VehicleBrand, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicle_brands`, brandColumns)
	if publishedOnly {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY sort_order ASC, name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle brands: %w", err)
	}
	defer rows.Close()

	var brands []catalog.VehicleBrand
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle brand: %w", err)
		}
		brands = append(brands, *brand)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachCategories(ctx, brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// ExistsSlug reports whether another brand already uses the slug. excludeID
// may be empty on create.
func (r *VehicleBrandRepository) ExistsSlug(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM vehicle_brands WHERE slug = $1 AND id <> $2)
	`, slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check brand slug: %w", err)
	}
	return exists, nil
}

func (r *VehicleBrandRepository) linkedCategories(ctx context.Context, brandID string) ([]catalog.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM categories c
		JOIN category_vehicle_brands cvb ON cvb.category_id = c.id
		WHERE cvb.vehicle_brand_id = $1
		ORDER BY c.sort_order ASC, c.name ASC
	`, prefixColumns(categoryColumns, "c"))

	rows, err := r.db.Query(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to load linked categories: %w", err)
	}
	defer rows.Close()

	categories := []catalog.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan linked category: %w", err)
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

func (r *VehicleBrandRepository) attachCategories(ctx context.Context, brands []catalog.VehicleBrand) error {
	if len(brands) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		SELECT cvb.vehicle_brand_id, %s FROM categories c
		JOIN category_vehicle_brands cvb ON cvb.category_id = c.id
		ORDER BY c.sort_order ASC, c.name ASC
	`, prefixColumns(categoryColumns, "c"))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to load category links: %w", err)
	}
	defer rows.Close()

	byBrand := map[string][]catalog.Category{}
	for rows.Next() {
		var brandID string
		var c catalog.Category
		if err := rows.Scan(
			&brandID,
			&c.ID, &c.Name, &c.Slug, &c.Description, &c.LongDescription, &c.ContentDescription,
			&c.Icon, &c.Color, &c.Features, &c.Benefits, &c.Specifications,
			&c.Image, &c.HeroImage, &c.Gallery, &c.MetaTitle, &c.MetaDescription,
			&c.SortOrder, &c.Published, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan category link: %w", err)
		}
		byBrand[brandID] = append(byBrand[brandID], c)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range brands {
		if linked, ok := byBrand[brands[i].ID]; ok {
			brands[i].Categories = linked
		} else {
			brands[i].Categories = []catalog.Category{}
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBrand(row rowScanner) (*catalog.VehicleBrand, error) {
	var b catalog.VehicleBrand
	err := row.Scan(
		&b.ID, &b.Name, &b.Slug, &b.FullName, &b.Description, &b.LongDescription,
		&b.ContentDescription, &b.Type, &b.Models, &b.Image, &b.HeroImage, &b.Gallery,
		&b.MetaTitle, &b.MetaDescription, &b.SortOrder, &b.Published,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
