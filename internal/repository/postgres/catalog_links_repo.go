package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// CatalogLinkRepository maintains the category_vehicle_brands join table. Both
// operations run inside the caller's transaction together with the owning
// entity's write, so readers never observe the links half-rebuilt.
type CatalogLinkRepository struct{}

func NewCatalogLinkRepository() *CatalogLinkRepository {
	return &CatalogLinkRepository{}
}

// ReplaceForCategory drops every link owned by the category and recreates one
// row per distinct brand id. An empty set leaves the category unlinked.
func (r *CatalogLinkRepository) ReplaceForCategory(ctx context.Context, tx pgx.Tx, categoryID string, brandIDs []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM category_vehicle_brands WHERE category_id = $1`, categoryID); err != nil {
		return fmt.Errorf("failed to clear category links: %w", err)
	}

	for _, brandID := range dedupeIDs(brandIDs) {
		_, err := tx.Exec(ctx, `
			INSERT INTO category_vehicle_brands (category_id, vehicle_brand_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, categoryID, brandID)
		if err != nil {
			return fmt.Errorf("failed to link category %s to brand %s: %w", categoryID, brandID, err)
		}
	}
	return nil
}

// ReplaceForBrand is the mirror of ReplaceForCategory for the brand side.
func (r *CatalogLinkRepository) ReplaceForBrand(ctx context.Context, tx pgx.Tx, brandID string, categoryIDs []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM category_vehicle_brands WHERE vehicle_brand_id = $1`, brandID); err != nil {
		return fmt.Errorf("failed to clear brand links: %w", err)
	}

	for _, categoryID := range dedupeIDs(categoryIDs) {
		_, err := tx.Exec(ctx, `
			INSERT INTO category_vehicle_brands (category_id, vehicle_brand_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, categoryID, brandID)
		if err != nil {
			return fmt.Errorf("failed to link brand %s to category %s: %w", brandID, categoryID, err)
		}
	}
	return nil
}

// dedupeIDs drops duplicate and empty ids while keeping submission order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
