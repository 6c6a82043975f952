package postgres

import (
	"context"
	"fmt"

	"zabudowy-service/internal/domain/settings"
	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingRepository struct {
	db *pgxpool.Pool
}

func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{db: db}
}

// Upsert writes a setting, inserting or overwriting by key. Settings have no
// delete path.
func (r *SettingRepository) Upsert(ctx context.Context, id, key, value string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO settings (id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, id, key, value)
	if err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", key, err)
	}
	return nil
}

// Get returns a single setting by key.
func (r *SettingRepository) Get(ctx context.Context, key string) (*settings.Setting, error) {
	var s settings.Setting
	err := r.db.QueryRow(ctx, `
		SELECT id, key, value, updated_at FROM settings WHERE key = $1
	`, key).Scan(&s.ID, &s.Key, &s.Value, &s.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return &s, nil
}

// List returns every setting, keyed order.
func (r *SettingRepository) List(ctx context.Context) ([]settings.Setting, error) {
	rows, err := r.db.Query(ctx, `SELECT id, key, value, updated_at FROM settings ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	out := []settings.Setting{}
	for rows.Next() {
		var s settings.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
