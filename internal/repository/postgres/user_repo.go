package postgres

import (
	"context"
	"fmt"

	"zabudowy-service/internal/domain/user"
	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg interface{}) (*user.User, error) {
	var u user.User
	query := fmt.Sprintf(`
		SELECT id, email, password, name, role, created_at, updated_at
		FROM users WHERE %s
	`, where)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

// EnsureAdmin inserts the admin account if the email is not taken yet and
// returns the stored row either way. Existing accounts are left untouched.
func (r *UserRepository) EnsureAdmin(ctx context.Context, u *user.User) (*user.User, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password, name, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`, u.ID, u.Email, u.Password, u.Name, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure admin user: %w", err)
	}
	return r.FindByEmail(ctx, u.Email)
}
