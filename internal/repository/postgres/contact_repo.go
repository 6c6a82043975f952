package postgres

import (
	"context"
	"fmt"

	"zabudowy-service/internal/domain/contact"
	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactMessageRepository struct {
	db *pgxpool.Pool
}

func NewContactMessageRepository(db *pgxpool.Pool) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

// Create appends a new inquiry with read = false.
func (r *ContactMessageRepository) Create(ctx context.Context, m *contact.Message) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, read)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING read, created_at
	`, m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Message).Scan(&m.Read, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// List returns all messages, newest first.
func (r *ContactMessageRepository) List(ctx context.Context) ([]contact.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, subject, message, read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []contact.Message{}
	for rows.Next() {
		var m contact.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// UnreadCount counts messages not yet marked as read.
func (r *ContactMessageRepository) UnreadCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE read = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

// MarkRead flips the read flag, the only mutation messages ever receive.
func (r *ContactMessageRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE contact_messages SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.NotFound("contact message %s not found", id)
	}
	return nil
}
