package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Manager stores admin sessions in redis. Redis is the single source of
// truth: a missing key means the session is gone, whatever the token says.
type Manager struct {
	client *redis.Client
}

func NewManager(client *redis.Client) *Manager {
	return &Manager{client: client}
}

// Create stores a new session under session:<user>:<jti> with a TTL matching
// the session expiry.
func (m *Manager) Create(ctx context.Context, data *Data) error {
	ttl := time.Until(data.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := m.client.Set(ctx, m.key(data.UserID, data.JTI), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

// Get retrieves a session; redis.Nil is reported as a plain not-found error.
func (m *Manager) Get(ctx context.Context, userID, jti string) (*Data, error) {
	raw, err := m.client.Get(ctx, m.key(userID, jti)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &data, nil
}

// Touch updates the last-activity timestamp without extending the TTL.
func (m *Manager) Touch(ctx context.Context, userID, jti string) error {
	data, err := m.Get(ctx, userID, jti)
	if err != nil {
		return nil
	}

	data.LastActivityAt = time.Now()
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	ttl := time.Until(data.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return m.client.Set(ctx, m.key(userID, jti), raw, ttl).Err()
}

// Invalidate removes a single session.
func (m *Manager) Invalidate(ctx context.Context, userID, jti string) error {
	return m.client.Del(ctx, m.key(userID, jti)).Err()
}

// InvalidateAll removes every session belonging to a user.
func (m *Manager) InvalidateAll(ctx context.Context, userID string) error {
	iter := m.client.Scan(ctx, 0, fmt.Sprintf("session:%s:*", userID), 0).Iterator()
	for iter.Next(ctx) {
		if err := m.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (m *Manager) key(userID, jti string) string {
	return fmt.Sprintf("session:%s:%s", userID, jti)
}
