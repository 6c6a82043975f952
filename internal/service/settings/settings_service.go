package settings

import (
	"context"
	"strings"

	"zabudowy-service/internal/domain/settings"
	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Repository is the storage surface the settings service needs.
type Repository interface {
	Upsert(ctx context.Context, id, key, value string) error
	Get(ctx context.Context, key string) (*settings.Setting, error)
	List(ctx context.Context) ([]settings.Setting, error)
}

type Service struct {
	store  Repository
	logger *zap.Logger
}

func NewService(store Repository, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Upsert writes every submitted key/value pair. Keys are trimmed; empty keys
// are rejected before any write.
func (s *Service) Upsert(ctx context.Context, pairs map[string]string) error {
	for key := range pairs {
		if strings.TrimSpace(key) == "" {
			return xerrors.InvalidInput("setting key must not be empty")
		}
	}

	for key, value := range pairs {
		if err := s.store.Upsert(ctx, ulid.Make().String(), strings.TrimSpace(key), value); err != nil {
			return err
		}
	}

	s.logger.Info("settings updated", zap.Int("count", len(pairs)))
	return nil
}

// All returns every setting as a flat key/value map.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(list))
	for _, item := range list {
		out[item.Key] = item.Value
	}
	return out, nil
}

// Get returns one setting value by key.
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	setting, err := s.store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}
