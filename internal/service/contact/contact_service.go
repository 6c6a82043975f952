package contact

import (
	"context"
	"strings"

	"zabudowy-service/internal/domain/contact"
	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Repository is the storage surface the contact service needs.
type Repository interface {
	Create(ctx context.Context, m *contact.Message) error
	List(ctx context.Context) ([]contact.Message, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
}

// Notifier pushes new-inquiry events to connected admin dashboards.
type Notifier interface {
	NotifyNewMessage(m contact.Message)
}

type Service struct {
	messages Repository
	notifier Notifier
	logger   *zap.Logger
}

func NewService(messages Repository, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{
		messages: messages,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit appends a visitor inquiry and returns its id. There is no
// deduplication and no rate limiting; every submission is accepted.
func (s *Service) Submit(ctx context.Context, req *contact.SubmitRequest) (*contact.Message, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, xerrors.InvalidInput("name, email and message are required")
	}

	m := &contact.Message{
		ID:      ulid.Make().String(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}

	if err := s.messages.Create(ctx, m); err != nil {
		s.logger.Error("failed to store contact message", zap.Error(err))
		return nil, xerrors.ErrInternal
	}

	s.logger.Info("contact message received", zap.String("message_id", m.ID))

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(*m)
	}
	return m, nil
}

// List returns the full inbox, newest first.
func (s *Service) List(ctx context.Context) ([]contact.Message, error) {
	return s.messages.List(ctx)
}

// UnreadCount feeds the dashboard badge.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	return s.messages.UnreadCount(ctx)
}

// MarkRead flips a message's read flag.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.messages.MarkRead(ctx, id)
}
