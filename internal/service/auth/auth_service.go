package auth

import (
	"context"
	"time"

	"zabudowy-service/internal/domain/user"
	xerrors "zabudowy-service/internal/pkg/errors"
	"zabudowy-service/internal/pkg/session"
	"zabudowy-service/internal/pkg/token"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the storage surface the auth service needs.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	EnsureAdmin(ctx context.Context, u *user.User) (*user.User, error)
}

// SessionStore is the slice of the session manager the auth flow uses.
type SessionStore interface {
	Create(ctx context.Context, data *session.Data) error
	Get(ctx context.Context, userID, jti string) (*session.Data, error)
	Touch(ctx context.Context, userID, jti string) error
	Invalidate(ctx context.Context, userID, jti string) error
}

type AuthService struct {
	users    UserRepository
	tokens   *token.Manager
	sessions SessionStore
	logger   *zap.Logger
}

func NewAuthService(users UserRepository, tokens *token.Manager, sessions SessionStore, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies credentials and opens a redis-backed session. Credential
// failures are reported uniformly so the response does not reveal whether the
// account exists.
func (s *AuthService) Login(ctx context.Context, email, password, ip, userAgent string) (string, *user.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return "", nil, xerrors.ErrUnauthorized
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		s.logger.Warn("failed login attempt", zap.String("email", email), zap.String("ip", ip))
		return "", nil, xerrors.ErrUnauthorized
	}

	signed, jti, err := s.tokens.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		return "", nil, xerrors.Wrap(err, "failed to issue session token")
	}

	now := time.Now()
	err = s.sessions.Create(ctx, &session.Data{
		JTI:            jti,
		UserID:         u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		IPAddress:      ip,
		UserAgent:      userAgent,
		LoginAt:        now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(s.tokens.TTL()),
	})
	if err != nil {
		return "", nil, xerrors.Wrap(err, "failed to store session")
	}

	s.logger.Info("admin logged in", zap.String("user_id", u.ID), zap.String("ip", ip))
	return signed, u, nil
}

// ValidateSession checks the token signature and that the session is still
// alive in redis. A valid token whose session was invalidated is rejected.
func (s *AuthService) ValidateSession(ctx context.Context, tokenString string) (*token.Claims, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, xerrors.ErrUnauthorized
	}

	if _, err := s.sessions.Get(ctx, claims.UserID, claims.ID); err != nil {
		return nil, xerrors.ErrSessionExpired
	}

	go s.sessions.Touch(context.Background(), claims.UserID, claims.ID)

	return claims, nil
}

// Logout invalidates a single session.
func (s *AuthService) Logout(ctx context.Context, userID, jti string) error {
	if err := s.sessions.Invalidate(ctx, userID, jti); err != nil {
		return xerrors.Wrap(err, "failed to invalidate session")
	}
	s.logger.Info("admin logged out", zap.String("user_id", userID))
	return nil
}

// Me returns the authenticated admin's account.
func (s *AuthService) Me(ctx context.Context, userID string) (*user.User, error) {
	return s.users.FindByID(ctx, userID)
}

// EnsureAdminExists seeds the admin account at startup when it is missing.
func (s *AuthService) EnsureAdminExists(ctx context.Context, email, password, name string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return xerrors.Wrap(err, "failed to hash admin password")
	}

	u, err := s.users.EnsureAdmin(ctx, &user.User{
		ID:       ulid.Make().String(),
		Email:    email,
		Password: string(hashed),
		Name:     name,
		Role:     user.RoleAdmin,
	})
	if err != nil {
		return err
	}

	s.logger.Info("admin account ready", zap.String("email", u.Email))
	return nil
}
