// Package auth implements admin login sessions and admin credential
// bookkeeping.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gossip-murmur/internal/auth"
	"github.com/heartmarshall/gossip-murmur/internal/config"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// adminRepo defines the admin repository interface needed by auth service.
type adminRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, password string) error
}

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, s *domain.AdminSession) error
	GetActive(ctx context.Context, id uuid.UUID, now time.Time) (*domain.AdminSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteOthers(ctx context.Context, adminID, keep uuid.UUID) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// sessionSigner defines the cookie token interface needed by auth service.
type sessionSigner interface {
	Sign(sessionID uuid.UUID, expiresAt time.Time) (string, error)
	Parse(token string) (uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements admin auth operations.
type Service struct {
	log         *slog.Logger
	admins      adminRepo
	sessions    sessionRepo
	signer      sessionSigner
	tx          txManager
	credentials auth.Credentials
	sessionCfg  config.SessionConfig
	adminCfg    config.AdminConfig
	now         func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	admins adminRepo,
	sessions sessionRepo,
	signer sessionSigner,
	tx txManager,
	credentials auth.Credentials,
	sessionCfg config.SessionConfig,
	adminCfg config.AdminConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		admins:      admins,
		sessions:    sessions,
		signer:      signer,
		tx:          tx,
		credentials: credentials,
		sessionCfg:  sessionCfg,
		adminCfg:    adminCfg,
		now:         time.Now,
	}
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Username  string
}
