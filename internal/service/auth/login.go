package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// Login checks admin credentials and opens a server-side session.
// Unknown usernames and wrong passwords both return domain.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	admin, err := s.admins.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login get admin: %w", err)
	}

	ok, err := s.credentials.Verify(admin.Password, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login verify: %w", err)
	}
	if !ok {
		s.log.WarnContext(ctx, "admin login rejected", slog.String("username", input.Username))
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	session := &domain.AdminSession{
		ID:        uuid.New(),
		AdminID:   admin.ID,
		Username:  admin.Username,
		ExpiresAt: now.Add(s.sessionCfg.TTL),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("auth.Login store session: %w", err)
	}

	token, err := s.signer.Sign(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("auth.Login sign session: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in",
		slog.String("admin_id", admin.ID.String()),
		slog.String("username", admin.Username),
	)

	return &LoginResult{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Username:  admin.Username,
	}, nil
}
