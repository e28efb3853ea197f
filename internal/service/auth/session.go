package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// Authenticate resolves a session cookie value to a live session.
// Returns domain.ErrSessionNotFound for bad tokens and unknown or expired sessions.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.AdminSession, error) {
	sessionID, err := s.signer.Parse(token)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessions.GetActive(ctx, sessionID, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("auth.Authenticate: %w", err)
	}

	return session, nil
}

// Logout destroys the session behind a cookie value. Unknown or malformed
// tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	sessionID, err := s.signer.Parse(token)
	if err != nil {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged out", slog.String("session_id", sessionID.String()))
	return nil
}

// CleanupExpiredSessions removes all expired sessions from the database.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	count, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int64("count", count))
	}

	return count, nil
}
