package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"github.com/heartmarshall/gossip-murmur/pkg/ctxutil"
)

// ChangePassword replaces the authenticated admin's password after checking
// the current one. Other sessions of the admin are closed.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	current, ok := ctxutil.AdminFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(s.adminCfg.MinPasswordLength); err != nil {
		return err
	}

	admin, err := s.admins.GetByID(ctx, current.AdminID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ChangePassword get admin: %w", err)
	}

	ok, err = s.credentials.Verify(admin.Password, input.CurrentPassword)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword verify: %w", err)
	}
	if !ok {
		return domain.ErrWrongPassword
	}

	stored, err := s.credentials.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash: %w", err)
	}

	var closed int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.admins.UpdatePassword(txCtx, admin.ID, stored); err != nil {
			return fmt.Errorf("auth.ChangePassword update: %w", err)
		}

		n, err := s.sessions.DeleteOthers(txCtx, admin.ID, current.SessionID)
		if err != nil {
			return fmt.Errorf("auth.ChangePassword close sessions: %w", err)
		}
		closed = n
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "admin password changed",
		slog.String("admin_id", admin.ID.String()),
		slog.Int64("sessions_closed", closed),
	)

	return nil
}

// EnsureAdmin creates the admin account if no admin has the username yet.
// It reports whether an account was created.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, domain.NewValidationError("credentials", "Username and password required")
	}

	_, err := s.admins.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("auth.EnsureAdmin get admin: %w", err)
	}

	stored, err := s.credentials.Hash(password)
	if err != nil {
		return false, fmt.Errorf("auth.EnsureAdmin hash: %w", err)
	}

	_, err = s.admins.Create(ctx, &domain.Admin{
		ID:       uuid.New(),
		Username: username,
		Password: stored,
	})
	if err != nil {
		// Lost a race with another instance bootstrapping the same account.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("auth.EnsureAdmin create: %w", err)
	}

	s.log.InfoContext(ctx, "admin account created", slog.String("username", username))
	return true, nil
}

// ResetPassword sets the password of an existing admin without checking the
// old one. It is meant for operator tooling, not for HTTP handlers.
func (s *Service) ResetPassword(ctx context.Context, username, password string) error {
	if len(password) < s.adminCfg.MinPasswordLength {
		return domain.NewValidationError("password",
			fmt.Sprintf("New password must be at least %d characters", s.adminCfg.MinPasswordLength))
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword get admin: %w", err)
	}

	stored, err := s.credentials.Hash(password)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword hash: %w", err)
	}

	if err := s.admins.UpdatePassword(ctx, admin.ID, stored); err != nil {
		return fmt.Errorf("auth.ResetPassword update: %w", err)
	}

	s.log.InfoContext(ctx, "admin password reset", slog.String("username", username))
	return nil
}
