// Package session implements the admin session repository using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/gossip-murmur/internal/adapter/postgres"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// Repo provides admin session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO admin_sessions (id, admin_id, expires_at, created_at)
VALUES ($1, $2, $3, $4)`

const getActiveSQL = `
SELECT s.id, s.admin_id, a.username, s.expires_at, s.created_at
FROM admin_sessions s
JOIN admins a ON a.id = s.admin_id
WHERE s.id = $1 AND s.expires_at > $2`

const deleteSQL = `
DELETE FROM admin_sessions
WHERE id = $1`

const deleteByAdminSQL = `
DELETE FROM admin_sessions
WHERE admin_id = $1 AND id <> $2`

const deleteExpiredSQL = `
DELETE FROM admin_sessions
WHERE expires_at <= $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetActive returns a session that has not expired at now, with the owning
// admin's username. Returns domain.ErrNotFound for unknown or expired sessions.
func (r *Repo) GetActive(ctx context.Context, id uuid.UUID, now time.Time) (*domain.AdminSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.AdminSession
	err := q.QueryRow(ctx, getActiveSQL, id, now.UTC()).
		Scan(&s.ID, &s.AdminID, &s.Username, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}

	return &s, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create persists a session. An unknown admin fails with domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, s *domain.AdminSession) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL,
		s.ID,
		s.AdminID,
		s.ExpiresAt.UTC().Truncate(time.Microsecond),
		s.CreatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "session", s.ID)
	}

	return nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSQL, id); err != nil {
		return postgres.MapError(err, "session", id)
	}

	return nil
}

// DeleteOthers removes every session of the admin except keep.
func (r *Repo) DeleteOthers(ctx context.Context, adminID, keep uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteByAdminSQL, adminID, keep)
	if err != nil {
		return 0, fmt.Errorf("delete sessions of admin %s: %w", adminID, err)
	}

	return ct.RowsAffected(), nil
}

// DeleteExpired removes all sessions that expired at or before now and
// returns how many were removed.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteExpiredSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return ct.RowsAffected(), nil
}
