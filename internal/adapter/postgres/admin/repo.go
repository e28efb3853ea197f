// Package admin implements the Admin account repository using PostgreSQL.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/gossip-murmur/internal/adapter/postgres"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// Repo provides admin persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new admin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const adminColumns = `id, username, password, created_at, updated_at`

const getByIDSQL = `
SELECT ` + adminColumns + `
FROM admins
WHERE id = $1`

const getByUsernameSQL = `
SELECT ` + adminColumns + `
FROM admins
WHERE username = $1`

const createSQL = `
INSERT INTO admins (id, username, password, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING ` + adminColumns

const updatePasswordSQL = `
UPDATE admins
SET password = $2, updated_at = $3
WHERE id = $1`

// GetByID returns an admin by primary key.
// Returns domain.ErrNotFound if the admin does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAdmin(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "admin", id)
	}

	return a, nil
}

// GetByUsername returns an admin by username.
// Returns domain.ErrNotFound if no admin has that username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAdmin(q.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "admin "+username, uuid.Nil)
	}

	return a, nil
}

// Create inserts an admin. A taken username fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := scanAdmin(q.QueryRow(ctx, createSQL, a.ID, a.Username, a.Password, now))
	if err != nil {
		return nil, postgres.MapError(err, "admin", a.ID)
	}

	return created, nil
}

// UpdatePassword stores a new credential value for the admin.
// Returns domain.ErrNotFound if the admin does not exist.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	ct, err := q.Exec(ctx, updatePasswordSQL, id, password, now)
	if err != nil {
		return postgres.MapError(err, "admin", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("admin %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.Password, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
