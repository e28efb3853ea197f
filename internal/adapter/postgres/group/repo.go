// Package group implements the Group repository using PostgreSQL.
// Point reads and writes use raw SQL; the paginated listing is built with squirrel.
package group

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/gossip-murmur/internal/adapter/postgres"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// creationLockKey is the advisory lock key that serializes group creation.
const creationLockKey int64 = 0x6d75726d7572 // "murmur"

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new group repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const groupColumns = `id, group_number, is_completed, created_at, updated_at`

const getByIDSQL = `
SELECT ` + groupColumns + `
FROM groups
WHERE id = $1`

const getForUpdateSQL = `
SELECT ` + groupColumns + `
FROM groups
WHERE id = $1
FOR UPDATE`

const findOpenSQL = `
SELECT g.id, g.group_number, g.is_completed, g.created_at, g.updated_at
FROM groups g
WHERE NOT g.is_completed
  AND (SELECT count(*) FROM entries e WHERE e.group_id = g.id) < $1
ORDER BY g.created_at ASC, g.group_number ASC
LIMIT 1`

const createNextSQL = `
INSERT INTO groups (id, group_number, is_completed, created_at, updated_at)
SELECT $1, COALESCE(MAX(group_number), 0) + 1, false, $2, $2
FROM groups
RETURNING ` + groupColumns

const markCompletedSQL = `
UPDATE groups
SET is_completed = true, updated_at = $2
WHERE id = $1`

const deleteSQL = `
DELETE FROM groups
WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a group without its entries.
// Returns domain.ErrNotFound if the group does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGroup(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "group", id)
	}

	return g, nil
}

// GetForUpdate returns a group and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGroup(q.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "group", id)
	}

	return g, nil
}

// FindOpen returns the oldest group that is not completed and holds fewer
// than domain.GroupSize entries. Returns domain.ErrNotFound if there is none.
func (r *Repo) FindOpen(ctx context.Context) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGroup(q.QueryRow(ctx, findOpenSQL, domain.GroupSize))
	if err != nil {
		return nil, postgres.MapError(err, "open group", uuid.Nil)
	}

	return g, nil
}

// ListPage returns one page of groups ordered by group_number descending,
// together with the total number of groups matching the filter.
// Entries are not loaded.
func (r *Repo) ListPage(ctx context.Context, filter domain.GroupFilter) ([]domain.Group, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := applyFilter(postgres.Builder().Select("count(*)").From("groups"), filter).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count groups query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count groups: %w", err)
	}

	listSQL, listArgs, err := applyFilter(postgres.Builder().Select(groupColumns).From("groups"), filter).
		OrderBy("group_number DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list groups query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups, err := scanGroups(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list groups: %w", err)
	}

	return groups, total, nil
}

func applyFilter(b sq.SelectBuilder, filter domain.GroupFilter) sq.SelectBuilder {
	if filter.CompletedOnly {
		b = b.Where(sq.Eq{"is_completed": true})
	}
	return b
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// LockCreation takes the transaction-scoped advisory lock that serializes
// group creation. It must run inside TxManager.RunInTx.
func (r *Repo) LockCreation(ctx context.Context) error {
	return postgres.AdvisoryXactLock(ctx, creationLockKey)
}

// CreateNext inserts a new open group numbered max(group_number)+1.
// A concurrent writer that skipped the creation lock surfaces as
// domain.ErrAlreadyExists on the group_number constraint.
func (r *Repo) CreateNext(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	g, err := scanGroup(q.QueryRow(ctx, createNextSQL, id, now))
	if err != nil {
		return nil, postgres.MapError(err, "group", id)
	}

	return g, nil
}

// MarkCompleted flips the group to completed. Completion is permanent.
// Returns domain.ErrNotFound if the group does not exist.
func (r *Repo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	ct, err := q.Exec(ctx, markCompletedSQL, id, now)
	if err != nil {
		return postgres.MapError(err, "group", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a group; its entries go with it via ON DELETE CASCADE.
// Returns domain.ErrNotFound if the group does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "group", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanGroup(row pgx.Row) (*domain.Group, error) {
	var g domain.Group
	if err := row.Scan(&g.ID, &g.GroupNumber, &g.IsCompleted, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func scanGroups(rows pgx.Rows) ([]domain.Group, error) {
	groups := []domain.Group{}
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.GroupNumber, &g.IsCompleted, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
