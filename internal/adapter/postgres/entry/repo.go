// Package entry implements the Entry repository using PostgreSQL.
package entry

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

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const entryColumns = `id, group_id, position_in_group, text_content, added_text, solfege,
    user_identifier, ip_address, user_agent, created_at`

const listByGroupSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE group_id = $1
ORDER BY position_in_group ASC`

const countByGroupSQL = `
SELECT count(*) FROM entries WHERE group_id = $1`

const getLastSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE group_id = $1
ORDER BY position_in_group DESC
LIMIT 1`

const createSQL = `
INSERT INTO entries (id, group_id, position_in_group, text_content, added_text, solfege,
    user_identifier, ip_address, user_agent, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + entryColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByGroup returns the entries of a group ordered by position ascending.
func (r *Repo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByGroupSQL, groupID)
	if err != nil {
		return nil, fmt.Errorf("list entries by group %s: %w", groupID, err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("list entries by group %s: %w", groupID, err)
	}

	return entries, nil
}

// ListByGroupIDs batch-loads the entries of several groups in one query,
// keyed by group id, each slice ordered by position ascending.
func (r *Repo) ListByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID][]domain.Entry, error) {
	result := make(map[uuid.UUID][]domain.Entry, len(groupIDs))
	if len(groupIDs) == 0 {
		return result, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(entryColumns).
		From("entries").
		Where(sq.Eq{"group_id": groupIDs}).
		OrderBy("group_id", "position_in_group ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries by groups: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("list entries by groups: %w", err)
	}

	for _, e := range entries {
		result[e.GroupID] = append(result[e.GroupID], e)
	}

	return result, nil
}

// CountByGroup returns the number of entries in a group.
func (r *Repo) CountByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByGroupSQL, groupID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries by group %s: %w", groupID, err)
	}

	return count, nil
}

// GetLast returns the highest-position entry of a group.
// Returns domain.ErrNotFound if the group has no entries.
func (r *Repo) GetLast(ctx context.Context, groupID uuid.UUID) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getLastSQL, groupID))
	if err != nil {
		return nil, postgres.MapError(err, "last entry of group", groupID)
	}

	return e, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an entry and returns the persisted row.
// A second entry at the same position of a group fails with
// domain.ErrAlreadyExists; an unknown group fails with domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := q.QueryRow(ctx, createSQL,
		e.ID,
		e.GroupID,
		e.Position,
		e.TextContent,
		e.AddedText,
		e.Solfege,
		e.UserIdentifier,
		e.IPAddress,
		e.UserAgent,
		now,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "entry", e.ID)
	}

	return created, nil
}

// UpdateText overwrites the accumulated text of an entry.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Update("entries").
		Set("text_content", text).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + entryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update entry query: %w", err)
	}

	e, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return e, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var (
		e        domain.Entry
		position int16
	)
	if err := row.Scan(
		&e.ID, &e.GroupID, &position, &e.TextContent, &e.AddedText, &e.Solfege,
		&e.UserIdentifier, &e.IPAddress, &e.UserAgent, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.Position = int(position)
	return &e, nil
}

func scanEntries(rows pgx.Rows) ([]domain.Entry, error) {
	entries := []domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
