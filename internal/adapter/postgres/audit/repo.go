// Package audit implements the moderation log repository using PostgreSQL.
// The log is append-only.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/gossip-murmur/internal/adapter/postgres"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// Repo provides moderation log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO moderation_log (id, admin_id, action, entity_id, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const selectColumns = `id, admin_id, action, entity_id, changes, created_at`

const listRecentSQL = `
SELECT ` + selectColumns + `
FROM moderation_log
ORDER BY created_at DESC, id
LIMIT $1`

const listByEntitySQL = `
SELECT ` + selectColumns + `
FROM moderation_log
WHERE entity_id = $1
ORDER BY created_at DESC, id
LIMIT $2`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends a record. It joins the transaction carried by ctx, if any.
func (r *Repo) Log(ctx context.Context, record domain.ModerationRecord) error {
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("moderation_record marshal changes: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, createSQL,
		record.ID,
		uuidPtrToPgUUID(record.AdminID),
		string(record.Action),
		record.EntityID,
		changesJSON,
		record.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "moderation_record", record.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListRecent returns the newest records first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.ModerationRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list moderation_log: %w", err)
	}
	return collect(rows)
}

// ListByEntity returns the history of one entry or group, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.ModerationRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByEntitySQL, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list moderation_log by entity: %w", err)
	}
	return collect(rows)
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func collect(rows pgx.Rows) ([]domain.ModerationRecord, error) {
	defer rows.Close()

	records := []domain.ModerationRecord{}
	for rows.Next() {
		var (
			rec     domain.ModerationRecord
			adminID pgtype.UUID
			action  string
			changes []byte
		)
		if err := rows.Scan(&rec.ID, &adminID, &action, &rec.EntityID, &changes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan moderation_record: %w", err)
		}
		rec.Action = domain.ModerationAction(action)

		if adminID.Valid {
			id := uuid.UUID(adminID.Bytes)
			rec.AdminID = &id
		}

		if len(changes) > 0 {
			rec.Changes = make(map[string]any)
			if err := json.Unmarshal(changes, &rec.Changes); err != nil {
				return nil, fmt.Errorf("moderation_record %s unmarshal changes: %w", rec.ID, err)
			}
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moderation_log: %w", err)
	}
	return records, nil
}

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
