// Package moderation implements admin edits of entries and groups.
// Every mutation is recorded in the moderation log within the same transaction.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"github.com/heartmarshall/gossip-murmur/pkg/ctxutil"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 200
)

type groupRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type entryRepo interface {
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Entry, error)
}

type auditLog interface {
	Log(ctx context.Context, record domain.ModerationRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.ModerationRecord, error)
	ListByEntity(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.ModerationRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements moderation operations. Every operation requires an
// authenticated admin in the context.
type Service struct {
	log     *slog.Logger
	groups  groupRepo
	entries entryRepo
	audit   auditLog
	tx      txManager
}

// NewService creates a new moderation service.
func NewService(logger *slog.Logger, groups groupRepo, entries entryRepo, audit auditLog, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "moderation"),
		groups:  groups,
		entries: entries,
		audit:   audit,
		tx:      tx,
	}
}

// EditEntryInput holds parameters for EditEntryText.
type EditEntryInput struct {
	EntryID     uuid.UUID
	TextContent string
}

// Validate validates the edit input.
func (i EditEntryInput) Validate() error {
	if i.TextContent == "" {
		return domain.NewValidationError("textContent", "Text content required")
	}
	return nil
}

// EditEntryText overwrites an entry's accumulated text. The new text is not
// checked against neighbouring entries.
func (s *Service) EditEntryText(ctx context.Context, input EditEntryInput) (*domain.Entry, error) {
	admin, ok := ctxutil.AdminFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var entry *domain.Entry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.entries.UpdateText(ctx, input.EntryID, input.TextContent)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrEntryNotFound
			}
			return fmt.Errorf("update entry: %w", err)
		}

		return s.record(ctx, admin, domain.ActionEditEntry, entry.ID, map[string]any{
			"group_id":          entry.GroupID.String(),
			"position_in_group": entry.Position,
			"text_content":      entry.TextContent,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry edited",
		slog.String("admin", admin.Username),
		slog.String("entry_id", entry.ID.String()),
		slog.String("group_id", entry.GroupID.String()),
	)

	return entry, nil
}

// DeleteGroup removes a group and all of its entries. The group row is locked
// first so that an in-flight submission to it finishes or fails cleanly.
func (s *Service) DeleteGroup(ctx context.Context, groupID uuid.UUID) error {
	admin, ok := ctxutil.AdminFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		group, err := s.groups.GetForUpdate(ctx, groupID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrGroupNotFound
			}
			return fmt.Errorf("lock group: %w", err)
		}

		if err := s.groups.Delete(ctx, groupID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrGroupNotFound
			}
			return fmt.Errorf("delete group: %w", err)
		}

		return s.record(ctx, admin, domain.ActionDeleteGroup, groupID, map[string]any{
			"group_number": group.GroupNumber,
			"is_completed": group.IsCompleted,
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "group deleted",
		slog.String("admin", admin.Username),
		slog.String("group_id", groupID.String()),
	)

	return nil
}

// RecentActions returns the newest moderation log records. A limit outside
// 1..200 falls back to the default or is capped.
func (s *Service) RecentActions(ctx context.Context, limit int) ([]domain.ModerationRecord, error) {
	if _, ok := ctxutil.AdminFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.audit.ListRecent(ctx, clampLogLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list moderation log: %w", err)
	}
	return records, nil
}

// EntityHistory returns the moderation log records of a single entry or group,
// newest first.
func (s *Service) EntityHistory(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.ModerationRecord, error) {
	if _, ok := ctxutil.AdminFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.audit.ListByEntity(ctx, entityID, clampLogLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list moderation log for %s: %w", entityID, err)
	}
	return records, nil
}

func clampLogLimit(limit int) int {
	switch {
	case limit < 1:
		return defaultLogLimit
	case limit > maxLogLimit:
		return maxLogLimit
	}
	return limit
}

func (s *Service) record(ctx context.Context, admin ctxutil.Admin, action domain.ModerationAction, entityID uuid.UUID, changes map[string]any) error {
	adminID := admin.AdminID
	err := s.audit.Log(ctx, domain.ModerationRecord{
		ID:        uuid.New(),
		AdminID:   &adminID,
		Action:    action,
		EntityID:  entityID,
		Changes:   changes,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("record %s: %w", action, err)
	}
	return nil
}
