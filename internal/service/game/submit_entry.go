package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// SubmitEntry appends a contribution to a group. Checks run in a fixed order
// and the first failing one is returned: missing fields, unknown group,
// completed group, full group, non-extending text.
//
// The group row is locked for the whole check-insert-complete sequence, so
// concurrent submissions to one group are applied one at a time.
func (s *Service) SubmitEntry(ctx context.Context, input SubmitEntryInput) (*SubmitEntryResult, error) {
	groupID, err := input.Validate()
	if err != nil {
		return nil, err
	}

	var result SubmitEntryResult

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		g, err := s.groups.GetForUpdate(txCtx, groupID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrGroupNotFound
			}
			return fmt.Errorf("lock group: %w", err)
		}

		if g.IsCompleted {
			return domain.ErrGroupAlreadyCompleted
		}

		count, err := s.entries.CountByGroup(txCtx, groupID)
		if err != nil {
			return fmt.Errorf("count entries: %w", err)
		}
		if !g.IsOpen(count) {
			return domain.ErrGroupFull
		}

		if count > 0 {
			last, err := s.entries.GetLast(txCtx, groupID)
			if err != nil {
				return fmt.Errorf("get last entry: %w", err)
			}
			if !last.Extends(input.TextContent, s.cfg.RequireGrowth) {
				return domain.ErrInvalidAppend
			}
		}

		entry, err := s.entries.Create(txCtx, &domain.Entry{
			ID:             uuid.New(),
			GroupID:        groupID,
			Position:       count + 1,
			TextContent:    input.TextContent,
			AddedText:      input.AddedText,
			Solfege:        input.Solfege,
			UserIdentifier: input.UserIdentifier,
			IPAddress:      input.IPAddress,
			UserAgent:      input.UserAgent,
		})
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		result.Entry = entry

		if entry.Position == domain.GroupSize {
			if err := s.groups.MarkCompleted(txCtx, groupID); err != nil {
				return fmt.Errorf("complete group: %w", err)
			}
			result.Completed = true
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry submitted",
		slog.String("group_id", groupID.String()),
		slog.Int("position", result.Entry.Position),
		slog.Bool("completed", result.Completed),
	)

	return &result, nil
}
