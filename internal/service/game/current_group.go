package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// CurrentGroup returns the oldest open group with its entries, creating
// group max(group_number)+1 when none is open. At most one group is
// created per call.
func (s *Service) CurrentGroup(ctx context.Context) (*domain.Group, error) {
	g, err := s.groups.FindOpen(ctx)
	switch {
	case err == nil:
		return s.withEntries(ctx, g)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find open group: %w", err)
	}

	var created bool
	for attempt := 1; ; attempt++ {
		g, created, err = s.openOrCreate(ctx)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAlreadyExists) || attempt == maxCreateAttempts {
			return nil, fmt.Errorf("create group: %w", err)
		}
		s.log.WarnContext(ctx, "group number taken, retrying",
			slog.Int("attempt", attempt))
	}

	if !created {
		return s.withEntries(ctx, g)
	}

	s.log.InfoContext(ctx, "group created",
		slog.String("group_id", g.ID.String()),
		slog.Int("group_number", g.GroupNumber),
	)

	g.Entries = []domain.Entry{}
	return g, nil
}

// openOrCreate re-checks for an open group under the creation lock and
// creates one only if there still is none.
func (s *Service) openOrCreate(ctx context.Context) (*domain.Group, bool, error) {
	var (
		g       *domain.Group
		created bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.groups.LockCreation(txCtx); err != nil {
			return fmt.Errorf("lock group creation: %w", err)
		}

		open, err := s.groups.FindOpen(txCtx)
		if err == nil {
			g = open
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("find open group: %w", err)
		}

		g, err = s.groups.CreateNext(txCtx, uuid.New())
		if err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return g, created, nil
}

func (s *Service) withEntries(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	entries, err := s.entries.ListByGroup(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	g.Entries = entries
	return g, nil
}
