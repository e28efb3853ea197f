// Package gallery implements the read-only paginated listing of groups with
// their entries, shared by the public gallery and the admin dashboard.
package gallery

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/gossip-murmur/internal/config"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// maxPage keeps (page-1)*limit well inside the OFFSET range.
const maxPage = math.MaxInt32

type groupRepo interface {
	ListPage(ctx context.Context, filter domain.GroupFilter) ([]domain.Group, int, error)
}

type entryRepo interface {
	ListByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID][]domain.Entry, error)
}

// Service lists groups.
type Service struct {
	log     *slog.Logger
	groups  groupRepo
	entries entryRepo
	cfg     config.GameConfig
}

// NewService creates a new gallery service.
func NewService(logger *slog.Logger, groups groupRepo, entries entryRepo, cfg config.GameConfig) *Service {
	return &Service{
		log:     logger.With("service", "gallery"),
		groups:  groups,
		entries: entries,
		cfg:     cfg,
	}
}

// ListInput holds raw listing parameters. Zero values select the defaults.
type ListInput struct {
	Page          int
	Limit         int
	CompletedOnly bool
}

// ListPublic lists groups for the public gallery.
func (s *Service) ListPublic(ctx context.Context, input ListInput) (*domain.GroupPage, error) {
	return s.list(ctx, s.filter(input, s.cfg.PublicPageSize))
}

// ListAdmin lists groups for the admin dashboard.
func (s *Service) ListAdmin(ctx context.Context, input ListInput) (*domain.GroupPage, error) {
	return s.list(ctx, s.filter(input, s.cfg.AdminPageSize))
}

func (s *Service) filter(input ListInput, defaultLimit int) domain.GroupFilter {
	f := domain.GroupFilter{
		Page:          input.Page,
		Limit:         input.Limit,
		CompletedOnly: input.CompletedOnly,
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > maxPage {
		f.Page = maxPage
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.Limit > s.cfg.MaxPageSize {
		f.Limit = s.cfg.MaxPageSize
	}
	return f
}

// list loads one page of groups newest first and attaches each group's
// entries, ordered by position, with a single batch query.
func (s *Service) list(ctx context.Context, f domain.GroupFilter) (*domain.GroupPage, error) {
	groups, total, err := s.groups.ListPage(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	ids := make([]uuid.UUID, len(groups))
	for i := range groups {
		ids[i] = groups[i].ID
	}

	byGroup, err := s.entries.ListByGroupIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	for i := range groups {
		entries := byGroup[groups[i].ID]
		if entries == nil {
			entries = []domain.Entry{}
		}
		groups[i].Entries = entries
	}

	return &domain.GroupPage{
		Groups:     groups,
		Pagination: domain.NewPagination(f.Page, f.Limit, total),
	}, nil
}
