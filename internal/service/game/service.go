// Package game implements the append workflow: picking the open group,
// validating a submission against the group's last entry, assigning the
// next position and completing the group on its final entry.
package game

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gossip-murmur/internal/config"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

type groupRepo interface {
	FindOpen(ctx context.Context) (*domain.Group, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	LockCreation(ctx context.Context) error
	CreateNext(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
}

type entryRepo interface {
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Entry, error)
	CountByGroup(ctx context.Context, groupID uuid.UUID) (int, error)
	GetLast(ctx context.Context, groupID uuid.UUID) (*domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// maxCreateAttempts bounds retries when a concurrent writer takes the
// group number we tried to insert.
const maxCreateAttempts = 3

// Service implements the append workflow.
type Service struct {
	log     *slog.Logger
	groups  groupRepo
	entries entryRepo
	tx      txManager
	cfg     config.GameConfig
}

// NewService creates a new game service.
func NewService(
	logger *slog.Logger,
	groups groupRepo,
	entries entryRepo,
	tx txManager,
	cfg config.GameConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "game"),
		groups:  groups,
		entries: entries,
		tx:      tx,
		cfg:     cfg,
	}
}
