package gallery

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"sync"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListByGroupIDsFunc func(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID][]domain.Entry, error)

	calls struct {
		ListByGroupIDs []struct {
			Ctx      context.Context
			GroupIDs []uuid.UUID
		}
	}
	lockListByGroupIDs sync.RWMutex
}

func (mock *entryRepoMock) ListByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID][]domain.Entry, error) {
	if mock.ListByGroupIDsFunc == nil {
		panic("entryRepoMock.ListByGroupIDsFunc: method is nil but entryRepo.ListByGroupIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		GroupIDs []uuid.UUID
	}{Ctx: ctx, GroupIDs: groupIDs}
	mock.lockListByGroupIDs.Lock()
	mock.calls.ListByGroupIDs = append(mock.calls.ListByGroupIDs, callInfo)
	mock.lockListByGroupIDs.Unlock()
	return mock.ListByGroupIDsFunc(ctx, groupIDs)
}

func (mock *entryRepoMock) ListByGroupIDsCalls() []struct {
	Ctx      context.Context
	GroupIDs []uuid.UUID
} {
	mock.lockListByGroupIDs.RLock()
	calls := mock.calls.ListByGroupIDs
	mock.lockListByGroupIDs.RUnlock()
	return calls
}
