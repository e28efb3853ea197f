package game

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"sync"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListByGroupFunc  func(ctx context.Context, groupID uuid.UUID) ([]domain.Entry, error)
	CountByGroupFunc func(ctx context.Context, groupID uuid.UUID) (int, error)
	GetLastFunc      func(ctx context.Context, groupID uuid.UUID) (*domain.Entry, error)
	CreateFunc       func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)

	calls struct {
		ListByGroup []struct {
			Ctx     context.Context
			GroupID uuid.UUID
		}
		CountByGroup []struct {
			Ctx     context.Context
			GroupID uuid.UUID
		}
		GetLast []struct {
			Ctx     context.Context
			GroupID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			E   *domain.Entry
		}
	}
	lockListByGroup  sync.RWMutex
	lockCountByGroup sync.RWMutex
	lockGetLast      sync.RWMutex
	lockCreate       sync.RWMutex
}

func (mock *entryRepoMock) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Entry, error) {
	if mock.ListByGroupFunc == nil {
		panic("entryRepoMock.ListByGroupFunc: method is nil but entryRepo.ListByGroup was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID uuid.UUID
	}{Ctx: ctx, GroupID: groupID}
	mock.lockListByGroup.Lock()
	mock.calls.ListByGroup = append(mock.calls.ListByGroup, callInfo)
	mock.lockListByGroup.Unlock()
	return mock.ListByGroupFunc(ctx, groupID)
}

func (mock *entryRepoMock) ListByGroupCalls() []struct {
	Ctx     context.Context
	GroupID uuid.UUID
} {
	mock.lockListByGroup.RLock()
	calls := mock.calls.ListByGroup
	mock.lockListByGroup.RUnlock()
	return calls
}

func (mock *entryRepoMock) CountByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	if mock.CountByGroupFunc == nil {
		panic("entryRepoMock.CountByGroupFunc: method is nil but entryRepo.CountByGroup was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID uuid.UUID
	}{Ctx: ctx, GroupID: groupID}
	mock.lockCountByGroup.Lock()
	mock.calls.CountByGroup = append(mock.calls.CountByGroup, callInfo)
	mock.lockCountByGroup.Unlock()
	return mock.CountByGroupFunc(ctx, groupID)
}

func (mock *entryRepoMock) CountByGroupCalls() []struct {
	Ctx     context.Context
	GroupID uuid.UUID
} {
	mock.lockCountByGroup.RLock()
	calls := mock.calls.CountByGroup
	mock.lockCountByGroup.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetLast(ctx context.Context, groupID uuid.UUID) (*domain.Entry, error) {
	if mock.GetLastFunc == nil {
		panic("entryRepoMock.GetLastFunc: method is nil but entryRepo.GetLast was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID uuid.UUID
	}{Ctx: ctx, GroupID: groupID}
	mock.lockGetLast.Lock()
	mock.calls.GetLast = append(mock.calls.GetLast, callInfo)
	mock.lockGetLast.Unlock()
	return mock.GetLastFunc(ctx, groupID)
}

func (mock *entryRepoMock) GetLastCalls() []struct {
	Ctx     context.Context
	GroupID uuid.UUID
} {
	mock.lockGetLast.RLock()
	calls := mock.calls.GetLast
	mock.lockGetLast.RUnlock()
	return calls
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Entry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Entry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
