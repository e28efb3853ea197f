package game

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"sync"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	FindOpenFunc      func(ctx context.Context) (*domain.Group, error)
	GetForUpdateFunc  func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	LockCreationFunc  func(ctx context.Context) error
	CreateNextFunc    func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	MarkCompletedFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		FindOpen []struct {
			Ctx context.Context
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		LockCreation []struct {
			Ctx context.Context
		}
		CreateNext []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		MarkCompleted []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockFindOpen      sync.RWMutex
	lockGetForUpdate  sync.RWMutex
	lockLockCreation  sync.RWMutex
	lockCreateNext    sync.RWMutex
	lockMarkCompleted sync.RWMutex
}

func (mock *groupRepoMock) FindOpen(ctx context.Context) (*domain.Group, error) {
	if mock.FindOpenFunc == nil {
		panic("groupRepoMock.FindOpenFunc: method is nil but groupRepo.FindOpen was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockFindOpen.Lock()
	mock.calls.FindOpen = append(mock.calls.FindOpen, callInfo)
	mock.lockFindOpen.Unlock()
	return mock.FindOpenFunc(ctx)
}

func (mock *groupRepoMock) FindOpenCalls() []struct {
	Ctx context.Context
} {
	mock.lockFindOpen.RLock()
	calls := mock.calls.FindOpen
	mock.lockFindOpen.RUnlock()
	return calls
}

func (mock *groupRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	if mock.GetForUpdateFunc == nil {
		panic("groupRepoMock.GetForUpdateFunc: method is nil but groupRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *groupRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *groupRepoMock) LockCreation(ctx context.Context) error {
	if mock.LockCreationFunc == nil {
		panic("groupRepoMock.LockCreationFunc: method is nil but groupRepo.LockCreation was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLockCreation.Lock()
	mock.calls.LockCreation = append(mock.calls.LockCreation, callInfo)
	mock.lockLockCreation.Unlock()
	return mock.LockCreationFunc(ctx)
}

func (mock *groupRepoMock) LockCreationCalls() []struct {
	Ctx context.Context
} {
	mock.lockLockCreation.RLock()
	calls := mock.calls.LockCreation
	mock.lockLockCreation.RUnlock()
	return calls
}

func (mock *groupRepoMock) CreateNext(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	if mock.CreateNextFunc == nil {
		panic("groupRepoMock.CreateNextFunc: method is nil but groupRepo.CreateNext was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockCreateNext.Lock()
	mock.calls.CreateNext = append(mock.calls.CreateNext, callInfo)
	mock.lockCreateNext.Unlock()
	return mock.CreateNextFunc(ctx, id)
}

func (mock *groupRepoMock) CreateNextCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockCreateNext.RLock()
	calls := mock.calls.CreateNext
	mock.lockCreateNext.RUnlock()
	return calls
}

func (mock *groupRepoMock) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	if mock.MarkCompletedFunc == nil {
		panic("groupRepoMock.MarkCompletedFunc: method is nil but groupRepo.MarkCompleted was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, callInfo)
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, id)
}

func (mock *groupRepoMock) MarkCompletedCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockMarkCompleted.RLock()
	calls := mock.calls.MarkCompleted
	mock.lockMarkCompleted.RUnlock()
	return calls
}
