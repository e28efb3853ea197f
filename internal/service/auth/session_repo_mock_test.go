package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"sync"
	"time"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc        func(ctx context.Context, s *domain.AdminSession) error
	GetActiveFunc     func(ctx context.Context, id uuid.UUID, now time.Time) (*domain.AdminSession, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	DeleteOthersFunc  func(ctx context.Context, adminID uuid.UUID, keep uuid.UUID) (int64, error)
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.AdminSession
		}
		GetActive []struct {
			Ctx context.Context
			Id  uuid.UUID
			Now time.Time
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		DeleteOthers []struct {
			Ctx     context.Context
			AdminID uuid.UUID
			Keep    uuid.UUID
		}
		DeleteExpired []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockCreate        sync.RWMutex
	lockGetActive     sync.RWMutex
	lockDelete        sync.RWMutex
	lockDeleteOthers  sync.RWMutex
	lockDeleteExpired sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s *domain.AdminSession) error {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.AdminSession
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.AdminSession
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetActive(ctx context.Context, id uuid.UUID, now time.Time) (*domain.AdminSession, error) {
	if mock.GetActiveFunc == nil {
		panic("sessionRepoMock.GetActiveFunc: method is nil but sessionRepo.GetActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Now time.Time
	}{Ctx: ctx, Id: id, Now: now}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, callInfo)
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx, id, now)
}

func (mock *sessionRepoMock) GetActiveCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Now time.Time
} {
	mock.lockGetActive.RLock()
	calls := mock.calls.GetActive
	mock.lockGetActive.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sessionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteOthers(ctx context.Context, adminID uuid.UUID, keep uuid.UUID) (int64, error) {
	if mock.DeleteOthersFunc == nil {
		panic("sessionRepoMock.DeleteOthersFunc: method is nil but sessionRepo.DeleteOthers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AdminID uuid.UUID
		Keep    uuid.UUID
	}{Ctx: ctx, AdminID: adminID, Keep: keep}
	mock.lockDeleteOthers.Lock()
	mock.calls.DeleteOthers = append(mock.calls.DeleteOthers, callInfo)
	mock.lockDeleteOthers.Unlock()
	return mock.DeleteOthersFunc(ctx, adminID, keep)
}

func (mock *sessionRepoMock) DeleteOthersCalls() []struct {
	Ctx     context.Context
	AdminID uuid.UUID
	Keep    uuid.UUID
} {
	mock.lockDeleteOthers.RLock()
	calls := mock.calls.DeleteOthers
	mock.lockDeleteOthers.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("sessionRepoMock.DeleteExpiredFunc: method is nil but sessionRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx, now)
}

func (mock *sessionRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
