package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"sync"
)

var _ adminRepo = &adminRepoMock{}

type adminRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByUsernameFunc  func(ctx context.Context, username string) (*domain.Admin, error)
	CreateFunc         func(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
	UpdatePasswordFunc func(ctx context.Context, id uuid.UUID, password string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Admin
		}
		UpdatePassword []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Password string
		}
	}
	lockGetByID        sync.RWMutex
	lockGetByUsername  sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdatePassword sync.RWMutex
}

func (mock *adminRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	if mock.GetByIDFunc == nil {
		panic("adminRepoMock.GetByIDFunc: method is nil but adminRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *adminRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *adminRepoMock) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	if mock.GetByUsernameFunc == nil {
		panic("adminRepoMock.GetByUsernameFunc: method is nil but adminRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *adminRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *adminRepoMock) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	if mock.CreateFunc == nil {
		panic("adminRepoMock.CreateFunc: method is nil but adminRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Admin
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *adminRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Admin
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *adminRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("adminRepoMock.UpdatePasswordFunc: method is nil but adminRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Password string
	}{Ctx: ctx, Id: id, Password: password}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, password)
}

func (mock *adminRepoMock) UpdatePasswordCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Password string
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}
