package rest

import (
	"context"
	"github.com/heartmarshall/gossip-murmur/internal/service/auth"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc          func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	LogoutFunc         func(ctx context.Context, token string) error
	ChangePasswordFunc func(ctx context.Context, input auth.ChangePasswordInput) error

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Logout []struct {
			Ctx   context.Context
			Token string
		}
		ChangePassword []struct {
			Ctx   context.Context
			Input auth.ChangePasswordInput
		}
	}
	lockLogin          sync.RWMutex
	lockLogout         sync.RWMutex
	lockChangePassword sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context, token string) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx, token)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error {
	if mock.ChangePasswordFunc == nil {
		panic("authServiceMock.ChangePasswordFunc: method is nil but authService.ChangePassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ChangePasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockChangePassword.Lock()
	mock.calls.ChangePassword = append(mock.calls.ChangePassword, callInfo)
	mock.lockChangePassword.Unlock()
	return mock.ChangePasswordFunc(ctx, input)
}

func (mock *authServiceMock) ChangePasswordCalls() []struct {
	Ctx   context.Context
	Input auth.ChangePasswordInput
} {
	mock.lockChangePassword.RLock()
	calls := mock.calls.ChangePassword
	mock.lockChangePassword.RUnlock()
	return calls
}
