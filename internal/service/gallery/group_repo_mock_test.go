package gallery

import (
	"context"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"sync"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	ListPageFunc func(ctx context.Context, filter domain.GroupFilter) ([]domain.Group, int, error)

	calls struct {
		ListPage []struct {
			Ctx    context.Context
			Filter domain.GroupFilter
		}
	}
	lockListPage sync.RWMutex
}

func (mock *groupRepoMock) ListPage(ctx context.Context, filter domain.GroupFilter) ([]domain.Group, int, error) {
	if mock.ListPageFunc == nil {
		panic("groupRepoMock.ListPageFunc: method is nil but groupRepo.ListPage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.GroupFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListPage.Lock()
	mock.calls.ListPage = append(mock.calls.ListPage, callInfo)
	mock.lockListPage.Unlock()
	return mock.ListPageFunc(ctx, filter)
}

func (mock *groupRepoMock) ListPageCalls() []struct {
	Ctx    context.Context
	Filter domain.GroupFilter
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}
