package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"github.com/heartmarshall/gossip-murmur/internal/service/moderation"
	"sync"
)

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	EditEntryTextFunc func(ctx context.Context, input moderation.EditEntryInput) (*domain.Entry, error)
	DeleteGroupFunc   func(ctx context.Context, groupID uuid.UUID) error
	RecentActionsFunc func(ctx context.Context, limit int) ([]domain.ModerationRecord, error)
	EntityHistoryFunc func(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.ModerationRecord, error)

	calls struct {
		EditEntryText []struct {
			Ctx   context.Context
			Input moderation.EditEntryInput
		}
		DeleteGroup []struct {
			Ctx     context.Context
			GroupID uuid.UUID
		}
		RecentActions []struct {
			Ctx   context.Context
			Limit int
		}
		EntityHistory []struct {
			Ctx      context.Context
			EntityID uuid.UUID
			Limit    int
		}
	}
	lockEditEntryText sync.RWMutex
	lockDeleteGroup   sync.RWMutex
	lockRecentActions sync.RWMutex
	lockEntityHistory sync.RWMutex
}

func (mock *moderationServiceMock) EditEntryText(ctx context.Context, input moderation.EditEntryInput) (*domain.Entry, error) {
	if mock.EditEntryTextFunc == nil {
		panic("moderationServiceMock.EditEntryTextFunc: method is nil but moderationService.EditEntryText was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.EditEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockEditEntryText.Lock()
	mock.calls.EditEntryText = append(mock.calls.EditEntryText, callInfo)
	mock.lockEditEntryText.Unlock()
	return mock.EditEntryTextFunc(ctx, input)
}

func (mock *moderationServiceMock) EditEntryTextCalls() []struct {
	Ctx   context.Context
	Input moderation.EditEntryInput
} {
	mock.lockEditEntryText.RLock()
	calls := mock.calls.EditEntryText
	mock.lockEditEntryText.RUnlock()
	return calls
}

func (mock *moderationServiceMock) DeleteGroup(ctx context.Context, groupID uuid.UUID) error {
	if mock.DeleteGroupFunc == nil {
		panic("moderationServiceMock.DeleteGroupFunc: method is nil but moderationService.DeleteGroup was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID uuid.UUID
	}{Ctx: ctx, GroupID: groupID}
	mock.lockDeleteGroup.Lock()
	mock.calls.DeleteGroup = append(mock.calls.DeleteGroup, callInfo)
	mock.lockDeleteGroup.Unlock()
	return mock.DeleteGroupFunc(ctx, groupID)
}

func (mock *moderationServiceMock) DeleteGroupCalls() []struct {
	Ctx     context.Context
	GroupID uuid.UUID
} {
	mock.lockDeleteGroup.RLock()
	calls := mock.calls.DeleteGroup
	mock.lockDeleteGroup.RUnlock()
	return calls
}

func (mock *moderationServiceMock) RecentActions(ctx context.Context, limit int) ([]domain.ModerationRecord, error) {
	if mock.RecentActionsFunc == nil {
		panic("moderationServiceMock.RecentActionsFunc: method is nil but moderationService.RecentActions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecentActions.Lock()
	mock.calls.RecentActions = append(mock.calls.RecentActions, callInfo)
	mock.lockRecentActions.Unlock()
	return mock.RecentActionsFunc(ctx, limit)
}

func (mock *moderationServiceMock) RecentActionsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRecentActions.RLock()
	calls := mock.calls.RecentActions
	mock.lockRecentActions.RUnlock()
	return calls
}

func (mock *moderationServiceMock) EntityHistory(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.ModerationRecord, error) {
	if mock.EntityHistoryFunc == nil {
		panic("moderationServiceMock.EntityHistoryFunc: method is nil but moderationService.EntityHistory was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		EntityID uuid.UUID
		Limit    int
	}{Ctx: ctx, EntityID: entityID, Limit: limit}
	mock.lockEntityHistory.Lock()
	mock.calls.EntityHistory = append(mock.calls.EntityHistory, callInfo)
	mock.lockEntityHistory.Unlock()
	return mock.EntityHistoryFunc(ctx, entityID, limit)
}

func (mock *moderationServiceMock) EntityHistoryCalls() []struct {
	Ctx      context.Context
	EntityID uuid.UUID
	Limit    int
} {
	mock.lockEntityHistory.RLock()
	calls := mock.calls.EntityHistory
	mock.lockEntityHistory.RUnlock()
	return calls
}
