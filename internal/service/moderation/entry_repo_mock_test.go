package moderation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"sync"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	UpdateTextFunc func(ctx context.Context, id uuid.UUID, text string) (*domain.Entry, error)

	calls struct {
		UpdateText []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Text string
		}
	}
	lockUpdateText sync.RWMutex
}

func (mock *entryRepoMock) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Entry, error) {
	if mock.UpdateTextFunc == nil {
		panic("entryRepoMock.UpdateTextFunc: method is nil but entryRepo.UpdateText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Text string
	}{Ctx: ctx, Id: id, Text: text}
	mock.lockUpdateText.Lock()
	mock.calls.UpdateText = append(mock.calls.UpdateText, callInfo)
	mock.lockUpdateText.Unlock()
	return mock.UpdateTextFunc(ctx, id, text)
}

func (mock *entryRepoMock) UpdateTextCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Text string
} {
	mock.lockUpdateText.RLock()
	calls := mock.calls.UpdateText
	mock.lockUpdateText.RUnlock()
	return calls
}
