package service

import (
	"context"
	"sync"

	"github.com/mitsuba/clubport/internal/domain"
	"github.com/mitsuba/clubport/internal/port"
)

type SettingsRepositoryMock struct {
	DeliverySettingsFunc func(ctx context.Context) (port.DeliverySettings, error)
}

func (m *SettingsRepositoryMock) DeliverySettings(ctx context.Context) (port.DeliverySettings, error) {
	if m.DeliverySettingsFunc != nil {
		return m.DeliverySettingsFunc(ctx)
	}
	return port.DeliverySettings{}, nil
}

type PushClientMock struct {
	BroadcastFunc func(ctx context.Context, msg domain.PushMessage) error
	MulticastFunc func(ctx context.Context, to []string, msg domain.PushMessage) error

	mu         sync.Mutex
	broadcasts []domain.PushMessage
	multicasts [][]string
}

func (m *PushClientMock) Broadcast(ctx context.Context, msg domain.PushMessage) error {
	m.mu.Lock()
	m.broadcasts = append(m.broadcasts, msg)
	m.mu.Unlock()
	if m.BroadcastFunc != nil {
		return m.BroadcastFunc(ctx, msg)
	}
	return nil
}

func (m *PushClientMock) Multicast(ctx context.Context, to []string, msg domain.PushMessage) error {
	m.mu.Lock()
	m.multicasts = append(m.multicasts, to)
	m.mu.Unlock()
	if m.MulticastFunc != nil {
		return m.MulticastFunc(ctx, to, msg)
	}
	return nil
}

func (m *PushClientMock) BroadcastCalls() []domain.PushMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.PushMessage(nil), m.broadcasts...)
}

func (m *PushClientMock) MulticastCalls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.multicasts...)
}

type FeedMock struct {
	mu     sync.Mutex
	events []port.DispatchEvent
}

func (m *FeedMock) Publish(ev port.DispatchEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
}

func (m *FeedMock) Events() []port.DispatchEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]port.DispatchEvent(nil), m.events...)
}
