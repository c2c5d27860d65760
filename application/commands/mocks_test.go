package commands

import (
	"context"

	"mentra-backend/domain/events"
	"mentra-backend/domain/menu"

	"github.com/stretchr/testify/mock"
)

// MockItemRepository mocks ports.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Save(ctx context.Context, item menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, tenantID, itemID string) (menu.Item, error) {
	args := m.Called(ctx, tenantID, itemID)
	return args.Get(0).(menu.Item), args.Error(1)
}

func (m *MockItemRepository) ListByTenant(ctx context.Context, tenantID string) ([]menu.Item, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, tenantID, itemID string) error {
	args := m.Called(ctx, tenantID, itemID)
	return args.Error(0)
}

// MockOrderingRepository mocks ports.OrderingRepository
type MockOrderingRepository struct {
	mock.Mock
}

func (m *MockOrderingRepository) Get(ctx context.Context, tenantID string) (menu.Ordering, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(menu.Ordering), args.Error(1)
}

func (m *MockOrderingRepository) Put(ctx context.Context, tenantID string, ord menu.Ordering) error {
	args := m.Called(ctx, tenantID, ord)
	return args.Error(0)
}

// MockPlaylistRepository mocks ports.PlaylistRepository
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Get(ctx context.Context, tenantID string) (menu.Playlist, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(menu.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Put(ctx context.Context, playlist menu.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

// MockProgressRepository mocks ports.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, tenantID, userID string) (menu.Progress, error) {
	args := m.Called(ctx, tenantID, userID)
	return args.Get(0).(menu.Progress), args.Error(1)
}

func (m *MockProgressRepository) Put(ctx context.Context, progress menu.Progress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// MockMenuTransactions mocks ports.MenuTransactions
type MockMenuTransactions struct {
	mock.Mock
}

func (m *MockMenuTransactions) SaveItemAndOrdering(ctx context.Context, item menu.Item, ord menu.Ordering) error {
	args := m.Called(ctx, item, ord)
	return args.Error(0)
}

func (m *MockMenuTransactions) DeleteItemAndOrdering(ctx context.Context, tenantID, itemID string, ord menu.Ordering) error {
	args := m.Called(ctx, tenantID, itemID, ord)
	return args.Error(0)
}

// MockEventBus mocks ports.EventBus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockCache mocks ports.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (interface{}, bool) {
	args := m.Called(ctx, key)
	return args.Get(0), args.Bool(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttlSeconds int) error {
	args := m.Called(ctx, key, value, ttlSeconds)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
