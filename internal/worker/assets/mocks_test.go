package assets_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/asset-map-service/internal/domain"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string, block time.Duration) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, block)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) DestroyConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockAssetRepository is a mock of AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.AssetRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetRecord), args.Error(1)
}

func (m *MockAssetRepository) Name() string {
	return "mock"
}

// fakeTargets records invalidation calls
type fakeTargets struct {
	mu        sync.Mutex
	cacheHits int
	indexHits int
	refreshes int
	reaped    int
	cacheErr  error
}

func (f *fakeTargets) InvalidateCache(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cacheHits++
	return 2, f.cacheErr
}

func (f *fakeTargets) Invalidate() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexHits++
	return 1
}

func (f *fakeTargets) RefreshAll(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return 3, nil
}

func (f *fakeTargets) ReapIdle(context.Context, time.Duration) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reaped++
	return 0
}

func (f *fakeTargets) counts() (int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cacheHits, f.indexHits, f.refreshes
}
