package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/asset-map-service/internal/domain"
)

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

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) GetAssets(ctx context.Context, filterKey string) ([]domain.AssetRecord, error) {
	args := m.Called(ctx, filterKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetRecord), args.Error(1)
}

func (m *MockCacheRepository) SetAssets(ctx context.Context, filterKey string, assets []domain.AssetRecord, ttl time.Duration) error {
	args := m.Called(ctx, filterKey, assets, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateAssets(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// testRecords: three assets a few metres apart in Santiago, one in Valparaiso,
// one without coordinates
func testRecords() []domain.AssetRecord {
	return []domain.AssetRecord{
		{Tag: "A1", Latitude: "-33.4489", Longitude: "-70.6693", Company: "Enel", Substation: "Alameda", Status: "operativo"},
		{Tag: "A2", Latitude: "-33.4490", Longitude: "-70.6695", Company: "Enel", Substation: "Alameda", Status: "operativo"},
		{Tag: "A3", Latitude: -33.4488, Longitude: -70.6690, Company: "Enel", Substation: "Alameda", Status: "mantencion"},
		{Tag: "B1", Latitude: "-33.0472", Longitude: "-71.6127", Company: "Chilquinta", Substation: "Valparaiso", Status: "operativo"},
		{Tag: "X1", Latitude: nil, Longitude: "-70.0", Company: "Enel"},
	}
}
