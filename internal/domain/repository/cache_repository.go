package repository

import (
	"context"
	"time"

	"github.com/asset-map-service/internal/domain"
)

// CacheRepository — кеш списков активов по ключу фильтра
type CacheRepository interface {
	// GetAssets получает список активов по ключу фильтра; nil без ошибки означает промах
	GetAssets(ctx context.Context, filterKey string) ([]domain.AssetRecord, error)

	// SetAssets сохраняет список активов в сжатом виде
	SetAssets(ctx context.Context, filterKey string, assets []domain.AssetRecord, ttl time.Duration) error

	// InvalidateAssets удаляет все закешированные списки активов
	InvalidateAssets(ctx context.Context) (int, error)
}
