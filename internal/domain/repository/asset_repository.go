package repository

import (
	"context"

	"github.com/asset-map-service/internal/domain"
)

// AssetRepository — источник списка активов (БД или внешний REST API)
type AssetRepository interface {
	// ListAssets возвращает записи активов, удовлетворяющие фильтру
	ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.AssetRecord, error)

	// Name возвращает имя источника для логов и метрик
	Name() string
}
