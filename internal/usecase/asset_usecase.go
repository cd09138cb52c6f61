package usecase

import (
	"context"
	stderrors "errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/cluster"
	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/domain/repository"
	"github.com/asset-map-service/internal/pkg/errors"
	"github.com/asset-map-service/internal/usecase/dto"
)

// AssetProvider отдаёт точки активов по фильтру
type AssetProvider interface {
	ListPoints(ctx context.Context, filter domain.AssetFilter) ([]domain.GeoPoint, error)
}

type AssetUseCase struct {
	assetRepo repository.AssetRepository
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewAssetUseCase создаёт use case активов; cacheRepo может быть nil
func NewAssetUseCase(
	assetRepo repository.AssetRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *AssetUseCase {
	return &AssetUseCase{
		assetRepo: assetRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// FilterKey — канонический ключ фильтра: порядок значений не влияет на результат
func FilterKey(filter domain.AssetFilter) string {
	canonical := func(values []string) string {
		sorted := append([]string(nil), values...)
		sort.Strings(sorted)
		return strings.Join(sorted, "\x1f")
	}

	raw := strings.Join([]string{
		canonical(filter.Statuses),
		canonical(filter.Substations),
		canonical(filter.Companies),
		strconv.Itoa(filter.Limit),
	}, "\x1e")

	return strconv.FormatUint(xxhash.Sum64String(raw), 36)
}

// ListRecords возвращает сырые записи активов (cache-aside)
func (uc *AssetUseCase) ListRecords(ctx context.Context, filter domain.AssetFilter) ([]domain.AssetRecord, error) {
	key := FilterKey(filter)

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetAssets(ctx, key)
		if err != nil {
			// cache is optional
			uc.logger.Warn("Failed to read assets from cache", zap.String("key", key), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	records, err := uc.assetRepo.ListAssets(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list assets",
			zap.String("source", uc.assetRepo.Name()),
			zap.Error(err))
		// a query rejected by the database is not an outage
		appErr := errors.ErrAssetSourceUnavailable
		if stderrors.Is(err, errors.ErrDatabaseError) {
			appErr = errors.ErrDatabaseError
		}
		return nil, appErr.WithDetails(map[string]interface{}{
			"source": uc.assetRepo.Name(),
		})
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetAssets(ctx, key, records, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache assets", zap.String("key", key), zap.Error(err))
		}
	}

	return records, nil
}

// ListPoints возвращает активы с известным местоположением
func (uc *AssetUseCase) ListPoints(ctx context.Context, filter domain.AssetFilter) ([]domain.GeoPoint, error) {
	records, err := uc.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	points := domain.ToGeoPoints(records)
	if dropped := len(records) - len(points); dropped > 0 {
		uc.logger.Debug("Assets without location skipped",
			zap.Int("total", len(records)),
			zap.Int("skipped", dropped))
	}
	return points, nil
}

// GetGeoJSON возвращает все точки фильтра как FeatureCollection
func (uc *AssetUseCase) GetGeoJSON(ctx context.Context, req dto.FilterRequest) (*geojson.FeatureCollection, error) {
	points, err := uc.ListPoints(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}
	return cluster.PointsFrame(points), nil
}

// GetGroups группирует точки по подстанции или по расстоянию
func (uc *AssetUseCase) GetGroups(ctx context.Context, req dto.GroupsRequest) (*geojson.FeatureCollection, error) {
	points, err := uc.ListPoints(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}

	var groups []cluster.Group
	switch cluster.GroupingMode(req.Mode) {
	case cluster.GroupByDistanceMode:
		threshold := req.DistanceMeters
		if threshold <= 0 {
			threshold = cluster.DefaultGroupDistanceMeters
		}
		groups = cluster.GroupByDistance(points, threshold)
	case cluster.GroupBySubstationMode, "":
		groups = cluster.GroupBySubstation(points)
	default:
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"mode": req.Mode,
		})
	}

	return cluster.GroupsFrame(groups), nil
}

// InvalidateCache сбрасывает все закешированные списки активов
func (uc *AssetUseCase) InvalidateCache(ctx context.Context) (int, error) {
	if uc.cacheRepo == nil {
		return 0, nil
	}
	n, err := uc.cacheRepo.InvalidateAssets(ctx)
	if err != nil {
		uc.logger.Error("Failed to invalidate asset cache", zap.Error(err))
		return 0, errors.ErrCacheError
	}
	return n, nil
}
