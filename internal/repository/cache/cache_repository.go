package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/domain/repository"
	"github.com/asset-map-service/internal/metrics"
)

const assetsKeyPrefix = "assets:v1:"

type cacheRepository struct {
	client *redis.Client
	codec  *assetCodec
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) (repository.CacheRepository, error) {
	codec, err := newAssetCodec()
	if err != nil {
		return nil, err
	}
	return &cacheRepository{
		client: redis.Client(),
		codec:  codec,
		logger: redis.logger,
	}, nil
}

func (r *cacheRepository) load(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to read asset cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return val, nil
}

func (r *cacheRepository) store(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to write asset cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Asset cache stored",
		zap.String("key", key),
		zap.Int("bytes", len(value)),
		zap.Duration("ttl", ttl))
	return nil
}

// GetAssets получает список активов из кеша
func (r *cacheRepository) GetAssets(ctx context.Context, filterKey string) ([]domain.AssetRecord, error) {
	data, err := r.load(ctx, assetsKeyPrefix+filterKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		metrics.CacheMissesTotal.Inc()
		return nil, nil // Cache miss
	}

	assets, err := r.codec.decode(data)
	if err != nil {
		// corrupted entry is treated as a miss
		r.logger.Warn("Failed to decode cached assets", zap.String("filter", filterKey), zap.Error(err))
		metrics.CacheMissesTotal.Inc()
		return nil, nil
	}

	metrics.CacheHitsTotal.Inc()
	return assets, nil
}

// SetAssets сохраняет список активов в кеше
func (r *cacheRepository) SetAssets(ctx context.Context, filterKey string, assets []domain.AssetRecord, ttl time.Duration) error {
	data, err := r.codec.encode(assets)
	if err != nil {
		r.logger.Error("Failed to encode assets", zap.Error(err))
		return err
	}

	return r.store(ctx, assetsKeyPrefix+filterKey, data, ttl)
}

// InvalidateAssets удаляет все списки активов
func (r *cacheRepository) InvalidateAssets(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		deleted int
	)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, assetsKeyPrefix+"*", 100).Result()
		if err != nil {
			r.logger.Error("Failed to scan asset cache keys", zap.Error(err))
			return deleted, fmt.Errorf("cache scan error: %w", err)
		}

		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				r.logger.Error("Failed to delete asset cache keys", zap.Error(err))
				return deleted, fmt.Errorf("cache delete error: %w", err)
			}
			deleted += int(n)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	r.logger.Info("Asset cache invalidated", zap.Int("deleted", deleted))
	return deleted, nil
}
