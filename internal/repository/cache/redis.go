package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/config"
)

// Redis — подключение к одному инстансу Redis: кеш списков активов или стрим изменений
type Redis struct {
	client *redis.Client
	name   string
	logger *zap.Logger
}

// NewRedis подключается к Redis кеша
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	return connect("cache", cfg.Host, cfg.Port, cfg.Password, cfg.DB, logger)
}

// NewRedisStreams подключается к Redis стрима изменений. Если он совпадает
// с кешем, вызывающая сторона может переиспользовать одно подключение.
func NewRedisStreams(cfg *config.RedisStreamsConfig, logger *zap.Logger) (*Redis, error) {
	return connect("streams", cfg.Host, cfg.Port, cfg.Password, cfg.DB, logger)
}

func connect(name, host string, port int, password string, db int, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis %s: %w", name, err)
	}

	logger.Info("Redis connected",
		zap.String("name", name),
		zap.String("host", host),
		zap.Int("port", port),
		zap.Int("db", db),
	)

	return &Redis{
		client: client,
		name:   name,
		logger: logger,
	}, nil
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection", zap.String("name", r.name))
	return r.client.Close()
}

func (r *Redis) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Client() *redis.Client {
	return r.client
}
