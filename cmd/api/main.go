package main

// @title Asset Map Service API
// @version 1.0.0
// @description Сервис кластеризации и взаимодействия с картой электрических активов.
// @description
// @description Основные возможности:
// @description - Кадры кластеров для видимой области и зума
// @description - Зум раскрытия, дочерние элементы и листья кластера
// @description - Видимый набор активов и разрешение кликов по близким активам
// @description - Серверные сессии карт с декларативными командами для клиента

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/asset-map-service/docs/swagger"
	"github.com/asset-map-service/internal/config"
	httpDelivery "github.com/asset-map-service/internal/delivery/http"
	"github.com/asset-map-service/internal/delivery/http/handler"
	"github.com/asset-map-service/internal/domain/repository"
	"github.com/asset-map-service/internal/infrastructure/assetapi"
	"github.com/asset-map-service/internal/pkg/logger"
	"github.com/asset-map-service/internal/repository/cache"
	"github.com/asset-map-service/internal/repository/postgres"
	redisRepo "github.com/asset-map-service/internal/repository/redis"
	"github.com/asset-map-service/internal/usecase"
	"github.com/asset-map-service/internal/worker"
	"github.com/asset-map-service/internal/worker/assets"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Asset Map Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("asset_source", cfg.AssetSource.Kind),
		zap.String("visibility_mode", cfg.Map.VisibilityMode),
	)

	opts, err := usecase.InteractionOptions(cfg)
	if err != nil {
		log.Fatal("Invalid map configuration", zap.Error(err))
	}

	// 3. Asset source
	assetRepo, closeSource, err := openAssetSource(cfg, log)
	if err != nil {
		log.Fatal("Failed to open asset source", zap.Error(err))
	}
	defer closeSource()

	// 4. Redis: cache is optional, the map keeps working straight from the source
	var cacheRepo repository.CacheRepository
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, asset cache disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		if cacheRepo, err = cache.NewCacheRepository(redisClient); err != nil {
			log.Fatal("Failed to initialize cache repository", zap.Error(err))
		}
	}

	// 5. Use cases
	assetUC := usecase.NewAssetUseCase(assetRepo, cacheRepo, cfg.Cache.AssetsCacheTTL, log)
	clusterUC := usecase.NewClusterUseCase(assetUC, opts, cfg.Cache.AssetsCacheTTL, log)
	sessionUC := usecase.NewMapSessionUseCase(assetUC, opts, log)

	log.Info("Use cases initialized")

	// 6. Background workers
	workerManager := worker.NewWorkerManager(log, 10*time.Second)
	workerManager.Register(assets.NewSessionReaper(sessionUC, cfg.Worker.SessionIdleTTL, log))

	if streams := openStreams(cfg, redisClient, log); streams != nil {
		if streams != redisClient {
			defer streams.Close()
		}
		streamRepo := redisRepo.NewStreamRepository(streams.Client(), log)
		workerManager.Register(assets.NewInvalidationWorker(
			streamRepo,
			assetUC,
			clusterUC,
			sessionUC,
			cfg.Worker.ConsumerGroup,
			cfg.Worker.StreamReadTimeout,
			log,
		))
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if err := workerManager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. HTTP server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Health:   handler.NewHealthHandler(sessionUC, assetRepo.Name()),
		Asset:    handler.NewAssetHandler(assetUC, log),
		Cluster:  handler.NewClusterHandler(clusterUC, log),
		Viewport: handler.NewViewportHandler(clusterUC, log),
		Session:  handler.NewSessionHandler(sessionUC, log),
	})

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.Int("workers", workerManager.Len()),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	stopWorkers()
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Server stopped successfully", zap.Int("sessions_left", sessionUC.Count()))
}

// openAssetSource открывает настроенный источник активов
func openAssetSource(cfg *config.Config, log *zap.Logger) (repository.AssetRepository, func(), error) {
	switch cfg.AssetSource.Kind {
	case config.AssetSourceREST:
		return assetapi.NewAssetAPIClient(&cfg.AssetSource, log), func() {}, nil
	case config.AssetSourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}
		return postgres.NewAssetRepository(db), closeDB, nil
	default:
		return nil, nil, fmt.Errorf("unknown asset source %q", cfg.AssetSource.Kind)
	}
}

// openStreams возвращает подключение к стриму изменений или nil, если воркер выключен
func openStreams(cfg *config.Config, cacheRedis *cache.Redis, log *zap.Logger) *cache.Redis {
	if !cfg.Worker.Enabled {
		log.Info("Change stream consumer disabled, indexes expire by TTL only")
		return nil
	}

	sameInstance := cfg.RedisStreams.Host == cfg.Redis.Host &&
		cfg.RedisStreams.Port == cfg.Redis.Port &&
		cfg.RedisStreams.DB == cfg.Redis.DB
	if sameInstance && cacheRedis != nil {
		return cacheRedis
	}

	streams, err := cache.NewRedisStreams(&cfg.RedisStreams, log)
	if err != nil {
		log.Warn("Redis streams unavailable, change events will not be consumed", zap.Error(err))
		return nil
	}
	return streams
}
