package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/asset-map-service/internal/config"
	"github.com/asset-map-service/internal/domain/repository"
	"github.com/asset-map-service/internal/infrastructure/assetapi"
	"github.com/asset-map-service/internal/pkg/logger"
	"github.com/asset-map-service/internal/repository/cache"
	"github.com/asset-map-service/internal/repository/postgres"
	redisRepo "github.com/asset-map-service/internal/repository/redis"
	"github.com/asset-map-service/internal/worker"
	"github.com/asset-map-service/internal/worker/assets"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Asset Change Detector")
	log.Info("Configuration loaded",
		zap.String("asset_source", cfg.AssetSource.Kind),
		zap.Duration("poll_interval", cfg.Worker.PollInterval),
		zap.Int("limit", cfg.AssetSource.Limit))

	// 3. Asset source
	var source repository.AssetRepository
	switch cfg.AssetSource.Kind {
	case config.AssetSourceREST:
		source = assetapi.NewAssetAPIClient(&cfg.AssetSource, log)
	case config.AssetSourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		source = postgres.NewAssetRepository(db)
	default:
		log.Fatal("Unknown asset source", zap.String("kind", cfg.AssetSource.Kind))
	}

	// 4. Connect to Redis streams
	streams, err := cache.NewRedisStreams(&cfg.RedisStreams, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis streams", zap.Error(err))
	}
	defer func() {
		if err := streams.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	streamRepo := redisRepo.NewStreamRepository(streams.Client(), log)

	// 5. Initialize workers
	detector := assets.NewChangeDetector(
		source,
		streamRepo,
		cfg.Worker.PollInterval,
		cfg.AssetSource.Limit,
		log,
	)

	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(detector)

	// 6. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
