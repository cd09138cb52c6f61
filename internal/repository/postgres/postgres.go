package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/config"
)

const pingTimeout = 5 * time.Second

// DB — пул подключений к базе активов
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New открывает пул к базе активов и проверяет соединение
func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	db, err := sqlx.Connect("pgx", dataSourceName(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to asset database %s: %w", cfg.DBName, err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping asset database %s: %w", cfg.DBName, err)
	}

	logger = logger.With(zap.String("asset_db", cfg.DBName))
	logger.Info("Asset database connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.Int("max_conns", cfg.MaxConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
	)

	return &DB{DB: db, logger: logger}, nil
}

// dataSourceName собирает DSN в формате key=value, который понимают pgx и lib/pq
func dataSourceName(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
}

// PoolFields — статистика пула в виде полей лога
func (db *DB) PoolFields() []zap.Field {
	stats := db.Stats()
	return []zap.Field{
		zap.Int("open", stats.OpenConnections),
		zap.Int("in_use", stats.InUse),
		zap.Int("idle", stats.Idle),
		zap.Int64("wait_count", stats.WaitCount),
		zap.Duration("wait_duration", stats.WaitDuration),
	}
}

// Close закрывает пул, записывая итоговую статистику
func (db *DB) Close() error {
	db.logger.Info("Closing asset database", db.PoolFields()...)
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// NewDBForTest оборачивает готовое подключение (тестовая база)
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger.With(zap.String("asset_db", "test")),
	}
}
