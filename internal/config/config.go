package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	RedisStreams RedisStreamsConfig
	Cache        CacheConfig
	Log          LogConfig
	Worker       WorkerConfig
	AssetSource  AssetSourceConfig
	Cluster      ClusterConfig
	Map          MapConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisStreamsConfig — отдельный Redis для стрима изменений; по умолчанию совпадает с основным
type RedisStreamsConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	AssetsCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	PollInterval      time.Duration
	SessionIdleTTL    time.Duration
}

// AssetSourceConfig — откуда брать список активов: postgres или внешний REST API
type AssetSourceConfig struct {
	Kind            string
	BaseURL         string
	Token           string
	RequestTimeout  time.Duration
	Limit           int
	BreakerTimeout  time.Duration
	BreakerFailures uint32
	BreakerHalfOpen uint32
	BreakerInterval time.Duration
}

// ClusterConfig — параметры кластеризации (радиус в пикселях, максимальный зум кластеров)
type ClusterConfig struct {
	MinZoom   int
	MaxZoom   int
	Radius    float64
	Extent    int
	NodeSize  int
	MinPoints int
}

// MapConfig — параметры взаимодействия с картой
type MapConfig struct {
	MaxZoom                  float64
	ProximityThresholdMeters float64
	HitRadiusPx              float64
	PopupPanRatio            float64
	VisibilityMode           string
}

const (
	AssetSourcePostgres = "postgres"
	AssetSourceREST     = "rest"
)

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env опционален: в контейнере всё приходит из окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			CORSOrigins: viper.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RedisStreams: RedisStreamsConfig{
			Host:     viper.GetString("REDIS_STREAMS_HOST"),
			Port:     viper.GetInt("REDIS_STREAMS_PORT"),
			Password: viper.GetString("REDIS_STREAMS_PASSWORD"),
			DB:       viper.GetInt("REDIS_STREAMS_DB"),
		},
		Cache: CacheConfig{
			AssetsCacheTTL: time.Duration(viper.GetInt("ASSETS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			PollInterval:      time.Duration(viper.GetInt("WORKER_POLL_INTERVAL")) * time.Second,
			SessionIdleTTL:    time.Duration(viper.GetInt("WORKER_SESSION_IDLE_TTL")) * time.Second,
		},
		AssetSource: AssetSourceConfig{
			Kind:            viper.GetString("ASSET_SOURCE"),
			BaseURL:         viper.GetString("ASSET_API_URL"),
			Token:           viper.GetString("ASSET_API_TOKEN"),
			RequestTimeout:  time.Duration(viper.GetInt("ASSET_API_TIMEOUT")) * time.Second,
			Limit:           viper.GetInt("ASSET_LIMIT"),
			BreakerTimeout:  time.Duration(viper.GetInt("ASSET_API_BREAKER_TIMEOUT")) * time.Second,
			BreakerFailures: viper.GetUint32("ASSET_API_BREAKER_FAILURES"),
			BreakerHalfOpen: viper.GetUint32("ASSET_API_BREAKER_HALF_OPEN"),
			BreakerInterval: time.Duration(viper.GetInt("ASSET_API_BREAKER_INTERVAL")) * time.Second,
		},
		Cluster: ClusterConfig{
			MinZoom:   viper.GetInt("CLUSTER_MIN_ZOOM"),
			MaxZoom:   viper.GetInt("CLUSTER_MAX_ZOOM"),
			Radius:    viper.GetFloat64("CLUSTER_RADIUS"),
			Extent:    viper.GetInt("CLUSTER_EXTENT"),
			NodeSize:  viper.GetInt("CLUSTER_NODE_SIZE"),
			MinPoints: viper.GetInt("CLUSTER_MIN_POINTS"),
		},
		Map: MapConfig{
			MaxZoom:                  viper.GetFloat64("MAP_MAX_ZOOM"),
			ProximityThresholdMeters: viper.GetFloat64("MAP_PROXIMITY_THRESHOLD_M"),
			HitRadiusPx:              viper.GetFloat64("MAP_HIT_RADIUS_PX"),
			PopupPanRatio:            viper.GetFloat64("MAP_POPUP_PAN_RATIO"),
			VisibilityMode:           viper.GetString("MAP_VISIBILITY_MODE"),
		},
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults выставляет значения по умолчанию для незаданных параметров
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.RedisStreams.Host == "" {
		c.RedisStreams.Host = c.Redis.Host
		c.RedisStreams.Port = c.Redis.Port
		c.RedisStreams.Password = c.Redis.Password
		c.RedisStreams.DB = c.Redis.DB
	}
	if c.Cache.AssetsCacheTTL == 0 {
		c.Cache.AssetsCacheTTL = 5 * time.Minute
	}

	// Set default values if not provided
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "asset-map-invalidation"
	}
	if c.Worker.StreamReadTimeout == 0 {
		c.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if c.Worker.PollInterval == 0 {
		c.Worker.PollInterval = 60 * time.Second
	}
	if c.Worker.SessionIdleTTL == 0 {
		c.Worker.SessionIdleTTL = 30 * time.Minute
	}

	if c.AssetSource.Kind == "" {
		c.AssetSource.Kind = AssetSourcePostgres
	}
	if c.AssetSource.RequestTimeout == 0 {
		c.AssetSource.RequestTimeout = 15 * time.Second
	}
	if c.AssetSource.Limit == 0 {
		c.AssetSource.Limit = 7000
	}
	if c.AssetSource.BreakerTimeout == 0 {
		c.AssetSource.BreakerTimeout = 30 * time.Second
	}
	if c.AssetSource.BreakerFailures == 0 {
		c.AssetSource.BreakerFailures = 5
	}
	if c.AssetSource.BreakerHalfOpen == 0 {
		c.AssetSource.BreakerHalfOpen = 1
	}

	if c.Cluster.MaxZoom == 0 {
		c.Cluster.MaxZoom = 9
	}
	if c.Cluster.Radius == 0 {
		c.Cluster.Radius = 15
	}
	if c.Cluster.Extent == 0 {
		c.Cluster.Extent = 512
	}
	if c.Cluster.NodeSize == 0 {
		c.Cluster.NodeSize = 64
	}
	if c.Cluster.MinPoints == 0 {
		c.Cluster.MinPoints = 2
	}

	if c.Map.MaxZoom == 0 {
		c.Map.MaxZoom = 20
	}
	if c.Map.ProximityThresholdMeters == 0 {
		c.Map.ProximityThresholdMeters = 200
	}
	if c.Map.HitRadiusPx == 0 {
		c.Map.HitRadiusPx = 10
	}
	if c.Map.PopupPanRatio == 0 {
		c.Map.PopupPanRatio = 0.15
	}
	if c.Map.VisibilityMode == "" {
		c.Map.VisibilityMode = "bounds"
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
