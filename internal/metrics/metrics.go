package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_map_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "asset_map_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Cluster index
	IndexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "asset_map_index_build_duration_seconds",
			Help:    "Cluster index build duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	IndexPoints = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "asset_map_index_points",
			Help: "Number of points in the most recently built cluster index",
		},
	)

	ClusterQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_map_cluster_queries_total",
			Help: "Cluster index queries by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// Map sessions
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "asset_map_sessions_active",
			Help: "Number of live map sessions",
		},
	)

	SessionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_map_session_events_total",
			Help: "Map events received by type",
		},
		[]string{"type"},
	)

	// Cache
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "asset_map_cache_hits_total",
			Help: "Asset list cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "asset_map_cache_misses_total",
			Help: "Asset list cache misses",
		},
	)

	// Asset source
	AssetSourceRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_map_asset_source_requests_total",
			Help: "Asset source requests by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	AssetSourceBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "asset_map_asset_source_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Workers
	AssetChangesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "asset_map_asset_changes_total",
			Help: "Asset set changes detected or consumed",
		},
	)
)

// ObserveIndexBuild записывает длительность и размер построенного индекса
func ObserveIndexBuild(start time.Time, points int) {
	IndexBuildDuration.Observe(time.Since(start).Seconds())
	IndexPoints.Set(float64(points))
}

// Outcome переводит ошибку в метку исхода
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// Handler отдаёт метрики в формате Prometheus
func Handler() http.Handler { return promhttp.Handler() }
