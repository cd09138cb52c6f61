package assetapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/config"
	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/domain/repository"
	"github.com/asset-map-service/internal/metrics"
)

const breakerName = "asset-api"

// ErrUpstream — ответ внешнего API не 2xx
var ErrUpstream = errors.New("asset api upstream error")

type client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limit      int
	breaker    *gobreaker.CircuitBreaker[[]domain.AssetRecord]
	logger     *zap.Logger
}

// NewAssetAPIClient создает клиент внешнего REST API активов с circuit breaker
func NewAssetAPIClient(cfg *config.AssetSourceConfig, logger *zap.Logger) repository.AssetRepository {
	c := &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		limit:   cfg.Limit,
		logger:  logger,
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]domain.AssetRecord](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.BreakerHalfOpen,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			// отмена запроса клиентом не считается отказом API
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.AssetSourceBreakerState.WithLabelValues(name).Set(float64(to))
			logger.Warn("Asset API circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	metrics.AssetSourceBreakerState.WithLabelValues(breakerName).Set(float64(gobreaker.StateClosed))

	return c
}

func (c *client) Name() string {
	return "rest"
}

// ListAssets запрашивает последние активы; атрибутный фильтр применяется на стороне клиента
func (c *client) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.AssetRecord, error) {
	items, err := c.breaker.Execute(func() ([]domain.AssetRecord, error) {
		return c.fetch(ctx, c.requestLimit(filter))
	})
	metrics.AssetSourceRequestsTotal.WithLabelValues(c.Name(), metrics.Outcome(err)).Inc()
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn("Asset API request rejected by circuit breaker", zap.Error(err))
		}
		return nil, err
	}

	if filter.IsEmpty() {
		return items, nil
	}

	filtered := make([]domain.AssetRecord, 0, len(items))
	for _, item := range items {
		if filter.Limit > 0 && len(filtered) == filter.Limit {
			break
		}
		if filter.Matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (c *client) requestLimit(filter domain.AssetFilter) int {
	// с фильтром берём полную страницу, иначе отсечение произойдёт до фильтрации
	if filter.Limit > 0 && filter.IsEmpty() {
		return filter.Limit
	}
	if c.limit > 0 {
		return c.limit
	}
	return 7000
}

func (c *client) fetch(ctx context.Context, limit int) ([]domain.AssetRecord, error) {
	query := url.Values{}
	query.Set("sort", "created_at")
	query.Set("order", "desc")
	query.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s/assets?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Asset API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var page domain.AssetPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Asset API call successful",
		zap.Int("items", len(page.Items)),
		zap.Int("total", page.Metadata.Total),
		zap.Duration("took", time.Since(start)))

	if page.Items == nil {
		return []domain.AssetRecord{}, nil
	}
	return page.Items, nil
}
