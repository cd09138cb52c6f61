package assetapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/config"
	"github.com/asset-map-service/internal/domain"
)

func testConfig(url string) *config.AssetSourceConfig {
	return &config.AssetSourceConfig{
		Kind:            config.AssetSourceREST,
		BaseURL:         url,
		Token:           "secret",
		RequestTimeout:  2 * time.Second,
		Limit:           7000,
		BreakerTimeout:  time.Minute,
		BreakerFailures: 2,
		BreakerHalfOpen: 1,
	}
}

func TestClient_ListAssets(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		var gotQuery, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			gotAuth = r.Header.Get("Authorization")
			assert.Equal(t, "/assets", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"items": [
					{"tag": 1001, "latitud": "-33.45", "longitud": -70.66, "empresa": "Enel", "nombre_subestacion": "Alameda", "tag_estado": "operativo", "tag_marca": "ABB"},
					{"tag": "T-2", "latitud": null, "longitud": null, "empresa": "Enel"}
				],
				"metadata": {"total": 2, "page": 1, "pageSize": 7000}
			}`))
		}))
		defer server.Close()

		c := NewAssetAPIClient(testConfig(server.URL+"/"), logger)

		items, err := c.ListAssets(context.Background(), domain.AssetFilter{})
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Contains(t, gotQuery, "sort=created_at")
		assert.Contains(t, gotQuery, "order=desc")
		assert.Contains(t, gotQuery, "limit=7000")

		points := domain.ToGeoPoints(items)
		require.Len(t, points, 1)
		assert.Equal(t, "1001", points[0].ID)
		assert.InDelta(t, -70.66, points[0].Lon(), 1e-9)
	})

	t.Run("filter applied client side", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			page := domain.AssetPage{Items: []domain.AssetRecord{
				{Tag: "a", Status: "operativo"},
				{Tag: "b", Status: "baja"},
				{Tag: "c", Status: "operativo"},
			}}
			_ = json.NewEncoder(w).Encode(page)
		}))
		defer server.Close()

		c := NewAssetAPIClient(testConfig(server.URL), logger)

		items, err := c.ListAssets(context.Background(), domain.AssetFilter{Statuses: []string{"operativo"}, Limit: 1})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].Tag)
	})

	t.Run("empty items", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"metadata": {"total": 0}}`))
		}))
		defer server.Close()

		items, err := NewAssetAPIClient(testConfig(server.URL), logger).ListAssets(context.Background(), domain.AssetFilter{})
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewAssetAPIClient(testConfig(server.URL), logger).ListAssets(context.Background(), domain.AssetFilter{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestClient_CircuitBreakerOpens(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewAssetAPIClient(testConfig(server.URL), zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.ListAssets(ctx, domain.AssetFilter{})
		require.ErrorIs(t, err, ErrUpstream)
	}

	_, err := c.ListAssets(ctx, domain.AssetFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Name(t *testing.T) {
	c := NewAssetAPIClient(testConfig("http://localhost"), zap.NewNop())
	assert.Equal(t, "rest", c.Name())
}
