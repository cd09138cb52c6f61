package utils

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asset-map-service/internal/pkg/errors"
)

func respond(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"app error", errors.ErrSessionDisposed, 410, "SESSION_DISPOSED"},
		{"wrapped app error", fmt.Errorf("list assets: %w", errors.ErrDatabaseError), 500, "DATABASE_ERROR"},
		{"plain error is hidden", fmt.Errorf("dial tcp: connection refused"), 500, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respond(t, func(c *fiber.Ctx) error { return SendError(c, tt.err) })

			assert.Equal(t, tt.status, status)
			require.Contains(t, body, "error")
			assert.Equal(t, tt.code, body["error"].(map[string]interface{})["code"])
		})
	}
}

func TestSendSuccess(t *testing.T) {
	t.Run("meta keeps zero total", func(t *testing.T) {
		status, body := respond(t, func(c *fiber.Ctx) error {
			return SendSuccess(c, []string{}, &Meta{Total: 0})
		})

		assert.Equal(t, 200, status)
		meta := body["meta"].(map[string]interface{})
		assert.Equal(t, 0.0, meta["total"])
		assert.NotContains(t, meta, "limit")
	})

	t.Run("created", func(t *testing.T) {
		status, body := respond(t, func(c *fiber.Ctx) error {
			return SendCreated(c, map[string]string{"id": "x"})
		})

		assert.Equal(t, 201, status)
		assert.NotContains(t, body, "meta")
	})
}
