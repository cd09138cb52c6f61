package domain

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetsChangedEvent_IsInitial(t *testing.T) {
	tests := []struct {
		name     string
		event    AssetsChangedEvent
		expected bool
	}{
		{
			name:     "first poll has no previous fingerprint",
			event:    AssetsChangedEvent{EventID: uuid.New(), Fingerprint: "abc"},
			expected: true,
		},
		{
			name:     "later change carries previous fingerprint",
			event:    AssetsChangedEvent{EventID: uuid.New(), Fingerprint: "abc", Previous: "xyz"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.IsInitial())
		})
	}
}

func TestAssetsChangedEvent_JSON(t *testing.T) {
	event := AssetsChangedEvent{
		EventID:     uuid.New(),
		Source:      "postgres",
		Fingerprint: "3k2j1",
		AssetCount:  42,
		DetectedAt:  time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fingerprint":"3k2j1"`)
	assert.NotContains(t, string(data), `"previous"`)

	var decoded AssetsChangedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event, decoded)
}
