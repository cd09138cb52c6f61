package assets_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/worker/assets"
)

func TestSessionReaper_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	targets := &fakeTargets{}
	r := assets.NewSessionReaper(targets, time.Hour, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- r.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("reaper did not stop")
	}
	assert.Equal(t, "session-reaper", r.Name())
}

func TestSessionReaper_Reaps(t *testing.T) {
	targets := &fakeTargets{}
	// 4s ttl gives the minimal 1s interval
	r := assets.NewSessionReaper(targets, 4*time.Second, zap.NewNop())

	go func() { _ = r.Start(context.Background()) }()
	defer r.Stop()

	assert.Eventually(t, func() bool {
		targets.mu.Lock()
		defer targets.mu.Unlock()
		return targets.reaped > 0
	}, 3*time.Second, 50*time.Millisecond)
}
