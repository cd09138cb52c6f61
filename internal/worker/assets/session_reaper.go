package assets

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/asset-map-service/internal/worker"
)

// IdleReaper освобождает сессии без активности
type IdleReaper interface {
	ReapIdle(ctx context.Context, ttl time.Duration) int
}

// SessionReaper периодически освобождает карты, клиенты которых пропали
type SessionReaper struct {
	*worker.BaseWorker
	sessions IdleReaper
	ttl      time.Duration
	interval time.Duration
}

// NewSessionReaper создает воркер; проверка идёт четыре раза за ttl, но не чаще раза в секунду
func NewSessionReaper(sessions IdleReaper, ttl time.Duration, logger *zap.Logger) *SessionReaper {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	return &SessionReaper{
		BaseWorker: worker.NewBaseWorker("session-reaper", "", logger),
		sessions:   sessions,
		ttl:        ttl,
		interval:   interval,
	}
}

// Start запускает воркер
func (r *SessionReaper) Start(ctx context.Context) error {
	r.Logger().Info("Starting SessionReaper",
		zap.Duration("ttl", r.ttl),
		zap.Duration("interval", r.interval))

	for r.Wait(ctx, r.interval) {
		if n := r.sessions.ReapIdle(ctx, r.ttl); n > 0 {
			r.Logger().Info("Idle sessions reaped", zap.Int("count", n))
		}
	}

	r.Logger().Info("Worker stopped")
	return nil
}
