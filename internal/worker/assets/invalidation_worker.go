package assets

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/domain/repository"
	"github.com/asset-map-service/internal/metrics"
	"github.com/asset-map-service/internal/worker"
)

// CacheInvalidator сбрасывает закешированные списки активов
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) (int, error)
}

// IndexInvalidator сбрасывает построенные индексы кластеров
type IndexInvalidator interface {
	Invalidate() int
}

// SessionRefresher перестраивает живые сессии карт
type SessionRefresher interface {
	RefreshAll(ctx context.Context) (int, error)
}

// InvalidationWorker читает stream:assets:changed и перестраивает всё, что зависит от набора активов
type InvalidationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cache        CacheInvalidator
	indexes      IndexInvalidator
	sessions     SessionRefresher
	consumerName string
	block        time.Duration
}

// groupTeardownTimeout ограничивает удаление consumer group при остановке
const groupTeardownTimeout = 5 * time.Second

// NewInvalidationWorker создает воркер. Каждый процесс API читает стрим своей
// consumer group (индексы и сессии живут в памяти процесса) и удаляет её при остановке.
func NewInvalidationWorker(
	streamRepo repository.StreamRepository,
	cache CacheInvalidator,
	indexes IndexInvalidator,
	sessions SessionRefresher,
	consumerGroup string,
	block time.Duration,
	logger *zap.Logger,
) *InvalidationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &InvalidationWorker{
		BaseWorker:   worker.NewBaseWorker("asset-invalidation", fmt.Sprintf("%s:%s", consumerGroup, consumerName), logger),
		streamRepo:   streamRepo,
		cache:        cache,
		indexes:      indexes,
		sessions:     sessions,
		consumerName: consumerName,
		block:        block,
	}
}

// Start запускает воркер
func (w *InvalidationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting InvalidationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAssetsChanged, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}
	// runs after the consumer is cancelled
	defer w.destroyGroup()

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(consumeCtx, domain.StreamAssetsChanged, w.ConsumerGroup(), w.consumerName, w.block)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream closed")
				return nil
			}
			if err := w.HandleMessage(ctx, msg); err != nil {
				logger.Error("Failed to handle message",
					zap.String("message_id", msg.ID),
					zap.Error(err))
			}
		}
	}
}

// HandleMessage обрабатывает одно событие изменения. Битые сообщения подтверждаются,
// чтобы не застревать в pending.
func (w *InvalidationWorker) HandleMessage(ctx context.Context, msg domain.StreamMessage) error {
	logger := w.Logger()

	var event domain.AssetsChangedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return w.streamRepo.AckMessage(ctx, domain.StreamAssetsChanged, w.ConsumerGroup(), msg.ID)
	}

	dropped, err := w.cache.InvalidateCache(ctx)
	if err != nil {
		// sessions still refresh from the source
		logger.Warn("Failed to invalidate asset cache", zap.Error(err))
	}
	indexes := w.indexes.Invalidate()

	refreshed, err := w.sessions.RefreshAll(ctx)
	if err != nil {
		logger.Warn("Some sessions were not refreshed", zap.Error(err))
	}

	metrics.AssetChangesTotal.Inc()
	logger.Info("Asset change applied",
		zap.String("event_id", event.EventID.String()),
		zap.String("fingerprint", event.Fingerprint),
		zap.Bool("initial", event.IsInitial()),
		zap.Int("cache_keys", dropped),
		zap.Int("indexes", indexes),
		zap.Int("sessions", refreshed))

	return w.streamRepo.AckMessage(ctx, domain.StreamAssetsChanged, w.ConsumerGroup(), msg.ID)
}

// destroyGroup удаляет consumer group процесса. ctx воркера к этому моменту может быть отменён.
func (w *InvalidationWorker) destroyGroup() {
	ctx, cancel := context.WithTimeout(context.Background(), groupTeardownTimeout)
	defer cancel()

	if err := w.streamRepo.DestroyConsumerGroup(ctx, domain.StreamAssetsChanged, w.ConsumerGroup()); err != nil {
		w.Logger().Warn("Consumer group left behind", zap.String("consumer_group", w.ConsumerGroup()), zap.Error(err))
	}
}
