package assets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/domain/repository"
	"github.com/asset-map-service/internal/metrics"
	"github.com/asset-map-service/internal/worker"
)

// ChangeDetector опрашивает источник активов и публикует AssetsChangedEvent,
// когда отпечаток набора меняется
type ChangeDetector struct {
	*worker.BaseWorker
	source     repository.AssetRepository
	streamRepo repository.StreamRepository
	interval   time.Duration
	limit      int

	last string
}

// NewChangeDetector создает новый ChangeDetector
func NewChangeDetector(
	source repository.AssetRepository,
	streamRepo repository.StreamRepository,
	interval time.Duration,
	limit int,
	logger *zap.Logger,
) *ChangeDetector {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ChangeDetector{
		BaseWorker: worker.NewBaseWorker("asset-change-detector", "", logger),
		source:     source,
		streamRepo: streamRepo,
		interval:   interval,
		limit:      limit,
	}
}

// Start запускает воркер
func (d *ChangeDetector) Start(ctx context.Context) error {
	logger := d.Logger()
	logger.Info("Starting ChangeDetector",
		zap.String("source", d.source.Name()),
		zap.Duration("interval", d.interval))

	for {
		if _, err := d.Poll(ctx); err != nil {
			logger.Error("Failed to poll asset source", zap.Error(err))
		}

		if !d.Wait(ctx, d.interval) {
			logger.Info("Worker stopped")
			return nil
		}
	}
}

// Poll сравнивает текущий отпечаток набора с предыдущим и публикует событие при изменении
func (d *ChangeDetector) Poll(ctx context.Context) (bool, error) {
	records, err := d.source.ListAssets(ctx, domain.AssetFilter{Limit: d.limit})
	if err != nil {
		return false, fmt.Errorf("failed to list assets: %w", err)
	}

	fingerprint, err := Fingerprint(records)
	if err != nil {
		return false, err
	}
	if fingerprint == d.last {
		return false, nil
	}

	event := domain.AssetsChangedEvent{
		EventID:     uuid.New(),
		Source:      d.source.Name(),
		Fingerprint: fingerprint,
		Previous:    d.last,
		AssetCount:  len(records),
		DetectedAt:  time.Now().UTC(),
	}
	if err := d.streamRepo.PublishToStream(ctx, domain.StreamAssetsChanged, event); err != nil {
		return false, fmt.Errorf("failed to publish change event: %w", err)
	}

	// запоминаем только после успешной публикации, иначе изменение потеряется
	d.last = fingerprint
	metrics.AssetChangesTotal.Inc()

	d.Logger().Info("Asset set changed",
		zap.String("fingerprint", fingerprint),
		zap.String("previous", event.Previous),
		zap.Int("assets", len(records)))

	return true, nil
}

// Fingerprint — xxhash от сериализованного набора записей в порядке источника
func Fingerprint(records []domain.AssetRecord) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to marshal assets: %w", err)
	}
	return strconv.FormatUint(xxhash.Sum64(data), 36), nil
}
