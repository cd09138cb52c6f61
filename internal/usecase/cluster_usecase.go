package usecase

import (
	"context"
	stderrors "errors"
	"math"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/cluster"
	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/interaction"
	"github.com/asset-map-service/internal/metrics"
	"github.com/asset-map-service/internal/pkg/errors"
	"github.com/asset-map-service/internal/pkg/utils"
	"github.com/asset-map-service/internal/proximity"
	"github.com/asset-map-service/internal/usecase/dto"
	"github.com/asset-map-service/internal/viewport"
)

// DefaultLeavesLimit — сколько листьев отдаётся без явного лимита
const DefaultLeavesLimit = 10

type indexEntry struct {
	index   *cluster.Index
	builtAt time.Time
}

// ClusterUseCase обслуживает stateless-запросы к индексу кластеров.
// Индексы кешируются по ключу фильтра до инвалидации или истечения ttl.
type ClusterUseCase struct {
	assets  AssetProvider
	opts    interaction.Options
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time
	mu      sync.Mutex
	indexes map[string]indexEntry
}

func NewClusterUseCase(
	assets AssetProvider,
	opts interaction.Options,
	ttl time.Duration,
	logger *zap.Logger,
) *ClusterUseCase {
	return &ClusterUseCase{
		assets:  assets,
		opts:    opts,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		indexes: make(map[string]indexEntry),
	}
}

// Index возвращает индекс для фильтра, строя его при необходимости
func (uc *ClusterUseCase) Index(ctx context.Context, filter domain.AssetFilter) (*cluster.Index, error) {
	key := FilterKey(filter)

	uc.mu.Lock()
	entry, ok := uc.indexes[key]
	uc.mu.Unlock()
	if ok && (uc.ttl <= 0 || uc.now().Sub(entry.builtAt) < uc.ttl) {
		return entry.index, nil
	}

	points, err := uc.assets.ListPoints(ctx, filter)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	index, err := cluster.BuildIndex(points, uc.opts.Cluster)
	if err != nil {
		uc.logger.Error("Failed to build cluster index", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	metrics.ObserveIndexBuild(start, index.Len())

	uc.mu.Lock()
	uc.indexes[key] = indexEntry{index: index, builtAt: uc.now()}
	uc.mu.Unlock()

	uc.logger.Debug("Cluster index built",
		zap.String("filter_key", key),
		zap.Int("points", index.Len()),
		zap.String("fingerprint", index.Fingerprint()),
		zap.Duration("took", time.Since(start)))

	return index, nil
}

// Invalidate сбрасывает все построенные индексы
func (uc *ClusterUseCase) Invalidate() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n := len(uc.indexes)
	uc.indexes = make(map[string]indexEntry)
	return n
}

// GetClusters возвращает кадр кластеров для видимой области и зума
func (uc *ClusterUseCase) GetClusters(ctx context.Context, req dto.ClustersRequest) (fc *geojson.FeatureCollection, err error) {
	defer observe("clusters", &err)

	window, err := windowFromRequest(req.BoundsRequest)
	if err != nil {
		return nil, err
	}
	if !utils.ValidateZoom(req.Zoom) {
		return nil, errors.ErrInvalidZoom
	}

	index, err := uc.Index(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}

	return cluster.Frame(index.GetClusters(window.Bound(), req.Zoom)), nil
}

// GetExpansionZoom возвращает зум раскрытия кластера и зум перелёта камеры
func (uc *ClusterUseCase) GetExpansionZoom(ctx context.Context, req dto.ClusterRequest) (resp *dto.ExpansionZoomResponse, err error) {
	defer observe("expansion_zoom", &err)

	index, err := uc.Index(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}

	cl, err := index.GetCluster(req.ClusterID)
	if err != nil {
		return nil, mapClusterError(err, req.ClusterID)
	}
	zoom, err := index.GetExpansionZoom(req.ClusterID)
	if err != nil {
		return nil, mapClusterError(err, req.ClusterID)
	}

	return &dto.ExpansionZoomResponse{
		ClusterID:     req.ClusterID,
		ExpansionZoom: zoom,
		TargetZoom:    math.Min(float64(zoom+1), uc.opts.MapMaxZoom),
		Center:        [2]float64{cl.Centroid.Lon(), cl.Centroid.Lat()},
	}, nil
}

// GetChildren возвращает элементы следующего уровня кластера
func (uc *ClusterUseCase) GetChildren(ctx context.Context, req dto.ClusterRequest) (fc *geojson.FeatureCollection, err error) {
	defer observe("children", &err)

	index, err := uc.Index(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}

	children, err := index.GetChildren(req.ClusterID)
	if err != nil {
		return nil, mapClusterError(err, req.ClusterID)
	}
	return cluster.Frame(children), nil
}

// GetLeaves возвращает исходные точки кластера постранично
func (uc *ClusterUseCase) GetLeaves(ctx context.Context, req dto.ClusterLeavesRequest) (resp *dto.LeavesResponse, err error) {
	defer observe("leaves", &err)

	index, err := uc.Index(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}

	cl, err := index.GetCluster(req.ClusterID)
	if err != nil {
		return nil, mapClusterError(err, req.ClusterID)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLeavesLimit
	}
	leaves, err := index.GetLeaves(req.ClusterID, limit, req.Offset)
	if err != nil {
		return nil, mapClusterError(err, req.ClusterID)
	}

	return &dto.LeavesResponse{
		ClusterID: req.ClusterID,
		Total:     cl.Count,
		Limit:     limit,
		Offset:    req.Offset,
		Leaves:    cluster.PointsFrame(leaves),
	}, nil
}

// GetVisible возвращает активы внутри области. С зумом и режимом rendered
// учитываются только отдельные (некластеризованные) точки кадра.
func (uc *ClusterUseCase) GetVisible(ctx context.Context, req dto.ViewportRequest) (resp *dto.VisibleResponse, err error) {
	defer observe("visible", &err)

	window, err := windowFromRequest(req.BoundsRequest)
	if err != nil {
		return nil, err
	}

	index, err := uc.Index(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}

	candidates := index.Points()
	if uc.opts.VisibilityMode == viewport.ModeRendered && req.Zoom > 0 {
		candidates = nil
		for _, e := range index.GetClusters(window.Bound(), req.Zoom) {
			if e.Point != nil {
				candidates = append(candidates, *e.Point)
			}
		}
	}
	visible := viewport.ComputeVisible(candidates, window)

	return &dto.VisibleResponse{
		Window: dto.VisibleWindow{
			West:  window.West,
			South: window.South,
			East:  window.East,
			North: window.North,
		},
		Total:  len(visible),
		Empty:  len(visible) == 0,
		Assets: cluster.PointsFrame(visible),
	}, nil
}

// ResolveProximity возвращает активы в пороге от точки клика, ближайшие первыми.
// Кандидаты берутся из переданных тегов, иначе из окрестности клика на заданном зуме,
// иначе из всего набора.
func (uc *ClusterUseCase) ResolveProximity(ctx context.Context, req dto.ProximityRequest) (resp *dto.ProximityResponse, err error) {
	defer observe("proximity", &err)

	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	index, err := uc.Index(ctx, req.Filter.ToDomain())
	if err != nil {
		return nil, err
	}

	threshold := req.ThresholdM
	if threshold <= 0 {
		threshold = uc.opts.ProximityThresholdMeters
	}

	click := orb.Point{req.Lon, req.Lat}

	var candidates []domain.GeoPoint
	switch {
	case len(req.Tags) > 0:
		for _, tag := range req.Tags {
			if p, ok := index.Point(tag); ok {
				candidates = append(candidates, p)
			}
		}
	case req.Zoom > 0:
		candidates = index.PointsNear(click, req.Zoom, uc.opts.HitRadiusPx)
	default:
		candidates = index.Points()
	}

	targets := proximity.ResolveClickTargets(click, candidates, threshold)
	popup := interaction.BuildPopup(click, targets, interaction.SubstationPalette(index.Points()))

	return &dto.ProximityResponse{
		ThresholdM: threshold,
		Total:      len(popup.Assets),
		Popup:      popup,
	}, nil
}

func windowFromRequest(b dto.BoundsRequest) (viewport.Window, error) {
	window, err := viewport.NewViewportWindow(b.West, b.South, b.East, b.North)
	if err != nil {
		return viewport.Window{}, errors.ErrInvalidBounds.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	return window, nil
}

func mapClusterError(err error, clusterID string) error {
	if stderrors.Is(err, cluster.ErrClusterNotFound) {
		return errors.ErrClusterNotFound.WithDetails(map[string]interface{}{
			"cluster_id": clusterID,
		})
	}
	return errors.ErrInternalServer
}

func observe(operation string, err *error) {
	metrics.ClusterQueriesTotal.WithLabelValues(operation, metrics.Outcome(*err)).Inc()
}
