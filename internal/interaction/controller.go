package interaction

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/cluster"
	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/proximity"
	"github.com/asset-map-service/internal/viewport"
)

var (
	ErrDisposed     = errors.New("map controller disposed")
	ErrNotReady     = errors.New("map controller not ready")
	ErrUnknownAsset = errors.New("unknown asset")
)

// State — состояние экземпляра карты
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateDisposed      State = "disposed"
)

// Options — параметры взаимодействия
type Options struct {
	Cluster                  cluster.Options
	MapMaxZoom               float64
	ProximityThresholdMeters float64
	HitRadiusPx              float64
	PopupPanRatio            float64
	PopupPanDuration         time.Duration
	VisibilityMode           viewport.Mode
}

// DefaultOptions возвращает параметры по умолчанию
func DefaultOptions() Options {
	return Options{
		Cluster:                  cluster.DefaultOptions(),
		MapMaxZoom:               20,
		ProximityThresholdMeters: proximity.DefaultThresholdMeters,
		HitRadiusPx:              10,
		PopupPanRatio:            0.15,
		PopupPanDuration:         300 * time.Millisecond,
		VisibilityMode:           viewport.ModeBounds,
	}
}

// Controller связывает события одной смонтированной карты с индексом кластеров,
// трекером видимости и разрешением кликов. Владеет поверхностью карты и освобождает
// её ровно один раз. Не потокобезопасен: вызывающий сериализует события.
type Controller struct {
	surface   MapSurface
	navigator Navigator
	presenter Presenter
	opts      Options
	logger    *zap.Logger

	state     State
	listeners *ListenerSet
	lifecycle Token
	data      Token

	points   []domain.GeoPoint
	index    *cluster.Index
	palette  map[string]string
	tracker  *viewport.Tracker
	rendered *viewport.View
	frameLen int
}

// NewController создаёт контроллер для переданной поверхности карты
func NewController(surface MapSurface, navigator Navigator, presenter Presenter, opts Options, logger *zap.Logger) (*Controller, error) {
	if surface == nil || navigator == nil || presenter == nil {
		return nil, fmt.Errorf("surface, navigator and presenter are required")
	}
	if err := opts.Cluster.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cluster options: %w", err)
	}
	if opts.MapMaxZoom <= 0 {
		opts.MapMaxZoom = DefaultOptions().MapMaxZoom
	}
	if opts.ProximityThresholdMeters <= 0 {
		opts.ProximityThresholdMeters = proximity.DefaultThresholdMeters
	}
	if opts.HitRadiusPx <= 0 {
		opts.HitRadiusPx = DefaultOptions().HitRadiusPx
	}
	if opts.VisibilityMode == "" {
		opts.VisibilityMode = viewport.ModeBounds
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		surface:   surface,
		navigator: navigator,
		presenter: presenter,
		opts:      opts,
		logger:    logger,
		state:     StateUninitialized,
		listeners: NewListenerSet(surface),
	}
	c.tracker = viewport.NewTracker(opts.VisibilityMode, c.renderedPoints)

	return c, nil
}

// State возвращает текущее состояние
func (c *Controller) State() State {
	return c.state
}

// Index возвращает текущий индекс (nil до load)
func (c *Controller) Index() *cluster.Index {
	return c.index
}

// Points возвращает текущий набор точек
func (c *Controller) Points() []domain.GeoPoint {
	return c.points
}

// ActiveListenerGroups возвращает число неснятых групп подписок
func (c *Controller) ActiveListenerGroups() int {
	return c.listeners.Active()
}

// Mount начинает загрузку карты. Кластеризация не запускается до события load.
func (c *Controller) Mount(points []domain.GeoPoint) error {
	switch c.state {
	case StateDisposed:
		return ErrDisposed
	case StateUninitialized:
	default:
		return fmt.Errorf("mount in state %s", c.state)
	}

	c.points = points
	c.lifecycle = c.listeners.Attach([]Listener{
		{Event: EventLoad, Handler: c.onLoad},
		{Event: EventIdle, Handler: c.onIdle},
		{Event: EventError, Handler: c.onError},
	})
	c.state = StateLoading

	c.logger.Debug("Map mounted", zap.Int("points", len(points)))
	return nil
}

// SetPoints заменяет набор точек. В состоянии Ready индекс перестраивается целиком:
// старые подписки снимаются до регистрации новых, прежний кадр остаётся на карте
// до отправки нового.
func (c *Controller) SetPoints(points []domain.GeoPoint) error {
	switch c.state {
	case StateDisposed:
		return ErrDisposed
	case StateUninitialized, StateLoading:
		c.points = points
		return nil
	}

	index, err := cluster.BuildIndex(points, c.opts.Cluster)
	if err != nil {
		return fmt.Errorf("failed to rebuild index: %w", err)
	}

	c.listeners.Detach(c.data)
	c.data = 0

	c.points = points
	c.index = index
	c.palette = SubstationPalette(points)
	c.tracker.SetPoints(points)

	cam := c.surface.Camera()
	if cam.Known {
		c.renderFrame(cam)
	}
	c.attachDataListeners()

	if set, ok := c.tracker.Refresh(cam.View()); ok {
		c.presenter.ShowVisible(set)
	}

	c.logger.Debug("Map points replaced",
		zap.Int("points", len(points)),
		zap.String("fingerprint", index.Fingerprint()),
	)
	return nil
}

// ViewDetails выражает намерение открыть карточку актива
func (c *Controller) ViewDetails(tag string) error {
	switch c.state {
	case StateDisposed:
		return ErrDisposed
	case StateReady:
	default:
		return ErrNotReady
	}

	if _, ok := c.index.Point(tag); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAsset, tag)
	}
	c.navigator.NavigateToAsset(tag)
	return nil
}

// Dispose снимает все подписки и освобождает карту. Повторный вызов ничего не делает.
func (c *Controller) Dispose() {
	if c.state == StateDisposed {
		return
	}

	c.listeners.Dispose()
	c.surface.Remove()
	c.state = StateDisposed
	c.index = nil
	c.points = nil

	c.logger.Debug("Map disposed")
}

func (c *Controller) onLoad(Event) {
	if c.state != StateLoading {
		return
	}

	index, err := cluster.BuildIndex(c.points, c.opts.Cluster)
	if err != nil {
		c.logger.Error("Failed to build cluster index", zap.Error(err))
		c.presenter.ShowMapUnavailable("cluster index unavailable")
		return
	}

	c.index = index
	c.palette = SubstationPalette(c.points)
	c.tracker.SetPoints(c.points)

	// without a camera the source starts empty and is filled on the first reported view
	cam := c.surface.Camera()
	if cam.Known {
		c.surface.AddSource(SourceAssets, c.frame(cam))
		c.rendered = viewPtr(cam.View())
	} else {
		c.surface.AddSource(SourceAssets, geojson.NewFeatureCollection())
		c.rendered = nil
		c.frameLen = 0
	}
	for _, l := range AssetLayers() {
		c.surface.AddLayer(l)
	}

	c.attachDataListeners()
	c.state = StateReady
	c.tracker.Handle(viewport.TriggerLoad, cam.View())

	c.logger.Debug("Map ready",
		zap.Int("points", index.Len()),
		zap.Int("frame_entries", c.frameLen),
		zap.Bool("camera_known", cam.Known),
	)
}

func (c *Controller) onIdle(Event) {
	if c.state != StateReady {
		return
	}
	cam := c.surface.Camera()
	if !cam.Known {
		return
	}
	if c.rendered == nil {
		c.renderFrame(cam)
	}
	if set, ok := c.tracker.Handle(viewport.TriggerIdle, cam.View()); ok {
		c.presenter.ShowVisible(set)
	}
}

func (c *Controller) onError(ev Event) {
	// the core state is left untouched
	c.logger.Warn("Map reported error", zap.String("message", ev.Message))
	c.presenter.ShowMapUnavailable(ev.Message)
}

func (c *Controller) onViewChanged(ev Event) {
	cam := c.surface.Camera()
	if !cam.Known {
		return
	}
	view := cam.View()

	if c.rendered == nil || *c.rendered != view {
		c.renderFrame(cam)
	}

	trigger := viewport.TriggerMoveEnd
	if ev.Type == EventZoomEnd {
		trigger = viewport.TriggerZoomEnd
	}
	if set, ok := c.tracker.Handle(trigger, view); ok {
		c.presenter.ShowVisible(set)
	}
}

func (c *Controller) onClusterClick(ev Event) {
	var clusterID string
	for _, f := range ev.Features {
		if f.ClusterID != "" {
			clusterID = f.ClusterID
			break
		}
	}
	if clusterID == "" {
		return
	}

	cl, err := c.index.GetCluster(clusterID)
	if err == nil {
		var zoom int
		zoom, err = c.index.GetExpansionZoom(clusterID)
		if err == nil {
			target := math.Min(float64(zoom+1), c.opts.MapMaxZoom)
			c.surface.FlyTo(cl.Centroid, target)
			return
		}
	}

	if errors.Is(err, cluster.ErrClusterNotFound) {
		// stale frame on the client side: send the current one
		c.logger.Debug("Stale cluster id, re-rendering", zap.String("cluster_id", clusterID))
		if cam := c.surface.Camera(); cam.Known {
			c.renderFrame(cam)
		}
		return
	}
	c.logger.Error("Failed to expand cluster", zap.String("cluster_id", clusterID), zap.Error(err))
}

func (c *Controller) onPointClick(ev Event) {
	cam := c.surface.Camera()

	var candidates []domain.GeoPoint
	for _, f := range ev.Features {
		if f.Tag == "" {
			continue
		}
		if p, ok := c.index.Point(f.Tag); ok {
			candidates = append(candidates, p)
		}
	}
	if len(ev.Features) == 0 {
		candidates = c.index.PointsNear(ev.LngLat, cam.Zoom, c.opts.HitRadiusPx)
	}

	targets := proximity.ResolveClickTargets(ev.LngLat, candidates, c.opts.ProximityThresholdMeters)
	if len(targets) == 0 {
		return
	}

	c.presenter.ShowPopup(BuildPopup(ev.LngLat, targets, c.palette))
	c.surface.PanBy(0, -cam.HeightPx*c.opts.PopupPanRatio/2, c.opts.PopupPanDuration)
}

func (c *Controller) onHover(ev Event) {
	if ev.Type == EventMouseEnter {
		c.surface.SetCursor("pointer")
		return
	}
	c.surface.SetCursor("")
}

func (c *Controller) attachDataListeners() {
	c.data = c.listeners.Attach([]Listener{
		{Event: EventMoveEnd, Handler: c.onViewChanged},
		{Event: EventZoomEnd, Handler: c.onViewChanged},
		{Event: EventClick, Layer: LayerClusters, Handler: c.onClusterClick},
		{Event: EventClick, Layer: LayerUnclustered, Handler: c.onPointClick},
		{Event: EventMouseEnter, Layer: LayerClusters, Handler: c.onHover},
		{Event: EventMouseLeave, Layer: LayerClusters, Handler: c.onHover},
		{Event: EventMouseEnter, Layer: LayerUnclustered, Handler: c.onHover},
		{Event: EventMouseLeave, Layer: LayerUnclustered, Handler: c.onHover},
	})
}

func (c *Controller) renderFrame(cam Camera) {
	c.surface.SetSourceData(SourceAssets, c.frame(cam))
	c.rendered = viewPtr(cam.View())
}

func (c *Controller) frame(cam Camera) *geojson.FeatureCollection {
	entries := c.index.GetClusters(cam.Window.Bound(), cam.Zoom)
	c.frameLen = len(entries)

	fc := cluster.Frame(entries)
	for _, f := range fc.Features {
		if f.Properties["cluster"] == true {
			continue
		}
		sub, _ := f.Properties["substation"].(string)
		if color, ok := c.palette[sub]; ok {
			f.Properties["color"] = color
		}
	}
	return fc
}

func (c *Controller) renderedPoints(view viewport.View) []domain.GeoPoint {
	if c.index == nil {
		return nil
	}
	var points []domain.GeoPoint
	for _, e := range c.index.GetClusters(view.Window.Bound(), view.Zoom) {
		if e.Point != nil {
			points = append(points, *e.Point)
		}
	}
	return points
}

func viewPtr(v viewport.View) *viewport.View {
	return &v
}
