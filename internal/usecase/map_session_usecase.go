package usecase

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/interaction"
	"github.com/asset-map-service/internal/metrics"
	"github.com/asset-map-service/internal/pkg/errors"
	"github.com/asset-map-service/internal/usecase/dto"
	"github.com/asset-map-service/internal/viewport"
)

// EventViewDetails — запрос перехода на карточку актива из попапа
const EventViewDetails = "view_details"

// MapSessionUseCase ведёт серверные сессии карт. Каждая сессия владеет своим
// контроллером; события одной сессии сериализуются её мьютексом.
type MapSessionUseCase struct {
	assets AssetProvider
	opts   interaction.Options
	logger *zap.Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*mapSession
	disposed map[uuid.UUID]time.Time
}

func NewMapSessionUseCase(
	assets AssetProvider,
	opts interaction.Options,
	logger *zap.Logger,
) *MapSessionUseCase {
	return &MapSessionUseCase{
		assets:   assets,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*mapSession),
		disposed: make(map[uuid.UUID]time.Time),
	}
}

// Create загружает активы фильтра и монтирует новую карту. Кластеризация
// начнётся после события load от клиента.
func (uc *MapSessionUseCase) Create(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	camera, err := cameraFromRequest(req.Camera, interaction.Camera{})
	if err != nil {
		return nil, err
	}

	filter := req.Filter.ToDomain()
	points, err := uc.assets.ListPoints(ctx, filter)
	if err != nil {
		return nil, err
	}

	s := newMapSession(filter, camera, uc.now())
	controller, err := interaction.NewController(s, s, s, uc.opts, uc.logger.With(zap.String("session_id", s.id.String())))
	if err != nil {
		uc.logger.Error("Failed to create map controller", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	s.controller = controller

	if err := controller.Mount(points); err != nil {
		uc.logger.Error("Failed to mount map", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.mu.Lock()
	uc.sessions[s.id] = s
	uc.mu.Unlock()
	metrics.ActiveSessions.Inc()

	uc.logger.Info("Map session created",
		zap.String("session_id", s.id.String()),
		zap.Int("points", len(points)))

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response(), nil
}

// Get возвращает состояние сессии и накопленные команды
func (uc *MapSessionUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error) {
	s, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = uc.now()
	return s.response(), nil
}

// HandleEvent передаёт событие клиентской карты контроллеру сессии
func (uc *MapSessionUseCase) HandleEvent(ctx context.Context, id uuid.UUID, req dto.SessionEventRequest) (*dto.SessionResponse, error) {
	s, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.controller.State() == interaction.StateDisposed {
		return nil, errors.ErrSessionDisposed
	}

	camera, err := cameraFromRequest(req.Camera, s.camera)
	if err != nil {
		return nil, err
	}
	s.camera = camera
	s.lastSeen = uc.now()
	metrics.SessionEventsTotal.WithLabelValues(req.Type).Inc()

	if req.Type == EventViewDetails {
		if err := s.controller.ViewDetails(req.Tag); err != nil {
			return nil, mapControllerError(err, req.Tag)
		}
		return s.response(), nil
	}

	ev := interaction.Event{
		Type:    interaction.EventType(req.Type),
		Layer:   req.Layer,
		LngLat:  orb.Point{req.Lon, req.Lat},
		Message: req.Message,
	}
	for _, f := range req.Features {
		ev.Features = append(ev.Features, interaction.HitFeature{ClusterID: f.ClusterID, Tag: f.Tag})
	}

	fired := s.dispatch(ev)
	uc.logger.Debug("Map event handled",
		zap.String("session_id", s.id.String()),
		zap.String("type", req.Type),
		zap.String("layer", req.Layer),
		zap.Int("handlers", fired))

	return s.response(), nil
}

// SetFilter перезагружает активы сессии по новому фильтру и перестраивает индекс
func (uc *MapSessionUseCase) SetFilter(ctx context.Context, id uuid.UUID, req dto.UpdateFilterRequest) (*dto.SessionResponse, error) {
	s, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}

	filter := req.Filter.ToDomain()
	points, err := uc.assets.ListPoints(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = uc.now()
	if err := s.controller.SetPoints(points); err != nil {
		return nil, mapControllerError(err, "")
	}
	s.filter = filter

	return s.response(), nil
}

// Delete освобождает карту сессии
func (uc *MapSessionUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	uc.mu.Lock()
	s, ok := uc.sessions[id]
	if ok {
		delete(uc.sessions, id)
		uc.disposed[id] = uc.now()
	}
	_, wasDisposed := uc.disposed[id]
	uc.mu.Unlock()

	if !ok {
		if wasDisposed {
			return errors.ErrSessionDisposed
		}
		return errors.ErrSessionNotFound
	}

	s.mu.Lock()
	s.controller.Dispose()
	s.mu.Unlock()
	metrics.ActiveSessions.Dec()

	uc.logger.Info("Map session disposed", zap.String("session_id", id.String()))
	return nil
}

// RefreshAll перезагружает активы всех сессий (набор активов изменился).
// Сессии с одинаковым фильтром получают один и тот же набор точек.
// Команды перерисовки отдаются клиентам при следующем запросе.
func (uc *MapSessionUseCase) RefreshAll(ctx context.Context) (int, error) {
	sessions := uc.snapshot()
	byFilter := make(map[string][]domain.GeoPoint)

	refreshed := 0
	var firstErr error
	for _, s := range sessions {
		s.mu.Lock()
		filter := s.filter
		s.mu.Unlock()

		key := FilterKey(filter)
		points, ok := byFilter[key]
		if !ok {
			var err error
			points, err = uc.assets.ListPoints(ctx, filter)
			if err != nil {
				uc.logger.Error("Failed to reload session assets",
					zap.String("session_id", s.id.String()),
					zap.Error(err))
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			byFilter[key] = points
		}

		s.mu.Lock()
		err := s.controller.SetPoints(points)
		s.mu.Unlock()
		if err != nil {
			if !stderrors.Is(err, interaction.ErrDisposed) {
				uc.logger.Error("Failed to refresh session",
					zap.String("session_id", s.id.String()),
					zap.Error(err))
			}
			continue
		}
		refreshed++
	}

	return refreshed, firstErr
}

// ReapIdle освобождает сессии без активности дольше ttl и забывает старые удалённые
func (uc *MapSessionUseCase) ReapIdle(ctx context.Context, ttl time.Duration) int {
	now := uc.now()
	var idle []*mapSession

	uc.mu.Lock()
	for id, s := range uc.sessions {
		s.mu.Lock()
		expired := now.Sub(s.lastSeen) > ttl
		s.mu.Unlock()
		if expired {
			idle = append(idle, s)
			delete(uc.sessions, id)
			uc.disposed[id] = now
		}
	}
	for id, at := range uc.disposed {
		if now.Sub(at) > ttl {
			delete(uc.disposed, id)
		}
	}
	uc.mu.Unlock()

	for _, s := range idle {
		s.mu.Lock()
		s.controller.Dispose()
		s.mu.Unlock()
		metrics.ActiveSessions.Dec()
		uc.logger.Info("Idle map session disposed", zap.String("session_id", s.id.String()))
	}
	return len(idle)
}

// Count возвращает число живых сессий
func (uc *MapSessionUseCase) Count() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.sessions)
}

func (uc *MapSessionUseCase) lookup(id uuid.UUID) (*mapSession, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if s, ok := uc.sessions[id]; ok {
		return s, nil
	}
	if _, ok := uc.disposed[id]; ok {
		return nil, errors.ErrSessionDisposed
	}
	return nil, errors.ErrSessionNotFound
}

func (uc *MapSessionUseCase) snapshot() []*mapSession {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	sessions := make([]*mapSession, 0, len(uc.sessions))
	for _, s := range uc.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

// response собирает ответ; вызывается под мьютексом сессии
func (s *mapSession) response() *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:             s.id.String(),
		State:          string(s.controller.State()),
		Points:         len(s.controller.Points()),
		ListenerGroups: s.controller.ActiveListenerGroups(),
		LastSeen:       s.lastSeen,
		Commands:       s.drain(),
	}
	if idx := s.controller.Index(); idx != nil {
		resp.Fingerprint = idx.Fingerprint()
	}
	return resp
}

func cameraFromRequest(req *dto.CameraRequest, current interaction.Camera) (interaction.Camera, error) {
	if req == nil {
		return current, nil
	}
	window, err := viewport.NewViewportWindow(req.West, req.South, req.East, req.North)
	if err != nil {
		return interaction.Camera{}, errors.ErrInvalidBounds.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	return interaction.Camera{Window: window, Zoom: req.Zoom, HeightPx: req.HeightPx, Known: true}, nil
}

func mapControllerError(err error, tag string) error {
	switch {
	case stderrors.Is(err, interaction.ErrDisposed):
		return errors.ErrSessionDisposed
	case stderrors.Is(err, interaction.ErrUnknownAsset):
		return errors.ErrAssetNotFound.WithDetails(map[string]interface{}{"tag": tag})
	case stderrors.Is(err, interaction.ErrNotReady):
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": "map is not ready"})
	default:
		return errors.ErrInternalServer
	}
}
