package usecase

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/interaction"
	"github.com/asset-map-service/internal/usecase/dto"
	"github.com/asset-map-service/internal/viewport"
)

type registration struct {
	event   interaction.EventType
	layer   string
	handler interaction.Handler
}

// mapSession — серверная сторона одной клиентской карты. Реализует MapSurface,
// Navigator и Presenter, превращая вызовы контроллера в очередь команд,
// которая отдаётся клиенту в ответе на его запрос.
type mapSession struct {
	mu sync.Mutex

	id         uuid.UUID
	filter     domain.AssetFilter
	camera     interaction.Camera
	controller *interaction.Controller
	lastSeen   time.Time

	handlers map[interaction.ListenerID]registration
	nextID   interaction.ListenerID
	commands []dto.Command
	removed  bool
}

func newMapSession(filter domain.AssetFilter, camera interaction.Camera, now time.Time) *mapSession {
	return &mapSession{
		id:       uuid.New(),
		filter:   filter,
		camera:   camera,
		lastSeen: now,
		handlers: make(map[interaction.ListenerID]registration),
	}
}

// dispatch вызывает подписчиков события. Подписка без слоя получает все события
// своего типа, подписка на слой только события этого слоя.
func (s *mapSession) dispatch(ev interaction.Event) int {
	// handlers may detach and attach listeners while running
	matched := make([]interaction.ListenerID, 0, len(s.handlers))
	for id, reg := range s.handlers {
		if reg.event != ev.Type {
			continue
		}
		if reg.layer != "" && reg.layer != ev.Layer {
			continue
		}
		matched = append(matched, id)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i] < matched[j] })

	fired := 0
	for _, id := range matched {
		reg, ok := s.handlers[id]
		if !ok {
			continue
		}
		reg.handler(ev)
		fired++
	}
	return fired
}

func (s *mapSession) drain() []dto.Command {
	cmds := s.commands
	s.commands = nil
	if cmds == nil {
		return []dto.Command{}
	}
	return cmds
}

func (s *mapSession) push(kind string, payload interface{}) {
	s.commands = append(s.commands, dto.Command{Type: kind, Payload: payload})
}

// MapSurface

func (s *mapSession) On(event interaction.EventType, layer string, handler interaction.Handler) interaction.ListenerID {
	s.nextID++
	s.handlers[s.nextID] = registration{event: event, layer: layer, handler: handler}
	return s.nextID
}

func (s *mapSession) Off(id interaction.ListenerID) {
	delete(s.handlers, id)
}

func (s *mapSession) AddSource(id string, data *geojson.FeatureCollection) {
	s.push(dto.CommandAddSource, dto.SourcePayload{ID: id, Data: data})
}

func (s *mapSession) SetSourceData(id string, data *geojson.FeatureCollection) {
	s.push(dto.CommandSetSourceData, dto.SourcePayload{ID: id, Data: data})
}

func (s *mapSession) AddLayer(layer interaction.Layer) {
	s.push(dto.CommandAddLayer, layer)
}

func (s *mapSession) FlyTo(center orb.Point, zoom float64) {
	s.push(dto.CommandFlyTo, dto.FlyToPayload{Center: [2]float64{center.Lon(), center.Lat()}, Zoom: zoom})
}

func (s *mapSession) PanBy(dx, dy float64, duration time.Duration) {
	s.push(dto.CommandPanBy, dto.PanByPayload{DX: dx, DY: dy, DurationMs: duration.Milliseconds()})
}

func (s *mapSession) SetCursor(cursor string) {
	s.push(dto.CommandSetCursor, dto.CursorPayload{Cursor: cursor})
}

func (s *mapSession) Camera() interaction.Camera {
	return s.camera
}

func (s *mapSession) Remove() {
	s.removed = true
	s.handlers = make(map[interaction.ListenerID]registration)
	s.push(dto.CommandRemove, nil)
}

// Navigator

func (s *mapSession) NavigateToAsset(tag string) {
	s.push(dto.CommandNavigate, dto.NavigatePayload{Tag: tag, Path: "/asset/" + tag})
}

// Presenter

func (s *mapSession) ShowPopup(payload interaction.PopupPayload) {
	s.push(dto.CommandShowPopup, payload)
}

func (s *mapSession) ShowVisible(set viewport.VisibleSet) {
	s.push(dto.CommandVisibleSet, set)
}

func (s *mapSession) ShowMapUnavailable(reason string) {
	s.push(dto.CommandMapUnavailable, dto.MapUnavailablePayload{Reason: reason})
}
