package interaction

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/asset-map-service/internal/viewport"
)

// EventType — событие, приходящее от библиотеки отрисовки карты
type EventType string

const (
	EventLoad       EventType = "load"
	EventIdle       EventType = "idle"
	EventMoveEnd    EventType = "moveend"
	EventZoomEnd    EventType = "zoomend"
	EventClick      EventType = "click"
	EventMouseEnter EventType = "mouseenter"
	EventMouseLeave EventType = "mouseleave"
	EventError      EventType = "error"
)

// HitFeature — отрисованный объект под курсором по данным hit-test карты
type HitFeature struct {
	ClusterID string `json:"cluster_id,omitempty"`
	Tag       string `json:"tag,omitempty"`
}

// Event — событие карты
type Event struct {
	Type     EventType
	Layer    string
	LngLat   orb.Point
	Features []HitFeature
	Message  string
}

// Camera — текущее состояние камеры, которым владеет карта.
// Known ложно, пока клиент ни разу не сообщил камеру: окно тогда не несёт границ.
type Camera struct {
	Window   viewport.Window `json:"window"`
	Zoom     float64         `json:"zoom"`
	HeightPx float64         `json:"height_px"`
	Known    bool            `json:"-"`
}

// View возвращает снимок камеры для трекера видимости
func (c Camera) View() viewport.View {
	return viewport.View{Window: c.Window, Zoom: c.Zoom}
}

// Handler — обработчик события карты
type Handler func(Event)

// ListenerID — идентификатор подписки на поверхности карты
type ListenerID uint64

// MapSurface — единственный владелец экземпляра карты. Контроллер только читает камеру
// и отдаёт декларативные команды, состояние вида напрямую не меняет.
type MapSurface interface {
	On(event EventType, layer string, handler Handler) ListenerID
	Off(id ListenerID)
	AddSource(id string, data *geojson.FeatureCollection)
	SetSourceData(id string, data *geojson.FeatureCollection)
	AddLayer(layer Layer)
	FlyTo(center orb.Point, zoom float64)
	PanBy(dx, dy float64, duration time.Duration)
	SetCursor(cursor string)
	Camera() Camera
	Remove()
}

// Navigator — внешний роутер; контроллер только выражает намерение перехода
type Navigator interface {
	NavigateToAsset(tag string)
}

// Presenter — внешний слой отображения попапов и боковой панели
type Presenter interface {
	ShowPopup(payload PopupPayload)
	ShowVisible(set viewport.VisibleSet)
	ShowMapUnavailable(reason string)
}
