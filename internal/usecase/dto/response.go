package dto

import (
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/asset-map-service/internal/interaction"
)

// ExpansionZoomResponse - зум раскрытия кластера и целевой зум перелёта
type ExpansionZoomResponse struct {
	ClusterID     string     `json:"cluster_id"`
	ExpansionZoom int        `json:"expansion_zoom"`
	TargetZoom    float64    `json:"target_zoom"`
	Center        [2]float64 `json:"center"`
}

// LeavesResponse - исходные точки кластера
type LeavesResponse struct {
	ClusterID string                     `json:"cluster_id"`
	Total     int                        `json:"total"`
	Limit     int                        `json:"limit"`
	Offset    int                        `json:"offset"`
	Leaves    *geojson.FeatureCollection `json:"leaves"`
}

// VisibleResponse - активы внутри видимой области
type VisibleResponse struct {
	Window VisibleWindow              `json:"window"`
	Total  int                        `json:"total"`
	Empty  bool                       `json:"empty"`
	Assets *geojson.FeatureCollection `json:"assets"`
}

// VisibleWindow - границы, по которым считался видимый набор
type VisibleWindow struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// ProximityResponse - активы в пороге от точки клика, ближайшие первыми
type ProximityResponse struct {
	ThresholdM float64                  `json:"threshold_m"`
	Total      int                      `json:"total"`
	Popup      interaction.PopupPayload `json:"popup"`
}

// Command - декларативная команда для клиентской карты или слоя отображения
type Command struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Типы команд
const (
	CommandAddSource      = "add_source"
	CommandSetSourceData  = "set_source_data"
	CommandAddLayer       = "add_layer"
	CommandFlyTo          = "fly_to"
	CommandPanBy          = "pan_by"
	CommandSetCursor      = "set_cursor"
	CommandShowPopup      = "show_popup"
	CommandVisibleSet     = "visible_set"
	CommandNavigate       = "navigate"
	CommandMapUnavailable = "map_unavailable"
	CommandRemove         = "remove"
)

// SourcePayload - данные источника карты
type SourcePayload struct {
	ID   string                     `json:"id"`
	Data *geojson.FeatureCollection `json:"data"`
}

// FlyToPayload - перелёт камеры
type FlyToPayload struct {
	Center [2]float64 `json:"center"`
	Zoom   float64    `json:"zoom"`
}

// PanByPayload - сдвиг камеры в пикселях
type PanByPayload struct {
	DX         float64 `json:"dx"`
	DY         float64 `json:"dy"`
	DurationMs int64   `json:"duration_ms"`
}

// CursorPayload - курсор над картой; пустая строка возвращает курсор по умолчанию
type CursorPayload struct {
	Cursor string `json:"cursor"`
}

// NavigatePayload - переход на карточку актива
type NavigatePayload struct {
	Tag  string `json:"tag"`
	Path string `json:"path"`
}

// MapUnavailablePayload - карта недоступна
type MapUnavailablePayload struct {
	Reason string `json:"reason"`
}

// SessionResponse - состояние сессии карты и накопленные команды
type SessionResponse struct {
	ID             string    `json:"id"`
	State          string    `json:"state"`
	Points         int       `json:"points"`
	Fingerprint    string    `json:"fingerprint,omitempty"`
	ListenerGroups int       `json:"listener_groups"`
	LastSeen       time.Time `json:"last_seen"`
	Commands       []Command `json:"commands"`
}
