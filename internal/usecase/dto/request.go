package dto

import "github.com/asset-map-service/internal/domain"

// BoundsRequest - прямоугольник видимой области
type BoundsRequest struct {
	West  float64 `json:"west" query:"west" validate:"min=-180,max=180"`
	South float64 `json:"south" query:"south" validate:"min=-90,max=90"`
	East  float64 `json:"east" query:"east" validate:"min=-180,max=180"`
	North float64 `json:"north" query:"north" validate:"min=-90,max=90"`
}

// FilterRequest - атрибутный фильтр активов из query-параметров
type FilterRequest struct {
	Status     []string `json:"status,omitempty" query:"status"`
	Substation []string `json:"substation,omitempty" query:"substation"`
	Company    []string `json:"company,omitempty" query:"company"`
	Limit      int      `json:"limit,omitempty" query:"limit" validate:"omitempty,min=1,max=50000"`
}

// ToDomain конвертирует в доменный фильтр
func (f FilterRequest) ToDomain() domain.AssetFilter {
	return domain.AssetFilter{
		Statuses:    f.Status,
		Substations: f.Substation,
		Companies:   f.Company,
		Limit:       f.Limit,
	}
}

// GroupsRequest - запрос на группировку активов
type GroupsRequest struct {
	FilterRequest
	Mode           string  `query:"mode" validate:"omitempty,oneof=substation distance"`
	DistanceMeters float64 `query:"distance_m" validate:"omitempty,min=1,max=100000"`
}

// ClustersRequest - запрос кадра кластеров для видимой области
type ClustersRequest struct {
	BoundsRequest
	FilterRequest
	Zoom float64 `query:"zoom" validate:"min=0,max=24"`
}

// ClusterRequest - запрос по идентификатору кластера
type ClusterRequest struct {
	FilterRequest
	ClusterID string `params:"id" validate:"required"`
}

// ClusterLeavesRequest - запрос листьев кластера с пагинацией
type ClusterLeavesRequest struct {
	ClusterRequest
	Limit  int `query:"leaves_limit" validate:"omitempty,min=1,max=10000"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// ViewportRequest - запрос видимого набора
type ViewportRequest struct {
	BoundsRequest
	FilterRequest
	Zoom float64 `query:"zoom" validate:"omitempty,min=0,max=24"`
}

// ProximityRequest - разрешение клика: какие активы находятся рядом с точкой клика
type ProximityRequest struct {
	Lat        float64       `json:"lat" validate:"min=-90,max=90"`
	Lon        float64       `json:"lon" validate:"min=-180,max=180"`
	ThresholdM float64       `json:"threshold_m" validate:"omitempty,min=1,max=50000"`
	Zoom       float64       `json:"zoom" validate:"omitempty,min=0,max=24"`
	Tags       []string      `json:"tags,omitempty" validate:"omitempty,max=1000"`
	Filter     FilterRequest `json:"filter"`
}

// CameraRequest - состояние камеры, которое сообщает клиентская карта
type CameraRequest struct {
	BoundsRequest
	Zoom     float64 `json:"zoom" validate:"min=0,max=24"`
	HeightPx float64 `json:"height_px" validate:"omitempty,min=0,max=100000"`
}

// CreateSessionRequest - создание сессии карты
type CreateSessionRequest struct {
	Filter FilterRequest  `json:"filter"`
	Camera *CameraRequest `json:"camera,omitempty"`
}

// HitFeatureRequest - объект под курсором по данным hit-test клиентской карты
type HitFeatureRequest struct {
	ClusterID string `json:"cluster_id,omitempty"`
	Tag       string `json:"tag,omitempty"`
}

// SessionEventRequest - событие клиентской карты
type SessionEventRequest struct {
	Type     string              `json:"type" validate:"required,oneof=load idle moveend zoomend click mouseenter mouseleave error view_details"`
	Layer    string              `json:"layer,omitempty"`
	Lat      float64             `json:"lat" validate:"min=-90,max=90"`
	Lon      float64             `json:"lon" validate:"min=-180,max=180"`
	Features []HitFeatureRequest `json:"features,omitempty" validate:"omitempty,max=1000"`
	Message  string              `json:"message,omitempty"`
	Tag      string              `json:"tag,omitempty"`
	Camera   *CameraRequest      `json:"camera,omitempty"`
}

// UpdateFilterRequest - смена фильтра активов в сессии
type UpdateFilterRequest struct {
	Filter FilterRequest `json:"filter"`
}
