package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/asset-map-service/internal/pkg/utils"
)

// GeoPoint — актив с известным местоположением. Неизменяем после создания.
type GeoPoint struct {
	ID         string     `json:"id"`
	Position   orb.Point  `json:"position"`
	Attributes Attributes `json:"attributes"`
}

// Lat возвращает широту
func (p GeoPoint) Lat() float64 { return p.Position.Lat() }

// Lon возвращает долготу
func (p GeoPoint) Lon() float64 { return p.Position.Lon() }

// Attributes — закрытый набор отображаемых полей актива
type Attributes struct {
	Tag        string `json:"tag"`
	Company    string `json:"company"`
	Substation string `json:"substation"`
	Status     string `json:"status"`
	Brand      string `json:"brand,omitempty"`
}

// Field — пара для отображения в попапе или боковой панели
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Fields возвращает поля в фиксированном порядке отображения
func (a Attributes) Fields() []Field {
	return []Field{
		{Key: "tag", Label: "TAG", Value: a.Tag},
		{Key: "company", Label: "Empresa", Value: a.Company},
		{Key: "substation", Label: "Subestación", Value: a.Substation},
		{Key: "status", Label: "Estado", Value: a.Status},
		{Key: "brand", Label: "Marca", Value: a.Brand},
	}
}

// ToGeoPoints преобразует записи активов в точки.
// Записи без координат, с нечисловыми или вне допустимого диапазона координатами,
// а также без тега отбрасываются молча: "местоположение неизвестно" — нормальное состояние актива.
func ToGeoPoints(assets []AssetRecord) []GeoPoint {
	points := make([]GeoPoint, 0, len(assets))

	for _, a := range assets {
		tag, ok := CoerceTag(a.Tag)
		if !ok {
			continue
		}
		lat, ok := CoerceCoordinate(a.Latitude)
		if !ok {
			continue
		}
		lon, ok := CoerceCoordinate(a.Longitude)
		if !ok {
			continue
		}
		if !utils.ValidateCoordinates(lat, lon) {
			continue
		}

		points = append(points, GeoPoint{
			ID:       tag,
			Position: orb.Point{lon, lat},
			Attributes: Attributes{
				Tag:        tag,
				Company:    a.Company,
				Substation: a.Substation,
				Status:     a.Status,
				Brand:      a.Brand,
			},
		})
	}

	return points
}

// CoerceCoordinate приводит значение координаты к float64.
// Поддерживаются числа, json.Number, числовые строки и указатели на них.
func CoerceCoordinate(v interface{}) (float64, bool) {
	var f float64

	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case *float64:
		if x == nil {
			return 0, false
		}
		f = *x
	case *string:
		if x == nil {
			return 0, false
		}
		return CoerceCoordinate(*x)
	case *json.Number:
		if x == nil {
			return 0, false
		}
		return CoerceCoordinate(*x)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CoerceTag приводит тег к строке; пустой тег считается отсутствующим
func CoerceTag(v interface{}) (string, bool) {
	var s string

	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		s = x
	case *string:
		if x == nil {
			return "", false
		}
		s = *x
	case json.Number:
		s = x.String()
	case int:
		s = strconv.Itoa(x)
	case int64:
		s = strconv.FormatInt(x, 10)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return "", false
		}
		s = strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return "", false
	}

	s = strings.TrimSpace(s)
	return s, s != ""
}
