package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/asset-map-service/internal/domain"
)

// ErrInvalidBounds — границы окна не удовлетворяют west <= east, south <= north
var ErrInvalidBounds = errors.New("invalid viewport bounds")

// Window — прямоугольник видимой области карты в градусах.
// Переход через антимеридиан не поддерживается.
type Window struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// NewViewportWindow создаёт окно и проверяет его инварианты
func NewViewportWindow(west, south, east, north float64) (Window, error) {
	for _, v := range []float64{west, south, east, north} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Window{}, fmt.Errorf("%w: non-finite value", ErrInvalidBounds)
		}
	}
	if west > east {
		return Window{}, fmt.Errorf("%w: west %v > east %v", ErrInvalidBounds, west, east)
	}
	if south > north {
		return Window{}, fmt.Errorf("%w: south %v > north %v", ErrInvalidBounds, south, north)
	}
	return Window{West: west, South: south, East: east, North: north}, nil
}

// Bound возвращает окно как orb.Bound
func (w Window) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{w.West, w.South},
		Max: orb.Point{w.East, w.North},
	}
}

// Contains проверяет попадание точки в окно, включая границы
func (w Window) Contains(p orb.Point) bool {
	return w.Bound().Contains(p)
}

// VisibleSet — точки, попавшие в окно
type VisibleSet struct {
	Window Window            `json:"window"`
	Points []domain.GeoPoint `json:"points"`
	Empty  bool              `json:"empty"`
}

// ComputeVisible возвращает точки, лежащие в окне (границы включительно)
func ComputeVisible(points []domain.GeoPoint, w Window) []domain.GeoPoint {
	visible := make([]domain.GeoPoint, 0)
	for _, p := range points {
		if w.Contains(p.Position) {
			visible = append(visible, p)
		}
	}
	return visible
}
