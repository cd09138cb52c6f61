package utils

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceMeters(t *testing.T) {
	t.Run("identical points give zero", func(t *testing.T) {
		points := [][2]float64{{0, 0}, {-37.7, -71.5}, {90, 0}, {-90, 180}, {12.3456, -179.999}}
		for _, p := range points {
			assert.Equal(t, 0.0, HaversineDistanceMeters(p[0], p[1], p[0], p[1]))
		}
	})

	t.Run("symmetric for random pairs", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		for i := 0; i < 1000; i++ {
			lat1, lon1 := r.Float64()*180-90, r.Float64()*360-180
			lat2, lon2 := r.Float64()*180-90, r.Float64()*360-180
			assert.Equal(t,
				HaversineDistanceMeters(lat1, lon1, lat2, lon2),
				HaversineDistanceMeters(lat2, lon2, lat1, lon1),
			)
		}
	})

	t.Run("known distances", func(t *testing.T) {
		// one degree of latitude along a meridian
		assert.InDelta(t, 111195, HaversineDistanceMeters(0, 0, 1, 0), 1)
		// across the antimeridian
		assert.InDelta(t, 22239, HaversineDistanceMeters(0, 179.9, 0, -179.9), 1)
		// pole to pole
		assert.InDelta(t, 20015087, HaversineDistanceMeters(90, 0, -90, 0), 1)
		// two nearby assets
		d := HaversineDistanceMeters(-37.7, -71.5, -37.7001, -71.5001)
		assert.InDelta(t, 14, d, 1)
	})
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		valid    bool
	}{
		{"origin", 0, 0, true},
		{"corners", 90, 180, true},
		{"negative corners", -90, -180, true},
		{"lat too big", 90.0001, 0, false},
		{"lon too small", 0, -180.0001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCoordinates(tt.lat, tt.lon))
		})
	}
}
