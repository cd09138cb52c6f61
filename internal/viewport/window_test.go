package viewport

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asset-map-service/internal/domain"
)

func gp(tag string, lat, lon float64) domain.GeoPoint {
	return domain.GeoPoint{ID: tag, Position: orb.Point{lon, lat}, Attributes: domain.Attributes{Tag: tag}}
}

func TestNewViewportWindow(t *testing.T) {
	tests := []struct {
		name                     string
		west, south, east, north float64
		wantErr                  bool
	}{
		{"valid", -72, -38, -70, -33, false},
		{"degenerate point window", 1, 1, 1, 1, false},
		{"west greater than east", -70, -38, -72, -33, true},
		{"south greater than north", -72, -33, -70, -38, true},
		{"NaN", math.NaN(), 0, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewViewportWindow(tt.west, tt.south, tt.east, tt.north)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBounds)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComputeVisible_InclusiveEdges(t *testing.T) {
	w, err := NewViewportWindow(-72, -38, -70, -33)
	require.NoError(t, err)

	points := []domain.GeoPoint{
		gp("WEST", -35, -72),
		gp("EAST", -35, -70),
		gp("SOUTH", -38, -71),
		gp("NORTH", -33, -71),
		gp("CORNER", -38, -72),
		gp("INSIDE", -35, -71),
		gp("OUTSIDE", -32.9999, -71),
	}

	visible := ComputeVisible(points, w)
	tags := make([]string, 0, len(visible))
	for _, p := range visible {
		tags = append(tags, p.ID)
	}
	assert.ElementsMatch(t, []string{"WEST", "EAST", "SOUTH", "NORTH", "CORNER", "INSIDE"}, tags)
}

func TestComputeVisible_Empty(t *testing.T) {
	w, err := NewViewportWindow(0, 0, 1, 1)
	require.NoError(t, err)

	visible := ComputeVisible([]domain.GeoPoint{gp("A", 50, 50)}, w)
	assert.NotNil(t, visible)
	assert.Empty(t, visible)
}
