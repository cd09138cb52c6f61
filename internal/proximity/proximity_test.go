package proximity

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/pkg/utils"
)

func gp(tag string, lat, lon float64) domain.GeoPoint {
	return domain.GeoPoint{ID: tag, Position: orb.Point{lon, lat}, Attributes: domain.Attributes{Tag: tag}}
}

func tags(points []domain.GeoPoint) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.ID)
	}
	return out
}

func TestResolveClickTargets_Threshold(t *testing.T) {
	// ~150 m north of A
	a := gp("A", -33.000000, -70.000000)
	b := gp("B", -32.998651, -70.000000)

	d := utils.HaversineDistanceMeters(a.Lat(), a.Lon(), b.Lat(), b.Lon())
	require.InDelta(t, 150, d, 1)

	candidates := []domain.GeoPoint{a, b}

	got := ResolveClickTargets(a.Position, candidates, 200)
	assert.ElementsMatch(t, []string{"A", "B"}, tags(got))

	got = ResolveClickTargets(a.Position, candidates, 100)
	assert.Equal(t, []string{"A"}, tags(got))
}

func TestResolveClickTargets_NearCoincidentAssets(t *testing.T) {
	a := gp("A", -37.700000, -71.500000)
	b := gp("B", -37.700100, -71.500100)
	click := orb.Point{-71.500050, -37.700050}

	got := ResolveClickTargets(click, []domain.GeoPoint{a, b}, DefaultThresholdMeters)
	assert.ElementsMatch(t, []string{"A", "B"}, tags(got))
}

func TestResolveClickTargets_DropsDistantCandidates(t *testing.T) {
	near := gp("NEAR", -33.45, -70.66)
	far := gp("FAR", -33.60, -70.66)

	got := ResolveClickTargets(near.Position, []domain.GeoPoint{near, far}, DefaultThresholdMeters)
	assert.Equal(t, []string{"NEAR"}, tags(got))
}

func TestResolveClickTargets_Empty(t *testing.T) {
	got := ResolveClickTargets(orb.Point{0, 0}, nil, 200)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = ResolveClickTargets(orb.Point{0, 0}, []domain.GeoPoint{gp("X", 10, 10)}, 200)
	assert.Empty(t, got)
}
