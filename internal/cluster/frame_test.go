package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asset-map-service/internal/domain"
)

func TestFrame(t *testing.T) {
	points := []domain.GeoPoint{
		point("A", -37.700000, -71.500000),
		point("B", -37.700100, -71.500100),
		point("C", -33.45, -70.66),
	}
	idx, err := BuildIndex(points, DefaultOptions())
	require.NoError(t, err)

	fc := Frame(idx.GetClusters(world, 5))
	require.Len(t, fc.Features, 2)

	var clusters, singles int
	for _, f := range fc.Features {
		if f.Properties["cluster"] == true {
			clusters++
			assert.Equal(t, 2, f.Properties["point_count"])
			assert.Equal(t, "2", f.Properties["point_count_abbreviated"])
			assert.NotEmpty(t, f.Properties["cluster_id"])
		} else {
			singles++
			assert.Equal(t, "C", f.Properties["tag"])
		}
	}
	assert.Equal(t, 1, clusters)
	assert.Equal(t, 1, singles)

	data, err := fc.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)
}

func TestAbbreviate(t *testing.T) {
	tests := map[int]string{
		7:     "7",
		999:   "999",
		1000:  "1k",
		1234:  "1.2k",
		9960:  "10k",
		12345: "12k",
	}
	for in, want := range tests {
		assert.Equal(t, want, Abbreviate(in), "count %d", in)
	}
}
