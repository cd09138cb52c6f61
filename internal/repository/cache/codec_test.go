package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asset-map-service/internal/domain"
)

func TestAssetCodec_CompressesAndRestores(t *testing.T) {
	codec, err := newAssetCodec()
	require.NoError(t, err)

	assets := make([]domain.AssetRecord, 0, 500)
	for i := 0; i < 500; i++ {
		assets = append(assets, domain.AssetRecord{
			Tag:        fmt.Sprintf("TR-%04d", i),
			Latitude:   "-37.7",
			Longitude:  -71.5,
			Company:    "CGE",
			Substation: "Charrua",
			Status:     "OK",
		})
	}

	data, err := codec.encode(assets)
	require.NoError(t, err)

	decoded, err := codec.decode(data)
	require.NoError(t, err)
	require.Len(t, decoded, len(assets))

	// coordinates survive in a form the geo point model accepts
	points := domain.ToGeoPoints(decoded)
	assert.Len(t, points, len(assets))
	assert.Equal(t, "TR-0042", decoded[42].Tag)
}

func TestAssetCodec_RejectsGarbage(t *testing.T) {
	codec, err := newAssetCodec()
	require.NoError(t, err)

	_, err = codec.decode([]byte("not zstd"))
	assert.Error(t, err)
}
