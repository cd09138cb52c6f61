package cache

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"github.com/asset-map-service/internal/domain"
)

// assetCodec сериализует списки активов в JSON и сжимает zstd.
// Encoder и decoder безопасны для конкурентных EncodeAll/DecodeAll.
type assetCodec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func newAssetCodec() (*assetCodec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &assetCodec{encoder: encoder, decoder: decoder}, nil
}

func (c *assetCodec) encode(assets []domain.AssetRecord) ([]byte, error) {
	raw, err := json.Marshal(assets)
	if err != nil {
		return nil, fmt.Errorf("marshal assets: %w", err)
	}
	return c.encoder.EncodeAll(raw, make([]byte, 0, len(raw)/4)), nil
}

func (c *assetCodec) decode(data []byte) ([]domain.AssetRecord, error) {
	raw, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress assets: %w", err)
	}

	var assets []domain.AssetRecord
	if err := json.Unmarshal(raw, &assets); err != nil {
		return nil, fmt.Errorf("unmarshal assets: %w", err)
	}
	return assets, nil
}
