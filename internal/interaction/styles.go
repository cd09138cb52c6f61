package interaction

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/asset-map-service/internal/domain"
)

// Source and layer ids
const (
	SourceAssets       = "assets"
	LayerClusters      = "clusters"
	LayerClusterCount  = "cluster-count"
	LayerUnclustered   = "unclustered-point"
	DefaultPointColor  = "#e53935"
	defaultStrokeColor = "#fff"
)

// Layer — декларативное описание слоя карты
type Layer struct {
	ID     string                 `json:"id"`
	Type   string                 `json:"type"`
	Source string                 `json:"source"`
	Filter []interface{}          `json:"filter,omitempty"`
	Layout map[string]interface{} `json:"layout,omitempty"`
	Paint  map[string]interface{} `json:"paint,omitempty"`
}

// AssetLayers возвращает слои кластеров, подписей и отдельных точек
func AssetLayers() []Layer {
	hasCount := []interface{}{"has", "point_count"}

	return []Layer{
		{
			ID:     LayerClusters,
			Type:   "circle",
			Source: SourceAssets,
			Filter: hasCount,
			Paint: map[string]interface{}{
				"circle-color": []interface{}{
					"step", []interface{}{"get", "point_count"},
					"#d32f2f", 50, "#ba4747", 100, "#752d2d",
				},
				"circle-radius": []interface{}{
					"step", []interface{}{"get", "point_count"},
					20, 10, 30, 50, 40,
				},
			},
		},
		{
			ID:     LayerClusterCount,
			Type:   "symbol",
			Source: SourceAssets,
			Filter: hasCount,
			Layout: map[string]interface{}{
				"text-field": "{point_count_abbreviated}",
				"text-font":  []string{"DIN Offc Pro Medium", "Arial Unicode MS Bold"},
				"text-size":  12,
			},
			Paint: map[string]interface{}{"text-color": defaultStrokeColor},
		},
		{
			ID:     LayerUnclustered,
			Type:   "circle",
			Source: SourceAssets,
			Filter: []interface{}{"!", hasCount},
			Paint: map[string]interface{}{
				"circle-color":        []interface{}{"coalesce", []interface{}{"get", "color"}, DefaultPointColor},
				"circle-radius":       8,
				"circle-stroke-width": 1,
				"circle-stroke-color": defaultStrokeColor,
			},
		},
	}
}

// SubstationPalette раздаёт подстанциям различимые цвета по кругу оттенков HCL.
// Цвета зависят только от набора подстанций, не от порядка точек.
func SubstationPalette(points []domain.GeoPoint) map[string]string {
	seen := make(map[string]struct{})
	for _, p := range points {
		if p.Attributes.Substation != "" {
			seen[p.Attributes.Substation] = struct{}{}
		}
	}

	subs := make([]string, 0, len(seen))
	for s := range seen {
		subs = append(subs, s)
	}
	sort.Strings(subs)

	palette := make(map[string]string, len(subs))
	n := float64(len(subs))
	for i, s := range subs {
		palette[s] = colorful.Hcl(360*float64(i)/n, 0.5, 0.65).Clamped().Hex()
	}
	return palette
}
