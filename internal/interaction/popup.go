package interaction

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/pkg/utils"
)

// PopupPayload — данные для попапа со списком активов под кликом
type PopupPayload struct {
	Position orb.Point    `json:"position"`
	Assets   []PopupAsset `json:"assets"`
}

// PopupAsset — строка попапа
type PopupAsset struct {
	Tag            string            `json:"tag"`
	Attributes     domain.Attributes `json:"attributes"`
	Fields         []domain.Field    `json:"fields"`
	Color          string            `json:"color"`
	DistanceMeters float64           `json:"distance_m"`
}

// BuildPopup собирает попап; ближайшие к клику активы идут первыми
func BuildPopup(click orb.Point, points []domain.GeoPoint, palette map[string]string) PopupPayload {
	assets := make([]PopupAsset, 0, len(points))
	for _, p := range points {
		color, ok := palette[p.Attributes.Substation]
		if !ok {
			color = DefaultPointColor
		}
		assets = append(assets, PopupAsset{
			Tag:            p.ID,
			Attributes:     p.Attributes,
			Fields:         p.Attributes.Fields(),
			Color:          color,
			DistanceMeters: utils.HaversineDistanceMeters(click.Lat(), click.Lon(), p.Lat(), p.Lon()),
		})
	}

	sort.SliceStable(assets, func(i, j int) bool {
		if assets[i].DistanceMeters != assets[j].DistanceMeters {
			return assets[i].DistanceMeters < assets[j].DistanceMeters
		}
		return assets[i].Tag < assets[j].Tag
	})

	return PopupPayload{Position: click, Assets: assets}
}
