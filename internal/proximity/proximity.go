package proximity

import (
	"github.com/paulmach/orb"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/pkg/utils"
)

// DefaultThresholdMeters — порог по умолчанию для разрешения клика
const DefaultThresholdMeters = 200.0

// ResolveClickTargets отбирает кандидатов, реально находящихся не дальше thresholdMeters
// от географической точки клика. Пиксельная близость при малом зуме не означает
// близости на местности. Порядок результата не гарантируется.
func ResolveClickTargets(click orb.Point, candidates []domain.GeoPoint, thresholdMeters float64) []domain.GeoPoint {
	result := make([]domain.GeoPoint, 0, len(candidates))
	for _, c := range candidates {
		d := utils.HaversineDistanceMeters(click.Lat(), click.Lon(), c.Lat(), c.Lon())
		if d <= thresholdMeters {
			result = append(result, c)
		}
	}
	return result
}
