package cluster

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/asset-map-service/internal/domain"
)

var world = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

func randomPoints(seed int64, n int, bound orb.Bound) []domain.GeoPoint {
	r := rand.New(rand.NewSource(seed))
	points := make([]domain.GeoPoint, n)
	for i := range points {
		lon := bound.Min.Lon() + r.Float64()*(bound.Max.Lon()-bound.Min.Lon())
		lat := bound.Min.Lat() + r.Float64()*(bound.Max.Lat()-bound.Min.Lat())
		tag := fmt.Sprintf("TAG-%04d", i)
		points[i] = domain.GeoPoint{
			ID:       tag,
			Position: orb.Point{lon, lat},
			Attributes: domain.Attributes{
				Tag:        tag,
				Substation: fmt.Sprintf("SE-%d", i%7),
				Status:     "OK",
			},
		}
	}
	return points
}

func point(tag string, lat, lon float64) domain.GeoPoint {
	return domain.GeoPoint{
		ID:         tag,
		Position:   orb.Point{lon, lat},
		Attributes: domain.Attributes{Tag: tag},
	}
}

func totalCount(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Count()
	}
	return total
}
