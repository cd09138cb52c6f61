package cluster

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/geojson"

	"github.com/asset-map-service/internal/domain"
)

// Frame рендерит элементы кадра в GeoJSON FeatureCollection.
// Свойства кластеров совпадают с привычными для клиентских карт: cluster, cluster_id,
// point_count, point_count_abbreviated.
func Frame(entries []Entry) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, e := range entries {
		switch {
		case e.Cluster != nil:
			f := geojson.NewFeature(e.Cluster.Centroid)
			f.ID = e.Cluster.ID
			f.Properties["cluster"] = true
			f.Properties["cluster_id"] = e.Cluster.ID
			f.Properties["point_count"] = e.Cluster.Count
			f.Properties["point_count_abbreviated"] = Abbreviate(e.Cluster.Count)
			fc.Append(f)
		case e.Point != nil:
			fc.Append(PointFeature(*e.Point))
		}
	}

	return fc
}

// PointFeature рендерит отдельную точку с атрибутами
func PointFeature(p domain.GeoPoint) *geojson.Feature {
	f := geojson.NewFeature(p.Position)
	f.ID = p.ID
	f.Properties["cluster"] = false
	f.Properties["tag"] = p.Attributes.Tag
	f.Properties["company"] = p.Attributes.Company
	f.Properties["substation"] = p.Attributes.Substation
	f.Properties["status"] = p.Attributes.Status
	if p.Attributes.Brand != "" {
		f.Properties["brand"] = p.Attributes.Brand
	}
	return f
}

// PointsFrame рендерит точки без кластеризации
func PointsFrame(points []domain.GeoPoint) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range points {
		fc.Append(PointFeature(p))
	}
	return fc
}

// Abbreviate сокращает число точек для подписи кластера: 1234 -> 1.2k, 12345 -> 12k
func Abbreviate(count int) string {
	switch {
	case count >= 10000:
		return fmt.Sprintf("%dk", int(math.Round(float64(count)/1000)))
	case count >= 1000:
		return fmt.Sprintf("%gk", math.Round(float64(count)/100)/10)
	default:
		return fmt.Sprintf("%d", count)
	}
}
