package cluster

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/pkg/utils"
)

// GroupingMode — способ логической группировки активов
type GroupingMode string

const (
	GroupBySubstationMode GroupingMode = "substation"
	GroupByDistanceMode   GroupingMode = "distance"
)

// DefaultGroupDistanceMeters — порог объединения при группировке по расстоянию
const DefaultGroupDistanceMeters = 1000.0

const noSubstation = "Sin subestación"

// Group — логическая группа активов с опорной точкой
type Group struct {
	Key      string            `json:"key"`
	Position orb.Point         `json:"position"`
	Points   []domain.GeoPoint `json:"points"`
}

// GroupBySubstation группирует точки по подстанции; опорная точка — центроид группы
func GroupBySubstation(points []domain.GeoPoint) []Group {
	byKey := make(map[string][]domain.GeoPoint)
	for _, p := range sortedByTag(points) {
		key := p.Attributes.Substation
		if key == "" {
			key = noSubstation
		}
		byKey[key] = append(byKey[key], p)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		members := byKey[k]
		var sumLon, sumLat float64
		for _, p := range members {
			sumLon += p.Lon()
			sumLat += p.Lat()
		}
		n := float64(len(members))
		groups = append(groups, Group{
			Key:      k,
			Position: orb.Point{sumLon / n, sumLat / n},
			Points:   members,
		})
	}

	return groups
}

// GroupByDistance жадно группирует точки: первая непокрытая точка забирает
// все оставшиеся в пределах thresholdMeters и становится опорной
func GroupByDistance(points []domain.GeoPoint, thresholdMeters float64) []Group {
	if thresholdMeters <= 0 {
		thresholdMeters = DefaultGroupDistanceMeters
	}

	ungrouped := sortedByTag(points)
	var groups []Group

	for len(ungrouped) > 0 {
		current := ungrouped[0]
		members := []domain.GeoPoint{current}
		remaining := make([]domain.GeoPoint, 0, len(ungrouped)-1)

		for _, p := range ungrouped[1:] {
			d := utils.HaversineDistanceMeters(current.Lat(), current.Lon(), p.Lat(), p.Lon())
			if d <= thresholdMeters {
				members = append(members, p)
			} else {
				remaining = append(remaining, p)
			}
		}

		groups = append(groups, Group{
			Key:      fmt.Sprintf("Cluster (%d)", len(members)),
			Position: current.Position,
			Points:   members,
		})
		ungrouped = remaining
	}

	return groups
}

// GroupsFrame рендерит группы в GeoJSON
func GroupsFrame(groups []Group) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, g := range groups {
		attrs := make([]domain.Attributes, 0, len(g.Points))
		for _, p := range g.Points {
			attrs = append(attrs, p.Attributes)
		}

		f := geojson.NewFeature(g.Position)
		f.Properties["group_key"] = g.Key
		f.Properties["asset_count"] = len(g.Points)
		f.Properties["assets"] = attrs
		fc.Append(f)
	}

	return fc
}

func sortedByTag(points []domain.GeoPoint) []domain.GeoPoint {
	sorted := make([]domain.GeoPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted
}
