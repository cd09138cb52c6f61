package utils

import "math"

// EarthRadiusMeters — средний радиус Земли
const EarthRadiusMeters = 6371000.0

// HaversineDistanceMeters вычисляет расстояние по большому кругу между двумя точками в метрах.
// Аргументы упорядочиваются перед вычислением, поэтому d(a,b) и d(b,a) совпадают побитово.
func HaversineDistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 > lat2 || (lat1 == lat2 && lon1 > lon2) {
		lat1, lon1, lat2, lon2 = lat2, lon2, lat1, lon1
	}

	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	if a > 1 {
		a = 1
	}
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateZoom проверяет уровень зума карты (0 - 24)
func ValidateZoom(zoom float64) bool {
	return zoom >= 0 && zoom <= 24
}
