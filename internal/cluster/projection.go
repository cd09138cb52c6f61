package cluster

import "math"

// Projection helpers: spherical mercator normalized to [0, 1].

func lngX(lng float64) float64 {
	return lng/360 + 0.5
}

func latY(lat float64) float64 {
	sin := math.Sin(lat * math.Pi / 180)
	y := 0.5 - 0.25*math.Log((1+sin)/(1-sin))/math.Pi
	if y < 0 {
		return 0
	}
	if y > 1 {
		return 1
	}
	return y
}

func xLng(x float64) float64 {
	return (x - 0.5) * 360
}

func yLat(y float64) float64 {
	y2 := (180 - y*360) * math.Pi / 180
	return 360*math.Atan(math.Exp(y2))/math.Pi - 90
}

// radiusAt переводит радиус в пикселях в нормализованные единицы для зума
func radiusAt(radiusPx float64, extent int, zoom float64) float64 {
	return radiusPx / (float64(extent) * math.Pow(2, zoom))
}
