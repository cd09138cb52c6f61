package cluster

import "fmt"

// Options — параметры кластеризации
type Options struct {
	// MinZoom — минимальный зум, для которого строится уровень кластеров
	MinZoom int
	// MaxZoom — максимальный зум кластеров; выше него точки не объединяются
	MaxZoom int
	// Radius — радиус кластера в пикселях
	Radius float64
	// Extent — размер тайла в пикселях, относительно которого считается радиус
	Extent int
	// NodeSize — размер листа KD-дерева
	NodeSize int
	// MinPoints — минимальное число точек для образования кластера
	MinPoints int
}

// DefaultOptions возвращает параметры по умолчанию
func DefaultOptions() Options {
	return Options{
		MinZoom:   0,
		MaxZoom:   9,
		Radius:    15,
		Extent:    512,
		NodeSize:  64,
		MinPoints: 2,
	}
}

// maxSupportedZoom ограничен кодированием зума в 5 битах идентификатора
const maxSupportedZoom = 30

// Validate проверяет согласованность параметров
func (o Options) Validate() error {
	if o.MinZoom < 0 || o.MaxZoom < o.MinZoom || o.MaxZoom >= maxSupportedZoom {
		return fmt.Errorf("invalid zoom range [%d, %d]", o.MinZoom, o.MaxZoom)
	}
	if o.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", o.Radius)
	}
	if o.Extent <= 0 {
		return fmt.Errorf("extent must be positive, got %d", o.Extent)
	}
	if o.NodeSize <= 0 {
		return fmt.Errorf("node size must be positive, got %d", o.NodeSize)
	}
	if o.MinPoints < 2 {
		return fmt.Errorf("min points must be at least 2, got %d", o.MinPoints)
	}
	return nil
}
