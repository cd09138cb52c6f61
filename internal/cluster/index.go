package cluster

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/paulmach/orb"

	"github.com/asset-map-service/internal/domain"
)

// ErrClusterNotFound — идентификатор кластера не относится к текущему индексу
var ErrClusterNotFound = errors.New("cluster not found")

const unvisited = math.MaxInt

// node — элемент уровня зума: исходная точка или кластер
type node struct {
	x, y      float64
	zoom      int
	id        int
	parent    int
	numPoints int
}

func (n *node) isCluster() bool {
	return n.numPoints > 1
}

type level struct {
	nodes []node
	tree  *kdTree
}

// Cluster — агрегат близких точек на заданном зуме
type Cluster struct {
	ID       string    `json:"id"`
	Centroid orb.Point `json:"centroid"`
	Count    int       `json:"count"`
}

// Entry — элемент отрисовываемого кадра: кластер либо отдельная точка
type Entry struct {
	Cluster *Cluster
	Point   *domain.GeoPoint
}

// IsCluster проверяет, является ли элемент кластером
func (e Entry) IsCluster() bool {
	return e.Cluster != nil
}

// Count возвращает число исходных точек за элементом
func (e Entry) Count() int {
	if e.Cluster != nil {
		return e.Cluster.Count
	}
	if e.Point != nil {
		return 1
	}
	return 0
}

// Position возвращает координату элемента
func (e Entry) Position() orb.Point {
	if e.Cluster != nil {
		return e.Cluster.Centroid
	}
	if e.Point != nil {
		return e.Point.Position
	}
	return orb.Point{}
}

// Index — иерархический кластерный индекс. После построения не изменяется
// и безопасен для конкурентного чтения.
type Index struct {
	opts        Options
	points      []domain.GeoPoint
	byTag       map[string]int
	levels      []level
	clusters    map[int]*node
	fingerprint string
}

// BuildIndex строит индекс по набору точек. Точки упорядочиваются по тегу,
// поэтому результат не зависит от порядка входа.
func BuildIndex(points []domain.GeoPoint, opts Options) (*Index, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]domain.GeoPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ID != sorted[j].ID {
			return sorted[i].ID < sorted[j].ID
		}
		if sorted[i].Lon() != sorted[j].Lon() {
			return sorted[i].Lon() < sorted[j].Lon()
		}
		return sorted[i].Lat() < sorted[j].Lat()
	})

	idx := &Index{
		opts:        opts,
		points:      sorted,
		byTag:       make(map[string]int, len(sorted)),
		levels:      make([]level, opts.MaxZoom+2),
		clusters:    make(map[int]*node),
		fingerprint: Fingerprint(sorted),
	}

	nodes := make([]node, len(sorted))
	for i, p := range sorted {
		if _, ok := idx.byTag[p.ID]; !ok {
			idx.byTag[p.ID] = i
		}
		nodes[i] = node{
			x:         lngX(p.Lon()),
			y:         latY(p.Lat()),
			zoom:      unvisited,
			id:        i,
			parent:    -1,
			numPoints: 1,
		}
	}

	idx.levels[opts.MaxZoom+1] = newLevel(nodes, opts.NodeSize)

	for z := opts.MaxZoom; z >= opts.MinZoom; z-- {
		next := idx.clusterLevel(z)
		idx.levels[z] = newLevel(next, opts.NodeSize)
	}

	return idx, nil
}

func newLevel(nodes []node, nodeSize int) level {
	xs := make([]float64, len(nodes))
	ys := make([]float64, len(nodes))
	for i := range nodes {
		xs[i] = nodes[i].x
		ys[i] = nodes[i].y
	}
	return level{nodes: nodes, tree: newKDTree(xs, ys, nodeSize)}
}

// clusterLevel жадно объединяет узлы уровня z+1 в кластеры уровня z
func (idx *Index) clusterLevel(zoom int) []node {
	src := idx.levels[zoom+1]
	data := src.nodes
	r := radiusAt(idx.opts.Radius, idx.opts.Extent, float64(zoom))
	next := make([]node, 0, len(data))

	for i := range data {
		p := &data[i]
		if p.zoom <= zoom {
			continue
		}
		p.zoom = zoom

		neighbors := src.tree.within(p.x, p.y, r)

		numPointsOrigin := p.numPoints
		numPoints := numPointsOrigin
		for _, k := range neighbors {
			if data[k].zoom > zoom {
				numPoints += data[k].numPoints
			}
		}

		if numPoints > numPointsOrigin && numPoints >= idx.opts.MinPoints {
			wx := p.x * float64(numPointsOrigin)
			wy := p.y * float64(numPointsOrigin)
			id := idx.encodeID(zoom+1, i)

			for _, k := range neighbors {
				b := &data[k]
				if b.zoom <= zoom {
					continue
				}
				b.zoom = zoom
				wx += b.x * float64(b.numPoints)
				wy += b.y * float64(b.numPoints)
				b.parent = id
			}

			p.parent = id
			next = append(next, node{
				x:         wx / float64(numPoints),
				y:         wy / float64(numPoints),
				zoom:      unvisited,
				id:        id,
				parent:    -1,
				numPoints: numPoints,
			})
			c := next[len(next)-1]
			idx.clusters[id] = &c
			continue
		}

		next = append(next, cloneForLevel(*p))

		if numPoints > 1 {
			for _, k := range neighbors {
				b := &data[k]
				if b.zoom <= zoom {
					continue
				}
				b.zoom = zoom
				next = append(next, cloneForLevel(*b))
			}
		}
	}

	return next
}

func cloneForLevel(n node) node {
	n.zoom = unvisited
	n.parent = -1
	return n
}

func (idx *Index) encodeID(originZoom, originIndex int) int {
	return (originIndex << 5) + originZoom + len(idx.points)
}

func (idx *Index) decodeID(id int) (originZoom, originIndex int) {
	v := id - len(idx.points)
	return v % 32, v >> 5
}

// Fingerprint — xxhash набора точек, упорядоченного по тегу
func Fingerprint(sorted []domain.GeoPoint) string {
	d := xxhash.New()
	var buf [8]byte
	for _, p := range sorted {
		_, _ = d.WriteString(p.ID)
		_, _ = d.Write([]byte{0})
		putFloat(buf[:], p.Lon())
		_, _ = d.Write(buf[:])
		putFloat(buf[:], p.Lat())
		_, _ = d.Write(buf[:])
	}
	return strconv.FormatUint(d.Sum64(), 36)
}

func putFloat(buf []byte, f float64) {
	bits := math.Float64bits(f)
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (8 * i))
	}
}

// Fingerprint возвращает отпечаток набора точек индекса
func (idx *Index) Fingerprint() string {
	return idx.fingerprint
}

// Options возвращает параметры, с которыми построен индекс
func (idx *Index) Options() Options {
	return idx.opts
}

// Len возвращает число точек в индексе
func (idx *Index) Len() int {
	return len(idx.points)
}

// Points возвращает точки индекса в порядке тегов
func (idx *Index) Points() []domain.GeoPoint {
	return idx.points
}

// Point ищет точку по тегу
func (idx *Index) Point(tag string) (domain.GeoPoint, bool) {
	i, ok := idx.byTag[tag]
	if !ok {
		return domain.GeoPoint{}, false
	}
	return idx.points[i], true
}

func (idx *Index) clusterID(id int) string {
	originZoom, originIndex := idx.decodeID(id)
	return fmt.Sprintf("%s-%d-%d", idx.fingerprint, originZoom, originIndex)
}

// parseID разбирает строковый идентификатор и проверяет, что кластер существует в этом индексе
func (idx *Index) parseID(clusterID string) (int, error) {
	parts := strings.Split(clusterID, "-")
	if len(parts) != 3 || parts[0] != idx.fingerprint {
		return 0, ErrClusterNotFound
	}

	originZoom, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrClusterNotFound
	}
	originIndex, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, ErrClusterNotFound
	}

	if originZoom <= idx.opts.MinZoom || originZoom > idx.opts.MaxZoom+1 {
		return 0, ErrClusterNotFound
	}
	nodes := idx.levels[originZoom].nodes
	if originIndex < 0 || originIndex >= len(nodes) {
		return 0, ErrClusterNotFound
	}

	id := idx.encodeID(originZoom, originIndex)
	if _, ok := idx.clusters[id]; !ok {
		return 0, ErrClusterNotFound
	}
	return id, nil
}

func (idx *Index) limitZoom(zoom float64) int {
	z := int(math.Floor(zoom))
	if z < idx.opts.MinZoom {
		return idx.opts.MinZoom
	}
	if z > idx.opts.MaxZoom+1 {
		return idx.opts.MaxZoom + 1
	}
	return z
}

func (idx *Index) entry(n *node) Entry {
	if n.isCluster() {
		return Entry{Cluster: &Cluster{
			ID:       idx.clusterID(n.id),
			Centroid: orb.Point{xLng(n.x), yLat(n.y)},
			Count:    n.numPoints,
		}}
	}
	p := idx.points[n.id]
	return Entry{Point: &p}
}

// GetClusters возвращает отрисовываемый кадр для границ и зума.
// Повторный вызов с теми же аргументами даёт ту же группировку.
func (idx *Index) GetClusters(bounds orb.Bound, zoom float64) []Entry {
	minLng, maxLng := bounds.Min.Lon(), bounds.Max.Lon()
	minLat := math.Max(-90, math.Min(90, bounds.Min.Lat()))
	maxLat := math.Max(-90, math.Min(90, bounds.Max.Lat()))

	if maxLng-minLng >= 360 {
		minLng, maxLng = -180, 180
	} else {
		minLng = math.Max(-180, minLng)
		maxLng = math.Min(180, maxLng)
	}

	lvl := idx.levels[idx.limitZoom(zoom)]
	ids := lvl.tree.rangeQuery(lngX(minLng), latY(maxLat), lngX(maxLng), latY(minLat))

	entries := make([]Entry, 0, len(ids))
	for _, i := range ids {
		entries = append(entries, idx.entry(&lvl.nodes[i]))
	}
	return entries
}

// GetCluster возвращает кластер по идентификатору
func (idx *Index) GetCluster(clusterID string) (*Cluster, error) {
	id, err := idx.parseID(clusterID)
	if err != nil {
		return nil, err
	}
	e := idx.entry(idx.clusters[id])
	return e.Cluster, nil
}

// GetChildren возвращает непосредственных потомков кластера на следующем уровне
func (idx *Index) GetChildren(clusterID string) ([]Entry, error) {
	id, err := idx.parseID(clusterID)
	if err != nil {
		return nil, err
	}
	return idx.children(id), nil
}

func (idx *Index) children(id int) []Entry {
	originZoom, originIndex := idx.decodeID(id)
	lvl := idx.levels[originZoom]
	origin := lvl.nodes[originIndex]
	r := radiusAt(idx.opts.Radius, idx.opts.Extent, float64(originZoom-1))

	var children []Entry
	for _, i := range lvl.tree.within(origin.x, origin.y, r) {
		if lvl.nodes[i].parent == id {
			children = append(children, idx.entry(&lvl.nodes[i]))
		}
	}
	return children
}

// GetExpansionZoom возвращает минимальный зум, на котором кластер распадается
// больше чем на один элемент
func (idx *Index) GetExpansionZoom(clusterID string) (int, error) {
	id, err := idx.parseID(clusterID)
	if err != nil {
		return 0, err
	}

	originZoom, _ := idx.decodeID(id)
	expansionZoom := originZoom - 1
	for expansionZoom <= idx.opts.MaxZoom {
		children := idx.children(id)
		expansionZoom++
		if len(children) != 1 || !children[0].IsCluster() {
			break
		}
		id, err = idx.parseID(children[0].Cluster.ID)
		if err != nil {
			return 0, err
		}
	}

	return expansionZoom, nil
}

// GetLeaves возвращает исходные точки кластера с пагинацией
func (idx *Index) GetLeaves(clusterID string, limit, offset int) ([]domain.GeoPoint, error) {
	id, err := idx.parseID(clusterID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	leaves := make([]domain.GeoPoint, 0, limit)
	idx.appendLeaves(&leaves, id, limit, offset, 0)
	return leaves, nil
}

func (idx *Index) appendLeaves(result *[]domain.GeoPoint, id, limit, offset, skipped int) int {
	for _, child := range idx.children(id) {
		if child.IsCluster() {
			if skipped+child.Cluster.Count <= offset {
				skipped += child.Cluster.Count
			} else {
				childID, _ := idx.parseID(child.Cluster.ID)
				skipped = idx.appendLeaves(result, childID, limit, offset, skipped)
			}
		} else if skipped < offset {
			skipped++
		} else {
			*result = append(*result, *child.Point)
		}
		if len(*result) == limit {
			break
		}
	}
	return skipped
}

// PointsNear возвращает исходные точки в радиусе radiusPx пикселей от center на зуме zoom.
// Используется как серверный hit-test, когда клиент не передал попадания.
func (idx *Index) PointsNear(center orb.Point, zoom, radiusPx float64) []domain.GeoPoint {
	lvl := idx.levels[idx.opts.MaxZoom+1]
	r := radiusAt(radiusPx, idx.opts.Extent, zoom)

	ids := lvl.tree.within(lngX(center.Lon()), latY(center.Lat()), r)
	sort.Ints(ids)

	result := make([]domain.GeoPoint, 0, len(ids))
	for _, i := range ids {
		result = append(result, idx.points[lvl.nodes[i].id])
	}
	return result
}
