package interaction_test

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/mock"

	"github.com/asset-map-service/internal/interaction"
	"github.com/asset-map-service/internal/viewport"
)

type registration struct {
	event   interaction.EventType
	layer   string
	handler interaction.Handler
}

type flyTo struct {
	center orb.Point
	zoom   float64
}

// fakeSurface stands in for the map library
type fakeSurface struct {
	next     interaction.ListenerID
	handlers map[interaction.ListenerID]registration
	offs     int

	camera  interaction.Camera
	sources map[string]*geojson.FeatureCollection
	layers  []interaction.Layer
	sets    int
	flights []flyTo
	pans    []float64
	cursors []string
	removed int
}

func newFakeSurface(cam interaction.Camera) *fakeSurface {
	return &fakeSurface{
		handlers: make(map[interaction.ListenerID]registration),
		sources:  make(map[string]*geojson.FeatureCollection),
		camera:   cam,
	}
}

func (s *fakeSurface) On(event interaction.EventType, layer string, handler interaction.Handler) interaction.ListenerID {
	s.next++
	s.handlers[s.next] = registration{event: event, layer: layer, handler: handler}
	return s.next
}

func (s *fakeSurface) Off(id interaction.ListenerID) {
	if _, ok := s.handlers[id]; ok {
		s.offs++
	}
	delete(s.handlers, id)
}

func (s *fakeSurface) AddSource(id string, data *geojson.FeatureCollection) {
	s.sources[id] = data
}

func (s *fakeSurface) SetSourceData(id string, data *geojson.FeatureCollection) {
	s.sources[id] = data
	s.sets++
}

func (s *fakeSurface) AddLayer(layer interaction.Layer) {
	s.layers = append(s.layers, layer)
}

func (s *fakeSurface) FlyTo(center orb.Point, zoom float64) {
	s.flights = append(s.flights, flyTo{center: center, zoom: zoom})
}

func (s *fakeSurface) PanBy(dx, dy float64, duration time.Duration) {
	s.pans = append(s.pans, dy)
}

func (s *fakeSurface) SetCursor(cursor string) {
	s.cursors = append(s.cursors, cursor)
}

func (s *fakeSurface) Camera() interaction.Camera {
	return s.camera
}

func (s *fakeSurface) Remove() {
	s.removed++
}

// fire delivers an event the way the map library does: layer listeners only for matching layers
func (s *fakeSurface) fire(ev interaction.Event) int {
	var matched []interaction.Handler
	for _, r := range s.handlers {
		if r.event != ev.Type {
			continue
		}
		if r.layer != "" && r.layer != ev.Layer {
			continue
		}
		matched = append(matched, r.handler)
	}
	for _, h := range matched {
		h(ev)
	}
	return len(matched)
}

type mockNavigator struct {
	mock.Mock
}

func (m *mockNavigator) NavigateToAsset(tag string) {
	m.Called(tag)
}

type mockPresenter struct {
	mock.Mock
}

func (m *mockPresenter) ShowPopup(payload interaction.PopupPayload) {
	m.Called(payload)
}

func (m *mockPresenter) ShowVisible(set viewport.VisibleSet) {
	m.Called(set)
}

func (m *mockPresenter) ShowMapUnavailable(reason string) {
	m.Called(reason)
}
