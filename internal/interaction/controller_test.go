package interaction_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/interaction"
	"github.com/asset-map-service/internal/viewport"
)

func gp(tag, substation string, lat, lon float64) domain.GeoPoint {
	return domain.GeoPoint{
		ID:       tag,
		Position: orb.Point{lon, lat},
		Attributes: domain.Attributes{
			Tag:        tag,
			Substation: substation,
			Company:    "CGE",
			Status:     "OK",
		},
	}
}

func testPoints() []domain.GeoPoint {
	return []domain.GeoPoint{
		gp("A", "Charrua", -37.700000, -71.500000),
		gp("B", "Charrua", -37.700100, -71.500100),
		gp("C", "Alto Jahuel", -33.45, -70.66),
	}
}

func chileCamera(zoom float64) interaction.Camera {
	w, _ := viewport.NewViewportWindow(-75, -40, -68, -30)
	return interaction.Camera{Window: w, Zoom: zoom, HeightPx: 600, Known: true}
}

type fixture struct {
	surface    *fakeSurface
	navigator  *mockNavigator
	presenter  *mockPresenter
	controller *interaction.Controller
}

func newFixture(t *testing.T, opts interaction.Options) *fixture {
	t.Helper()

	f := &fixture{
		surface:   newFakeSurface(chileCamera(5)),
		navigator: new(mockNavigator),
		presenter: new(mockPresenter),
	}
	f.presenter.On("ShowVisible", mock.Anything).Return()
	f.presenter.On("ShowPopup", mock.Anything).Return()
	f.presenter.On("ShowMapUnavailable", mock.Anything).Return()
	f.navigator.On("NavigateToAsset", mock.Anything).Return()

	c, err := interaction.NewController(f.surface, f.navigator, f.presenter, opts, zap.NewNop())
	require.NoError(t, err)
	f.controller = c
	return f
}

// ready mounts the controller and drives it through load and the first idle
func (f *fixture) ready(t *testing.T, points []domain.GeoPoint) {
	t.Helper()
	require.NoError(t, f.controller.Mount(points))
	f.surface.fire(interaction.Event{Type: interaction.EventLoad})
	f.surface.fire(interaction.Event{Type: interaction.EventIdle})
	require.Equal(t, interaction.StateReady, f.controller.State())
}

func (f *fixture) clusterIDs() []string {
	var ids []string
	for _, feat := range f.surface.sources[interaction.SourceAssets].Features {
		if feat.Properties["cluster"] == true {
			ids = append(ids, feat.Properties["cluster_id"].(string))
		}
	}
	return ids
}

func TestController_StateMachine(t *testing.T) {
	f := newFixture(t, interaction.DefaultOptions())
	c := f.controller

	assert.Equal(t, interaction.StateUninitialized, c.State())

	require.NoError(t, c.Mount(testPoints()))
	assert.Equal(t, interaction.StateLoading, c.State())
	assert.Error(t, c.Mount(testPoints()))
	assert.Nil(t, c.Index(), "no clustering before the map is ready")

	// idle before load is ignored
	f.surface.fire(interaction.Event{Type: interaction.EventIdle})
	f.presenter.AssertNotCalled(t, "ShowVisible", mock.Anything)

	f.surface.fire(interaction.Event{Type: interaction.EventLoad})
	assert.Equal(t, interaction.StateReady, c.State())
	require.NotNil(t, f.surface.sources[interaction.SourceAssets])
	assert.Len(t, f.surface.layers, 3)

	f.surface.fire(interaction.Event{Type: interaction.EventIdle})
	f.presenter.AssertNumberOfCalls(t, "ShowVisible", 1)
	set := f.presenter.Calls[0].Arguments.Get(0).(viewport.VisibleSet)
	assert.Len(t, set.Points, 3)
	assert.False(t, set.Empty)

	c.Dispose()
	assert.Equal(t, interaction.StateDisposed, c.State())
	assert.Equal(t, 1, f.surface.removed)
	assert.Empty(t, f.surface.handlers)
	assert.Equal(t, 0, c.ActiveListenerGroups())

	c.Dispose()
	assert.Equal(t, 1, f.surface.removed, "surface is released exactly once")

	assert.ErrorIs(t, c.SetPoints(testPoints()), interaction.ErrDisposed)
	assert.ErrorIs(t, c.ViewDetails("A"), interaction.ErrDisposed)
	assert.ErrorIs(t, c.Mount(testPoints()), interaction.ErrDisposed)
}

func TestController_ClusterClickFliesToExpansionZoom(t *testing.T) {
	tests := []struct {
		name       string
		mapMaxZoom float64
		wantZoom   float64
	}{
		{"expansion zoom plus one", 20, 11},
		{"capped by map max zoom", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := interaction.DefaultOptions()
			opts.MapMaxZoom = tt.mapMaxZoom
			f := newFixture(t, opts)
			f.ready(t, testPoints())

			ids := f.clusterIDs()
			require.Len(t, ids, 1)

			f.surface.fire(interaction.Event{
				Type:     interaction.EventClick,
				Layer:    interaction.LayerClusters,
				Features: []interaction.HitFeature{{ClusterID: ids[0]}},
			})

			require.Len(t, f.surface.flights, 1)
			assert.Equal(t, tt.wantZoom, f.surface.flights[0].zoom)
			assert.InDelta(t, -37.70005, f.surface.flights[0].center.Lat(), 1e-4)
			assert.InDelta(t, -71.50005, f.surface.flights[0].center.Lon(), 1e-4)
		})
	}
}

func TestController_StaleClusterIDReRenders(t *testing.T) {
	f := newFixture(t, interaction.DefaultOptions())
	f.ready(t, testPoints())
	before := f.surface.sets

	f.surface.fire(interaction.Event{
		Type:     interaction.EventClick,
		Layer:    interaction.LayerClusters,
		Features: []interaction.HitFeature{{ClusterID: "stale-5-0"}},
	})

	assert.Empty(t, f.surface.flights)
	assert.Equal(t, before+1, f.surface.sets)
}

func TestController_PointClick(t *testing.T) {
	t.Run("hit features resolved by real distance", func(t *testing.T) {
		f := newFixture(t, interaction.DefaultOptions())
		f.ready(t, testPoints())

		f.surface.fire(interaction.Event{
			Type:     interaction.EventClick,
			Layer:    interaction.LayerUnclustered,
			LngLat:   orb.Point{-71.500050, -37.700050},
			Features: []interaction.HitFeature{{Tag: "A"}, {Tag: "B"}, {Tag: "C"}},
		})

		f.presenter.AssertNumberOfCalls(t, "ShowPopup", 1)
		payload := f.presenter.Calls[len(f.presenter.Calls)-1].Arguments.Get(0).(interaction.PopupPayload)
		require.Len(t, payload.Assets, 2)
		assert.ElementsMatch(t, []string{"A", "B"}, []string{payload.Assets[0].Tag, payload.Assets[1].Tag})
		assert.Len(t, payload.Assets[0].Fields, 5)
		assert.NotEmpty(t, payload.Assets[0].Color)

		require.Len(t, f.surface.pans, 1)
		assert.Equal(t, -45.0, f.surface.pans[0])
	})

	t.Run("nothing within threshold", func(t *testing.T) {
		f := newFixture(t, interaction.DefaultOptions())
		f.ready(t, testPoints())

		f.surface.fire(interaction.Event{
			Type:     interaction.EventClick,
			Layer:    interaction.LayerUnclustered,
			LngLat:   orb.Point{-71.5, -37.7},
			Features: []interaction.HitFeature{{Tag: "C"}},
		})

		f.presenter.AssertNotCalled(t, "ShowPopup", mock.Anything)
		assert.Empty(t, f.surface.pans)
	})

	t.Run("server side hit test without features", func(t *testing.T) {
		f := newFixture(t, interaction.DefaultOptions())
		f.surface.camera = chileCamera(14)
		f.ready(t, testPoints())

		f.surface.fire(interaction.Event{
			Type:   interaction.EventClick,
			Layer:  interaction.LayerUnclustered,
			LngLat: orb.Point{-71.500050, -37.700050},
		})

		f.presenter.AssertNumberOfCalls(t, "ShowPopup", 1)
	})
}

func TestController_Hover(t *testing.T) {
	f := newFixture(t, interaction.DefaultOptions())
	f.ready(t, testPoints())

	f.surface.fire(interaction.Event{Type: interaction.EventMouseEnter, Layer: interaction.LayerClusters})
	f.surface.fire(interaction.Event{Type: interaction.EventMouseLeave, Layer: interaction.LayerClusters})
	f.surface.fire(interaction.Event{Type: interaction.EventMouseEnter, Layer: "other-layer"})

	assert.Equal(t, []string{"pointer", ""}, f.surface.cursors)
}

func TestController_SetPointsRebuildsWithoutDuplicateListeners(t *testing.T) {
	f := newFixture(t, interaction.DefaultOptions())
	f.ready(t, testPoints())

	registered := len(f.surface.handlers)
	oldIDs := f.clusterIDs()
	require.NotEmpty(t, oldIDs)

	next := []domain.GeoPoint{
		gp("D", "Charrua", -36.8, -73.0),
		gp("E", "Charrua", -36.8001, -73.0001),
	}
	require.NoError(t, f.controller.SetPoints(next))

	assert.Equal(t, interaction.StateReady, f.controller.State())
	assert.Equal(t, registered, len(f.surface.handlers), "old listeners are detached before new ones attach")
	assert.Equal(t, 2, f.controller.ActiveListenerGroups())
	f.presenter.AssertNumberOfCalls(t, "ShowVisible", 2)

	// one click produces exactly one reaction
	newIDs := f.clusterIDs()
	require.Len(t, newIDs, 1)
	handled := f.surface.fire(interaction.Event{
		Type:     interaction.EventClick,
		Layer:    interaction.LayerClusters,
		Features: []interaction.HitFeature{{ClusterID: newIDs[0]}},
	})
	assert.Equal(t, 1, handled)
	assert.Len(t, f.surface.flights, 1)

	// ids from the previous point set are stale
	f.surface.fire(interaction.Event{
		Type:     interaction.EventClick,
		Layer:    interaction.LayerClusters,
		Features: []interaction.HitFeature{{ClusterID: oldIDs[0]}},
	})
	assert.Len(t, f.surface.flights, 1)
}

func TestController_SetPointsWhileLoading(t *testing.T) {
	f := newFixture(t, interaction.DefaultOptions())
	require.NoError(t, f.controller.Mount(testPoints()))

	require.NoError(t, f.controller.SetPoints(testPoints()[:1]))
	f.surface.fire(interaction.Event{Type: interaction.EventLoad})

	assert.Equal(t, 1, f.controller.Index().Len())
}

func TestController_ViewChangeCoalescing(t *testing.T) {
	f := newFixture(t, interaction.DefaultOptions())
	f.ready(t, testPoints())
	sets := f.surface.sets

	// same camera: nothing to do
	f.surface.fire(interaction.Event{Type: interaction.EventMoveEnd})
	assert.Equal(t, sets, f.surface.sets)
	f.presenter.AssertNumberOfCalls(t, "ShowVisible", 1)

	w, _ := viewport.NewViewportWindow(-72, -38, -71, -37)
	f.surface.camera = interaction.Camera{Window: w, Zoom: 8, HeightPx: 600, Known: true}
	f.surface.fire(interaction.Event{Type: interaction.EventZoomEnd})
	f.surface.fire(interaction.Event{Type: interaction.EventMoveEnd})

	assert.Equal(t, sets+1, f.surface.sets)
	f.presenter.AssertNumberOfCalls(t, "ShowVisible", 2)

	last := f.presenter.Calls[len(f.presenter.Calls)-1].Arguments.Get(0).(viewport.VisibleSet)
	assert.Len(t, last.Points, 2)

	// empty window is a valid state
	empty, _ := viewport.NewViewportWindow(0, 0, 1, 1)
	f.surface.camera = interaction.Camera{Window: empty, Zoom: 8, HeightPx: 600, Known: true}
	f.surface.fire(interaction.Event{Type: interaction.EventMoveEnd})
	last = f.presenter.Calls[len(f.presenter.Calls)-1].Arguments.Get(0).(viewport.VisibleSet)
	assert.True(t, last.Empty)
}

func TestController_DefersUntilCameraKnown(t *testing.T) {
	f := newFixture(t, interaction.DefaultOptions())
	f.surface.camera = interaction.Camera{}

	require.NoError(t, f.controller.Mount(testPoints()))
	f.surface.fire(interaction.Event{Type: interaction.EventLoad})
	require.Equal(t, interaction.StateReady, f.controller.State())

	source := f.surface.sources[interaction.SourceAssets]
	require.NotNil(t, source)
	assert.Empty(t, source.Features, "no frame without bounds")

	f.surface.fire(interaction.Event{Type: interaction.EventIdle})
	f.surface.fire(interaction.Event{Type: interaction.EventMoveEnd})
	f.presenter.AssertNotCalled(t, "ShowVisible", mock.Anything)
	assert.Zero(t, f.surface.sets)

	f.surface.camera = chileCamera(5)
	f.surface.fire(interaction.Event{Type: interaction.EventIdle})

	assert.Equal(t, 1, f.surface.sets)
	assert.NotEmpty(t, f.surface.sources[interaction.SourceAssets].Features)
	f.presenter.AssertNumberOfCalls(t, "ShowVisible", 1)
	set := f.presenter.Calls[0].Arguments.Get(0).(viewport.VisibleSet)
	assert.Len(t, set.Points, 3)
	assert.False(t, set.Empty)
}

func TestController_ViewDetails(t *testing.T) {
	f := newFixture(t, interaction.DefaultOptions())
	assert.ErrorIs(t, f.controller.ViewDetails("A"), interaction.ErrNotReady)

	f.ready(t, testPoints())
	require.NoError(t, f.controller.ViewDetails("A"))
	f.navigator.AssertCalled(t, "NavigateToAsset", "A")

	assert.ErrorIs(t, f.controller.ViewDetails("missing"), interaction.ErrUnknownAsset)
	f.navigator.AssertNumberOfCalls(t, "NavigateToAsset", 1)
}

func TestController_MapErrorLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, interaction.DefaultOptions())
	require.NoError(t, f.controller.Mount(testPoints()))

	f.surface.fire(interaction.Event{Type: interaction.EventError, Message: "style failed"})

	f.presenter.AssertCalled(t, "ShowMapUnavailable", "style failed")
	assert.Equal(t, interaction.StateLoading, f.controller.State())
	assert.Nil(t, f.controller.Index())
}

func TestSubstationPalette(t *testing.T) {
	palette := interaction.SubstationPalette(testPoints())
	require.Len(t, palette, 2)
	assert.NotEqual(t, palette["Charrua"], palette["Alto Jahuel"])

	reversed := testPoints()
	reversed[0], reversed[2] = reversed[2], reversed[0]
	assert.Equal(t, palette, interaction.SubstationPalette(reversed))
}
