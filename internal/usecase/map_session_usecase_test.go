package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/interaction"
	apperrors "github.com/asset-map-service/internal/pkg/errors"
	"github.com/asset-map-service/internal/usecase"
	"github.com/asset-map-service/internal/usecase/dto"
	"github.com/asset-map-service/internal/viewport"
)

func santiagoCamera(zoom float64) *dto.CameraRequest {
	return &dto.CameraRequest{
		BoundsRequest: dto.BoundsRequest{West: -72, South: -34, East: -70, North: -33},
		Zoom:          zoom,
		HeightPx:      600,
	}
}

func newSessionUseCase(repo *MockAssetRepository) *usecase.MapSessionUseCase {
	assets := usecase.NewAssetUseCase(repo, nil, time.Minute, zap.NewNop())
	return usecase.NewMapSessionUseCase(assets, interaction.DefaultOptions(), zap.NewNop())
}

func commandTypes(cmds []dto.Command) []string {
	types := make([]string, 0, len(cmds))
	for _, c := range cmds {
		types = append(types, c.Type)
	}
	return types
}

func findCommand(t *testing.T, cmds []dto.Command, kind string) dto.Command {
	t.Helper()
	for _, c := range cmds {
		if c.Type == kind {
			return c
		}
	}
	t.Fatalf("command %s not found in %v", kind, commandTypes(cmds))
	return dto.Command{}
}

// readySession creates a session and drives it through load and idle
func readySession(t *testing.T, uc *usecase.MapSessionUseCase) (uuid.UUID, []dto.Command) {
	t.Helper()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateSessionRequest{Camera: santiagoCamera(8)})
	require.NoError(t, err)
	assert.Equal(t, string(interaction.StateLoading), created.State)
	assert.Empty(t, created.Commands)

	id := uuid.MustParse(created.ID)
	loaded, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: "load"})
	require.NoError(t, err)
	require.Equal(t, string(interaction.StateReady), loaded.State)

	return id, loaded.Commands
}

func TestMapSessionUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &MockAssetRepository{}
	repo.On("ListAssets", ctx, mock.Anything).Return(testRecords(), nil)
	uc := newSessionUseCase(repo)

	id, cmds := readySession(t, uc)

	assert.Equal(t, []string{
		dto.CommandAddSource,
		dto.CommandAddLayer,
		dto.CommandAddLayer,
		dto.CommandAddLayer,
	}, commandTypes(cmds))

	source := cmds[0].Payload.(dto.SourcePayload)
	assert.Equal(t, interaction.SourceAssets, source.ID)
	assert.Len(t, source.Data.Features, 2)

	t.Run("first idle publishes the visible set once", func(t *testing.T) {
		resp, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: "idle"})
		require.NoError(t, err)
		require.Len(t, resp.Commands, 1)
		assert.Equal(t, dto.CommandVisibleSet, resp.Commands[0].Type)

		resp, err = uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: "idle"})
		require.NoError(t, err)
		assert.Empty(t, resp.Commands)
	})

	t.Run("get reports listener groups", func(t *testing.T) {
		resp, err := uc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.ListenerGroups)
		assert.Equal(t, 4, resp.Points)
		assert.NotEmpty(t, resp.Fingerprint)
	})

	t.Run("delete then access", func(t *testing.T) {
		require.NoError(t, uc.Delete(ctx, id))

		_, err := uc.Get(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrSessionDisposed)

		err = uc.Delete(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrSessionDisposed)
		assert.Zero(t, uc.Count())
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := uc.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})
}

func TestMapSessionUseCase_Interactions(t *testing.T) {
	ctx := context.Background()
	repo := &MockAssetRepository{}
	repo.On("ListAssets", ctx, mock.Anything).Return(testRecords(), nil)
	uc := newSessionUseCase(repo)

	id, cmds := readySession(t, uc)

	var clusterID string
	for _, f := range cmds[0].Payload.(dto.SourcePayload).Data.Features {
		if f.Properties["cluster"] == true {
			clusterID, _ = f.Properties["cluster_id"].(string)
		}
	}
	require.NotEmpty(t, clusterID)

	t.Run("cluster click flies to expansion zoom", func(t *testing.T) {
		resp, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{
			Type:     "click",
			Layer:    interaction.LayerClusters,
			Features: []dto.HitFeatureRequest{{ClusterID: clusterID}},
		})
		require.NoError(t, err)

		fly := findCommand(t, resp.Commands, dto.CommandFlyTo).Payload.(dto.FlyToPayload)
		assert.Greater(t, fly.Zoom, 9.0)
		assert.LessOrEqual(t, fly.Zoom, 20.0)
		assert.InDelta(t, -70.669, fly.Center[0], 0.01)
	})

	t.Run("stale cluster click re-renders", func(t *testing.T) {
		resp, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{
			Type:     "click",
			Layer:    interaction.LayerClusters,
			Features: []dto.HitFeatureRequest{{ClusterID: "deadbeef-3-0"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{dto.CommandSetSourceData}, commandTypes(resp.Commands))
	})

	t.Run("point click shows popup and pans", func(t *testing.T) {
		resp, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{
			Type:     "click",
			Layer:    interaction.LayerUnclustered,
			Lat:      -33.4489,
			Lon:      -70.6693,
			Features: []dto.HitFeatureRequest{{Tag: "A1"}, {Tag: "A2"}, {Tag: "B1"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{dto.CommandShowPopup, dto.CommandPanBy}, commandTypes(resp.Commands))

		popup := resp.Commands[0].Payload.(interaction.PopupPayload)
		require.Len(t, popup.Assets, 2)
		assert.Equal(t, "A1", popup.Assets[0].Tag)

		pan := resp.Commands[1].Payload.(dto.PanByPayload)
		assert.InDelta(t, -45.0, pan.DY, 1e-9)
		assert.Equal(t, int64(300), pan.DurationMs)
	})

	t.Run("click on other layer is ignored", func(t *testing.T) {
		resp, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: "click", Layer: "background"})
		require.NoError(t, err)
		assert.Empty(t, resp.Commands)
	})

	t.Run("hover toggles cursor", func(t *testing.T) {
		resp, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: "mouseenter", Layer: interaction.LayerUnclustered})
		require.NoError(t, err)
		require.Len(t, resp.Commands, 1)
		assert.Equal(t, dto.CursorPayload{Cursor: "pointer"}, resp.Commands[0].Payload)

		resp, err = uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: "mouseleave", Layer: interaction.LayerUnclustered})
		require.NoError(t, err)
		assert.Equal(t, dto.CursorPayload{Cursor: ""}, resp.Commands[0].Payload)
	})

	t.Run("view details navigates", func(t *testing.T) {
		resp, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: usecase.EventViewDetails, Tag: "B1"})
		require.NoError(t, err)
		require.Len(t, resp.Commands, 1)
		assert.Equal(t, dto.NavigatePayload{Tag: "B1", Path: "/asset/B1"}, resp.Commands[0].Payload)

		_, err = uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: usecase.EventViewDetails, Tag: "X1"})
		assert.ErrorIs(t, err, apperrors.ErrAssetNotFound)
	})

	t.Run("map error keeps state", func(t *testing.T) {
		resp, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: "error", Message: "style failed"})
		require.NoError(t, err)
		assert.Equal(t, string(interaction.StateReady), resp.State)
		assert.Equal(t, dto.MapUnavailablePayload{Reason: "style failed"}, findCommand(t, resp.Commands, dto.CommandMapUnavailable).Payload)
	})

	t.Run("invalid camera", func(t *testing.T) {
		_, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{
			Type:   "moveend",
			Camera: &dto.CameraRequest{BoundsRequest: dto.BoundsRequest{West: 5, East: -5}},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidBounds)
	})
}

func TestMapSessionUseCase_SetFilterAndRefresh(t *testing.T) {
	ctx := context.Background()
	repo := &MockAssetRepository{}
	repo.On("ListAssets", ctx, mock.Anything).Return(testRecords(), nil)
	uc := newSessionUseCase(repo)

	id, _ := readySession(t, uc)

	resp, err := uc.SetFilter(ctx, id, dto.UpdateFilterRequest{Filter: dto.FilterRequest{Status: []string{"operativo"}}})
	require.NoError(t, err)
	assert.Equal(t, string(interaction.StateReady), resp.State)
	assert.Equal(t, 2, resp.ListenerGroups)
	findCommand(t, resp.Commands, dto.CommandSetSourceData)

	// refreshed commands wait for the next request
	n, err := uc.RefreshAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := uc.Get(ctx, id)
	require.NoError(t, err)
	findCommand(t, got.Commands, dto.CommandSetSourceData)
	assert.Equal(t, 2, got.ListenerGroups)
}

func TestMapSessionUseCase_CreateFailsWhenSourceDown(t *testing.T) {
	ctx := context.Background()
	repo := &MockAssetRepository{}
	repo.On("ListAssets", ctx, mock.Anything).Return(nil, assert.AnError)
	uc := newSessionUseCase(repo)

	_, err := uc.Create(ctx, dto.CreateSessionRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAssetSourceUnavailable)
	assert.Zero(t, uc.Count())
}

func TestMapSessionUseCase_CameraLessSessionWaitsForBounds(t *testing.T) {
	ctx := context.Background()
	repo := &MockAssetRepository{}
	repo.On("ListAssets", ctx, mock.Anything).Return(testRecords(), nil)
	uc := newSessionUseCase(repo)

	created, err := uc.Create(ctx, dto.CreateSessionRequest{})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	loaded, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: "load"})
	require.NoError(t, err)
	require.Equal(t, string(interaction.StateReady), loaded.State)
	source := findCommand(t, loaded.Commands, dto.CommandAddSource).Payload.(dto.SourcePayload)
	assert.Empty(t, source.Data.Features)

	idle, err := uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: "idle"})
	require.NoError(t, err)
	assert.NotContains(t, commandTypes(idle.Commands), dto.CommandVisibleSet,
		"an unknown camera must not be reported as an empty view")

	idle, err = uc.HandleEvent(ctx, id, dto.SessionEventRequest{Type: "idle", Camera: santiagoCamera(8)})
	require.NoError(t, err)
	assert.Equal(t, []string{dto.CommandSetSourceData, dto.CommandVisibleSet}, commandTypes(idle.Commands))

	set := findCommand(t, idle.Commands, dto.CommandVisibleSet).Payload.(viewport.VisibleSet)
	assert.False(t, set.Empty)
	assert.Len(t, set.Points, 4)
}
