package viewstates_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/shared/svcerrors"
	"mcp-monitoring/internal/stores"
	storemocks "mcp-monitoring/internal/stores/mocks"
	"mcp-monitoring/internal/viewstates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)

func newService(ctrl *gomock.Controller) (viewstates.ViewStateService, *storemocks.MockViewStateStore) {
	store := storemocks.NewMockViewStateStore(ctrl)
	return viewstates.NewViewStateService(store, func() time.Time { return fixedNow }), store
}

func ptr[T any](v T) *T { return &v }

func TestLoad_ReturnsDefaultsWhenNothingSaved(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, store := newService(ctrl)
	store.EXPECT().Get(gomock.Any(), "default").Return(nil, stores.ErrViewStateNotFound)

	state, err := service.Load(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultViewState("default"), state)
}

func TestLoad_ReturnsSavedState(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, store := newService(ctrl)
	saved := &models.ViewState{ID: "ops", From: "now-7d", To: "now", GroupBy: models.GroupByAgent, RankMetric: models.RankByLatency}
	store.EXPECT().Get(gomock.Any(), "ops").Return(saved, nil)

	state, err := service.Load(context.Background(), "ops")
	require.NoError(t, err)
	assert.Same(t, saved, state)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, store := newService(ctrl)

	_, err := service.Load(context.Background(), "a/b")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "VST_1000", svcErr.Code)

	store.EXPECT().Get(gomock.Any(), "broken").Return(nil, errors.New("disk error"))
	_, err = service.Load(context.Background(), "broken")
	svcErr, ok = svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "VST_9000", svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
}

func TestUpdate_AppliesPatchAndSaves(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, store := newService(ctrl)
	store.EXPECT().Get(gomock.Any(), "default").Return(nil, stores.ErrViewStateNotFound)
	store.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, state *models.ViewState) error {
		assert.Equal(t, "default", state.ID)
		return nil
	})

	state, err := service.Update(context.Background(), "default", models.ViewStatePatch{
		From:       ptr("now-1h"),
		Filters:    ptr("env:eq:prod,bad:nope:x,team:exists:"),
		RankMetric: ptr(models.RankByErrorRate),
	})
	require.NoError(t, err)
	assert.Equal(t, "now-1h", state.From)
	assert.Equal(t, "now", state.To)
	assert.Equal(t, "env:eq:prod,team:exists:", state.Filters)
	assert.Equal(t, models.GroupByConnection, state.GroupBy)
	assert.Equal(t, models.RankByErrorRate, state.RankMetric)
	assert.Equal(t, fixedNow, state.UpdatedAt)
}

func TestUpdate_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		patch models.ViewStatePatch
	}{
		{name: "unknown group by", patch: models.ViewStatePatch{GroupBy: ptr(models.GroupBy("tool"))}},
		{name: "unknown metric", patch: models.ViewStatePatch{RankMetric: ptr(models.RankMetric("p99"))}},
		{name: "negative bucket count", patch: models.ViewStatePatch{BucketCount: ptr(-1)}},
		{name: "bad time expression", patch: models.ViewStatePatch{From: ptr("yesterday")}},
		{name: "start after end", patch: models.ViewStatePatch{From: ptr("now"), To: ptr("now-1h")}},
		{name: "empty from", patch: models.ViewStatePatch{From: ptr("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, store := newService(ctrl)
			store.EXPECT().Get(gomock.Any(), "default").Return(nil, stores.ErrViewStateNotFound)

			_, err := service.Update(context.Background(), "default", tt.patch)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError, got %v", err)
			assert.Equal(t, "VST_1000", svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
		})
	}
}

func TestUpdate_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, store := newService(ctrl)
	store.EXPECT().Get(gomock.Any(), "default").Return(nil, stores.ErrViewStateNotFound)
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := service.Update(context.Background(), "default", models.ViewStatePatch{})
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "VST_9000", svcErr.Code)
}
