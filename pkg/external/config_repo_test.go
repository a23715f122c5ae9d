package external

import (
	"context"
	"testing"

	"github.com/habitrail/habitrail/internal/test_utils"
	"github.com/habitrail/habitrail/pkg/activity"
	"github.com/stretchr/testify/assert"
)

func setupConfigRepo(t *testing.T) (context.Context, *SourceConfigRepoImpl, int) {
	t.Helper()
	db := test_utils.SetupTestDB(t)
	ctx := context.Background()
	activityId, err := activity.NewActivityRepo(db).Store(ctx, activity.Activity{
		Name: "Running", IsActive: true, Type: activity.TypeTimeTracking,
	})
	assert.NoError(t, err)
	return ctx, NewSourceConfigRepo(db), activityId
}

func TestSourceConfigRepoImpl_SaveAndGet(t *testing.T) {
	// given
	ctx, repo, activityId := setupConfigRepo(t)

	// when
	err := repo.Save(ctx, SourceConfig{CalendarID: "primary", ActivityID: activityId})

	// then
	assert.NoError(t, err)
	cfg, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "primary", cfg.CalendarID)
	assert.Equal(t, activityId, cfg.ActivityID)
}

func TestSourceConfigRepoImpl_SaveReplacesExistingBinding(t *testing.T) {
	// given
	ctx, repo, activityId := setupConfigRepo(t)
	assert.NoError(t, repo.Save(ctx, SourceConfig{CalendarID: "primary", ActivityID: activityId}))

	// when
	err := repo.Save(ctx, SourceConfig{CalendarID: "work", ActivityID: activityId})

	// then
	assert.NoError(t, err)
	cfg, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "work", cfg.CalendarID)
}

func TestSourceConfigRepoImpl_Get_Missing(t *testing.T) {
	// given
	ctx, repo, _ := setupConfigRepo(t)

	// when
	cfg, err := repo.Get(ctx)

	// then
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestSourceConfigRepoImpl_Delete(t *testing.T) {
	// given
	ctx, repo, activityId := setupConfigRepo(t)
	assert.NoError(t, repo.Save(ctx, SourceConfig{CalendarID: "primary", ActivityID: activityId}))

	// when
	err := repo.Delete(ctx)

	// then
	assert.NoError(t, err)
	cfg, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}
