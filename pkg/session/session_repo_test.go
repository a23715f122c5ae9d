package session

import (
	"context"
	"testing"
	"time"

	"github.com/habitrail/habitrail/internal/test_utils"
	"github.com/habitrail/habitrail/pkg/activity"
	"github.com/stretchr/testify/assert"
)

func setupSessionRepo(t *testing.T) (context.Context, *SessionRepoImpl, int) {
	t.Helper()
	db := test_utils.SetupTestDB(t)
	ctx := context.Background()
	activityId, err := activity.NewActivityRepo(db).Store(ctx, activity.Activity{
		Name: "Reading", IsActive: true, Type: activity.TypeTimeTracking,
	})
	assert.NoError(t, err)
	return ctx, NewSessionRepo(db), activityId
}

func TestSessionRepoImpl_StoreAndFindRunning(t *testing.T) {
	// given
	ctx, repo, activityId := setupSessionRepo(t)
	startTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	// when
	stored, err := repo.Store(ctx, Session{
		UID:        "uid-1",
		ActivityID: activityId,
		StartTime:  startTime,
		Date:       "2024-03-15",
		IsRunning:  true,
	})
	assert.NoError(t, err)

	// then
	running, err := repo.FindRunning(ctx, activityId)
	assert.NoError(t, err)
	assert.NotNil(t, running)
	assert.Equal(t, stored.ID, running.ID)
	assert.Equal(t, startTime.Unix(), running.StartTime.Unix())
	assert.Equal(t, "2024-03-15", running.Date)
	assert.True(t, running.IsRunning)
}

func TestSessionRepoImpl_SecondRunningSessionIsRejected(t *testing.T) {
	// given
	ctx, repo, activityId := setupSessionRepo(t)
	_, err := repo.Store(ctx, Session{
		UID: "uid-1", ActivityID: activityId,
		StartTime: time.Now(), Date: "2024-03-15", IsRunning: true,
	})
	assert.NoError(t, err)

	// when: the partial unique index rejects a second running session
	_, err = repo.Store(ctx, Session{
		UID: "uid-2", ActivityID: activityId,
		StartTime: time.Now(), Date: "2024-03-15", IsRunning: true,
	})

	// then
	assert.Error(t, err)
}

func TestSessionRepoImpl_Finish(t *testing.T) {
	// given
	ctx, repo, activityId := setupSessionRepo(t)
	startTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	stored, err := repo.Store(ctx, Session{
		UID: "uid-1", ActivityID: activityId,
		StartTime: startTime, Date: "2024-03-15", IsRunning: true,
	})
	assert.NoError(t, err)

	// when
	finished, err := repo.Finish(ctx, stored.ID, startTime.Add(30*time.Minute), 30*time.Minute)
	assert.NoError(t, err)

	// then
	assert.True(t, finished)
	sessions, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.False(t, sessions[0].IsRunning)
	assert.Equal(t, 30*time.Minute, sessions[0].Duration)

	// finishing again reports no running session
	finishedAgain, err := repo.Finish(ctx, stored.ID, startTime.Add(time.Hour), time.Hour)
	assert.NoError(t, err)
	assert.False(t, finishedAgain)
}

func TestSessionRepoImpl_DeleteRunning(t *testing.T) {
	// given
	ctx, repo, activityId := setupSessionRepo(t)
	_, err := repo.Store(ctx, Session{
		UID: "uid-1", ActivityID: activityId,
		StartTime: time.Now(), Date: "2024-03-15", IsRunning: true,
	})
	assert.NoError(t, err)

	// when
	err = repo.DeleteRunning(ctx, activityId)

	// then
	assert.NoError(t, err)
	running, err := repo.FindRunning(ctx, activityId)
	assert.NoError(t, err)
	assert.Nil(t, running)
}

func TestSessionRepoImpl_ListRecent(t *testing.T) {
	// given
	ctx, repo, activityId := setupSessionRepo(t)
	base := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		startTime := base.Add(time.Duration(i) * time.Hour)
		_, err := repo.Store(ctx, Session{
			UID:        "uid-" + string(rune('a'+i)),
			ActivityID: activityId,
			StartTime:  startTime,
			EndTime:    startTime.Add(30 * time.Minute),
			Duration:   30 * time.Minute,
			Date:       "2024-03-15",
		})
		assert.NoError(t, err)
	}

	// when
	recent, err := repo.ListRecent(ctx, 2)

	// then
	assert.NoError(t, err)
	assert.Len(t, recent, 2)
	// newest first
	assert.True(t, recent[0].StartTime.After(recent[1].StartTime))
}
