package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/habitrail/habitrail/internal/utils"
	"github.com/habitrail/habitrail/pkg/activity"
	"github.com/habitrail/habitrail/pkg/checkbox"
	"github.com/habitrail/habitrail/pkg/external"
	"github.com/habitrail/habitrail/pkg/session"
	"github.com/stretchr/testify/assert"
)

func setupStatsService(t *testing.T, source external.Source) (*StatsServiceImpl, *activity.StubActivityRepo, *session.StubSessionRepo) {
	t.Helper()
	activityRepo := activity.NewStubActivityRepo()
	sessionRepo := session.NewStubSessionRepo()
	checkboxRepo := checkbox.NewStubCheckboxRepo()
	clock := &utils.MockClock{FixedNow: testNow}
	service := NewStatsServiceImpl(activityRepo, sessionRepo, checkboxRepo, source, clock, time.Monday)
	return service, activityRepo, sessionRepo
}

func storeCompletedSession(t *testing.T, repo *session.StubSessionRepo, s session.Session) {
	t.Helper()
	_, err := repo.Store(context.Background(), s)
	assert.NoError(t, err)
}

func TestStatsService_GetStatistics(t *testing.T) {
	// given
	service, activityRepo, sessionRepo := setupStatsService(t, nil)
	activityId, err := activityRepo.Store(context.Background(), activity.Activity{
		Name: "Reading", IsActive: true, Type: activity.TypeTimeTracking,
	})
	assert.NoError(t, err)
	storeCompletedSession(t, sessionRepo, completedSession(activityId, testNow.Add(-2*time.Hour), 30))

	// when
	statistics, err := service.GetStatistics(context.Background(), 0)

	// then
	assert.NoError(t, err)
	assert.Equal(t, 30, statistics.TotalTimeToday)
	assert.Len(t, statistics.DailyProgress, 30)
	assert.Len(t, statistics.ActivityBreakdown, 1)
}

func TestStatsService_GetStatistics_WithExternalSource(t *testing.T) {
	// given
	source := &external.StubSource{
		StubEntries:    []external.Entry{{Date: "2024-03-15", Seconds: 600}},
		StubActivityID: 1,
		Configured:     true,
	}
	service, activityRepo, sessionRepo := setupStatsService(t, source)
	activityId, err := activityRepo.Store(context.Background(), activity.Activity{
		Name: "Running", IsActive: true, Type: activity.TypeTimeTracking,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, activityId)
	storeCompletedSession(t, sessionRepo, completedSession(activityId, testNow.Add(-3*time.Hour), 5))

	// when
	statistics, err := service.GetStatistics(context.Background(), 0)

	// then both local and external minutes count
	assert.NoError(t, err)
	assert.Equal(t, 15, statistics.TotalTimeToday)
}

func TestStatsService_GetStatistics_ExternalFailureDegrades(t *testing.T) {
	// given a configured source that cannot deliver
	source := &external.StubSource{
		StubActivityID: 1,
		Configured:     true,
		Err:            errors.New("google is unreachable"),
	}
	service, activityRepo, sessionRepo := setupStatsService(t, source)
	activityId, err := activityRepo.Store(context.Background(), activity.Activity{
		Name: "Running", IsActive: true, Type: activity.TypeTimeTracking,
	})
	assert.NoError(t, err)
	storeCompletedSession(t, sessionRepo, completedSession(activityId, testNow.Add(-3*time.Hour), 5))

	// when
	statistics, err := service.GetStatistics(context.Background(), 0)

	// then statistics are computed from local data only
	assert.NoError(t, err)
	assert.Equal(t, 5, statistics.TotalTimeToday)
}

func TestStatsService_GetStatistics_UnconfiguredSourceIsIgnored(t *testing.T) {
	// given
	source := &external.StubSource{
		StubEntries: []external.Entry{{Date: "2024-03-15", Seconds: 600}},
		Configured:  false,
	}
	service, _, _ := setupStatsService(t, source)

	// when
	statistics, err := service.GetStatistics(context.Background(), 0)

	// then
	assert.NoError(t, err)
	assert.Equal(t, 0, statistics.TotalTimeToday)
}
