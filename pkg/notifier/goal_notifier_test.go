package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/habitrail/habitrail/internal/event_bus"
	"github.com/habitrail/habitrail/pkg/activity"
	"github.com/habitrail/habitrail/pkg/session"
	"github.com/stretchr/testify/assert"
)

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(_ string, message string) error {
	f.messages = append(f.messages, message)
	return nil
}

func setupGoalNotifier(t *testing.T) (*fakeNotifier, *activity.StubActivityRepo, *session.StubSessionRepo, *event_bus.Bus) {
	t.Helper()
	fake := &fakeNotifier{}
	activityRepo := activity.NewStubActivityRepo()
	sessionRepo := session.NewStubSessionRepo()
	bus := event_bus.NewBus()
	NewGoalNotifier(fake, activityRepo, sessionRepo).Register(bus)
	return fake, activityRepo, sessionRepo, bus
}

func storeGoalActivity(t *testing.T, repo *activity.StubActivityRepo, targetMinutes int) int {
	t.Helper()
	id, err := repo.Store(context.Background(), activity.Activity{
		Name:          "Reading",
		IsActive:      true,
		Type:          activity.TypeTimeTracking,
		GoalPeriod:    activity.PeriodDaily,
		TargetMinutes: targetMinutes,
		GoalIsActive:  true,
	})
	assert.NoError(t, err)
	return id
}

func storeFinishedSession(t *testing.T, repo *session.StubSessionRepo, activityId int, date string, minutes int) session.Session {
	t.Helper()
	stored, err := repo.Store(context.Background(), session.Session{
		ActivityID: activityId,
		StartTime:  time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
		Duration:   time.Duration(minutes) * time.Minute,
		Date:       date,
		IsRunning:  false,
	})
	assert.NoError(t, err)
	return stored
}

func publishFinished(t *testing.T, bus *event_bus.Bus, s session.Session) {
	t.Helper()
	err := bus.Publish(event_bus.NewEvent(context.Background(), event_bus.SessionFinishedEvent, event_bus.SessionFinished{
		SessionID:  s.ID,
		ActivityID: s.ActivityID,
		Date:       s.Date,
		Duration:   s.Duration,
	}))
	assert.NoError(t, err)
}

func TestGoalNotifier_NotifiesWhenGoalReached(t *testing.T) {
	// given
	fake, activityRepo, sessionRepo, bus := setupGoalNotifier(t)
	activityId := storeGoalActivity(t, activityRepo, 30)
	stored := storeFinishedSession(t, sessionRepo, activityId, "2024-03-15", 30)

	// when
	publishFinished(t, bus, stored)

	// then
	assert.Len(t, fake.messages, 1)
	assert.Contains(t, fake.messages[0], "30 minute goal")
	assert.Contains(t, fake.messages[0], "Reading")
}

func TestGoalNotifier_NoNotificationBelowTarget(t *testing.T) {
	// given
	fake, activityRepo, sessionRepo, bus := setupGoalNotifier(t)
	activityId := storeGoalActivity(t, activityRepo, 30)
	stored := storeFinishedSession(t, sessionRepo, activityId, "2024-03-15", 20)

	// when
	publishFinished(t, bus, stored)

	// then
	assert.Empty(t, fake.messages)
}

func TestGoalNotifier_SumsSessionsOfTheDay(t *testing.T) {
	// given two sessions that only together reach the target
	fake, activityRepo, sessionRepo, bus := setupGoalNotifier(t)
	activityId := storeGoalActivity(t, activityRepo, 30)
	first := storeFinishedSession(t, sessionRepo, activityId, "2024-03-15", 20)
	publishFinished(t, bus, first)
	assert.Empty(t, fake.messages)

	// when
	second := storeFinishedSession(t, sessionRepo, activityId, "2024-03-15", 15)
	publishFinished(t, bus, second)

	// then
	assert.Len(t, fake.messages, 1)
}

func TestGoalNotifier_NotifiesOncePerDay(t *testing.T) {
	// given
	fake, activityRepo, sessionRepo, bus := setupGoalNotifier(t)
	activityId := storeGoalActivity(t, activityRepo, 30)
	first := storeFinishedSession(t, sessionRepo, activityId, "2024-03-15", 40)
	publishFinished(t, bus, first)

	// when another session finishes the same day
	second := storeFinishedSession(t, sessionRepo, activityId, "2024-03-15", 10)
	publishFinished(t, bus, second)

	// then
	assert.Len(t, fake.messages, 1)
}

func TestGoalNotifier_IgnoresActivitiesWithoutDailyGoal(t *testing.T) {
	// given
	fake, activityRepo, sessionRepo, bus := setupGoalNotifier(t)
	activityId, err := activityRepo.Store(context.Background(), activity.Activity{
		Name: "Reading", IsActive: true, Type: activity.TypeTimeTracking,
	})
	assert.NoError(t, err)
	stored := storeFinishedSession(t, sessionRepo, activityId, "2024-03-15", 120)

	// when
	publishFinished(t, bus, stored)

	// then
	assert.Empty(t, fake.messages)
}
