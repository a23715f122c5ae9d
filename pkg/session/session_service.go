package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/habitrail/habitrail/internal/event_bus"
	"github.com/habitrail/habitrail/internal/timeutil"
	"github.com/habitrail/habitrail/internal/utils"
	"github.com/habitrail/habitrail/pkg/activity"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownActivity       = errors.New("unknown activity")
	ErrNotTimeTracking       = errors.New("activity is not time-tracking")
	ErrSessionAlreadyRunning = errors.New("a session is already running for this activity")
	ErrNoRunningSession      = errors.New("no running session for this activity")
)

type SessionService interface {
	Start(ctx context.Context, activityId int) (Session, error)
	Stop(ctx context.Context, activityId int) (Session, error)
	GetCurrent(ctx context.Context, activityId int) (*Session, error)
	DiscardCurrent(ctx context.Context, activityId int) error
	ListRecent(ctx context.Context, limit int) ([]Session, error)
}

type SessionServiceImpl struct {
	repo         SessionRepo
	activityRepo activity.ActivityRepo
	bus          *event_bus.Bus
	clock        utils.Clock
}

func NewSessionServiceImpl(repo SessionRepo, activityRepo activity.ActivityRepo, bus *event_bus.Bus, clock utils.Clock) *SessionServiceImpl {
	return &SessionServiceImpl{
		repo:         repo,
		activityRepo: activityRepo,
		bus:          bus,
		clock:        clock,
	}
}

// Start begins a new running session for the given activity. The session is
// attributed to the calendar day it starts on.
func (s *SessionServiceImpl) Start(ctx context.Context, activityId int) (Session, error) {
	act, err := s.activityRepo.FindById(ctx, activityId)
	if err != nil {
		return Session{}, err
	}
	if act == nil {
		return Session{}, ErrUnknownActivity
	}
	if act.Type != activity.TypeTimeTracking {
		return Session{}, ErrNotTimeTracking
	}

	running, err := s.repo.FindRunning(ctx, activityId)
	if err != nil {
		return Session{}, err
	}
	if running != nil {
		return Session{}, ErrSessionAlreadyRunning
	}

	now := s.clock.Now()
	session := Session{
		UID:        uuid.NewString(),
		ActivityID: activityId,
		StartTime:  now,
		Date:       timeutil.DayKey(now),
		IsRunning:  true,
	}
	stored, err := s.repo.Store(ctx, session)
	if err != nil {
		return Session{}, fmt.Errorf("failed to store session: %w", err)
	}
	log.Debugf("started session %s for activity %d", stored.UID, activityId)
	return stored, nil
}

// Stop finishes the running session for the given activity, computing its
// duration from the clock.
func (s *SessionServiceImpl) Stop(ctx context.Context, activityId int) (Session, error) {
	running, err := s.repo.FindRunning(ctx, activityId)
	if err != nil {
		return Session{}, err
	}
	if running == nil {
		return Session{}, ErrNoRunningSession
	}

	now := s.clock.Now()
	duration := now.Sub(running.StartTime)
	if duration < 0 {
		duration = 0
	}
	finished, err := s.repo.Finish(ctx, running.ID, now, duration)
	if err != nil {
		return Session{}, err
	}
	if !finished {
		return Session{}, ErrNoRunningSession
	}

	running.EndTime = now
	running.Duration = duration
	running.IsRunning = false

	if s.bus != nil {
		err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.SessionFinishedEvent, event_bus.SessionFinished{
			SessionID:  running.ID,
			ActivityID: running.ActivityID,
			Date:       running.Date,
			Duration:   running.Duration,
		}))
		if err != nil {
			log.Warnf("session finished, but a subscriber failed: %v", err)
		}
	}

	return *running, nil
}

func (s *SessionServiceImpl) GetCurrent(ctx context.Context, activityId int) (*Session, error) {
	return s.repo.FindRunning(ctx, activityId)
}

// DiscardCurrent drops the running session for the activity without ever
// counting it toward statistics.
func (s *SessionServiceImpl) DiscardCurrent(ctx context.Context, activityId int) error {
	return s.repo.DeleteRunning(ctx, activityId)
}

func (s *SessionServiceImpl) ListRecent(ctx context.Context, limit int) ([]Session, error) {
	return s.repo.ListRecent(ctx, limit)
}
