package checkbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/habitrail/habitrail/internal/event_bus"
	"github.com/habitrail/habitrail/internal/timeutil"
	"github.com/habitrail/habitrail/internal/utils"
	"github.com/habitrail/habitrail/pkg/activity"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownActivity = errors.New("unknown activity")
	ErrNotCheckbox     = errors.New("activity is not checkbox-based")
	ErrInvalidDate     = errors.New("invalid date")
)

// CompletionStatus reports whether a checkbox activity is done for the
// current period of its reset cycle.
type CompletionStatus struct {
	ActivityID int
	// Period the status refers to, derived from the activity's reset period
	// (daily when unset).
	PeriodStart string
	IsCompleted bool
}

type CheckboxService interface {
	Toggle(ctx context.Context, activityId int, date string) (Checkbox, error)
	ListForDate(ctx context.Context, date string) ([]Checkbox, error)
	// CompletionForPeriod reports completion for the activity's current reset
	// period. A checkbox activity is complete when any day of the period is
	// checked.
	CompletionForPeriod(ctx context.Context, activityId int) (CompletionStatus, error)
}

type CheckboxServiceImpl struct {
	repo         CheckboxRepo
	activityRepo activity.ActivityRepo
	bus          *event_bus.Bus
	clock        utils.Clock
	weekFirstDay time.Weekday
}

func NewCheckboxServiceImpl(repo CheckboxRepo, activityRepo activity.ActivityRepo, bus *event_bus.Bus, clock utils.Clock, weekFirstDay time.Weekday) *CheckboxServiceImpl {
	return &CheckboxServiceImpl{
		repo:         repo,
		activityRepo: activityRepo,
		bus:          bus,
		clock:        clock,
		weekFirstDay: weekFirstDay,
	}
}

func (s *CheckboxServiceImpl) Toggle(ctx context.Context, activityId int, date string) (Checkbox, error) {
	if !timeutil.IsValidDay(date) {
		return Checkbox{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	act, err := s.activityRepo.FindById(ctx, activityId)
	if err != nil {
		return Checkbox{}, err
	}
	if act == nil {
		return Checkbox{}, ErrUnknownActivity
	}
	if act.Type != activity.TypeCheckbox {
		return Checkbox{}, ErrNotCheckbox
	}

	existing, err := s.repo.Find(ctx, activityId, date)
	if err != nil {
		return Checkbox{}, err
	}
	newState := existing == nil || !existing.IsChecked

	stored, err := s.repo.Upsert(ctx, activityId, date, newState)
	if err != nil {
		return Checkbox{}, err
	}

	if s.bus != nil {
		err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.CheckboxToggledEvent, event_bus.CheckboxToggled{
			ActivityID: activityId,
			Date:       date,
			IsChecked:  newState,
		}))
		if err != nil {
			log.Warnf("checkbox toggled, but a subscriber failed: %v", err)
		}
	}

	return stored, nil
}

func (s *CheckboxServiceImpl) ListForDate(ctx context.Context, date string) ([]Checkbox, error) {
	if !timeutil.IsValidDay(date) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return s.repo.ListForDate(ctx, date)
}

func (s *CheckboxServiceImpl) CompletionForPeriod(ctx context.Context, activityId int) (CompletionStatus, error) {
	act, err := s.activityRepo.FindById(ctx, activityId)
	if err != nil {
		return CompletionStatus{}, err
	}
	if act == nil {
		return CompletionStatus{}, ErrUnknownActivity
	}
	if act.Type != activity.TypeCheckbox {
		return CompletionStatus{}, ErrNotCheckbox
	}

	now := s.clock.Now()
	periodStart := timeutil.StartOfDay(now)
	switch act.ResetPeriod {
	case activity.PeriodWeekly:
		periodStart = timeutil.StartOfWeek(now, s.weekFirstDay)
	case activity.PeriodMonthly:
		periodStart = timeutil.StartOfMonth(now)
	}

	checkboxes, err := s.repo.ListForActivityBetween(ctx, activityId, timeutil.DayKey(periodStart), timeutil.DayKey(now))
	if err != nil {
		return CompletionStatus{}, err
	}
	completed := false
	for _, checkbox := range checkboxes {
		if checkbox.IsChecked {
			completed = true
			break
		}
	}

	return CompletionStatus{
		ActivityID:  activityId,
		PeriodStart: timeutil.DayKey(periodStart),
		IsCompleted: completed,
	}, nil
}
