package activity

import (
	"errors"
	"fmt"
)

type Type string

const (
	TypeTimeTracking Type = "time_tracking"
	TypeCheckbox     Type = "checkbox"
)

// Period is a recurring calendar period, used both for checkbox reset
// periods and for time goals.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

var ErrInvalidActivity = errors.New("invalid activity")

// Activity is a trackable habit or task, either time-tracked or
// checkbox-based. Goal fields are meaningful only for time-tracking
// activities; ResetPeriod only for checkbox ones.
type Activity struct {
	ID       int
	Name     string
	Category string
	Color    string
	IsActive bool
	Type     Type
	// ResetPeriod controls when a checkbox activity's completion resets.
	ResetPeriod Period
	// GoalPeriod, TargetMinutes and GoalIsActive describe the embedded time
	// goal of a time-tracking activity.
	GoalPeriod    Period
	TargetMinutes int
	GoalIsActive  bool
}

func (a Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidActivity)
	}
	switch a.Type {
	case TypeTimeTracking, TypeCheckbox:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidActivity, a.Type)
	}
	if a.ResetPeriod != "" {
		if a.Type != TypeCheckbox {
			return fmt.Errorf("%w: reset period applies to checkbox activities only", ErrInvalidActivity)
		}
		if !validPeriod(a.ResetPeriod) {
			return fmt.Errorf("%w: unknown reset period %q", ErrInvalidActivity, a.ResetPeriod)
		}
	}
	if a.GoalIsActive || a.GoalPeriod != "" || a.TargetMinutes != 0 {
		if a.Type != TypeTimeTracking {
			return fmt.Errorf("%w: goals apply to time-tracking activities only", ErrInvalidActivity)
		}
		if !validPeriod(a.GoalPeriod) {
			return fmt.Errorf("%w: unknown goal period %q", ErrInvalidActivity, a.GoalPeriod)
		}
		if a.TargetMinutes <= 0 {
			return fmt.Errorf("%w: target minutes must be positive", ErrInvalidActivity)
		}
	}
	return nil
}

// HasDailyGoal reports whether the activity has an active daily time goal.
func (a Activity) HasDailyGoal() bool {
	return a.Type == TypeTimeTracking &&
		a.GoalIsActive &&
		a.GoalPeriod == PeriodDaily &&
		a.TargetMinutes > 0
}

func validPeriod(p Period) bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}
