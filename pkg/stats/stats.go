package stats

import (
	"github.com/habitrail/habitrail/pkg/activity"
	"github.com/habitrail/habitrail/pkg/checkbox"
	"github.com/habitrail/habitrail/pkg/external"
	"github.com/habitrail/habitrail/pkg/session"
)

// DailyProgressEntry is one day of the 30-day progress series.
type DailyProgressEntry struct {
	Date         string
	TotalMinutes int
}

type ActivityBreakdownEntry struct {
	ActivityID   int
	ActivityName string
	TotalMinutes int
	Percentage   int
}

// Statistics is an ephemeral snapshot, recomputed on every request and never
// persisted. All totals are whole minutes, rounded at the point of output.
type Statistics struct {
	TotalTimeToday      int
	TotalTimeWeek       int
	TotalTimeMonth      int
	StreakDays          int
	CompletedGoalsToday int
	// DailyProgress always holds exactly 30 entries, oldest first, the last
	// one being the current day.
	DailyProgress     []DailyProgressEntry
	ActivityBreakdown []ActivityBreakdownEntry
}

// Input bundles the collections the aggregation runs over. Nil collections
// are treated as empty. The aggregation only reads them.
type Input struct {
	Activities []activity.Activity
	Sessions   []session.Session
	// Checkboxes never contribute to time totals. They are carried for
	// goal-adjacent views built next to the time statistics.
	Checkboxes      []checkbox.Checkbox
	ExternalEntries []external.Entry
	// ExternalActivityID is the activity external entries count towards.
	// Only meaningful when HasExternal is set.
	ExternalActivityID int
	HasExternal        bool
	// ActivityIDFilter restricts the session set to one activity when
	// non-zero. External entries are included only when the filter is absent
	// or names the external activity.
	ActivityIDFilter int
}
