package stats

import (
	"math"
	"sort"
	"time"

	"github.com/habitrail/habitrail/internal/timeutil"
	"github.com/habitrail/habitrail/pkg/activity"
	"github.com/habitrail/habitrail/pkg/external"
	"github.com/habitrail/habitrail/pkg/session"
	log "github.com/sirupsen/logrus"
)

const (
	dailyProgressDays = 30
	// streakScanDays bounds the backward streak walk.
	streakScanDays = 365
)

// Calculate produces a Statistics snapshot from the given collections.
// It is a pure function of its inputs: now is the reference instant and must
// be supplied by the caller, never read from the wall clock here.
func Calculate(input Input, now time.Time, weekFirstDay time.Weekday) (Statistics, error) {
	if now.IsZero() {
		return Statistics{}, timeutil.ErrInvalidInstant
	}

	sessions := filterSessions(input.Sessions, input.ActivityIDFilter)
	externalEntries := applicableExternalEntries(input)

	dayStart := timeutil.StartOfDay(now)
	todayStart, todayEnd := timeutil.DayInterval(dayStart)
	todayKey := timeutil.DayKey(now)

	return Statistics{
		TotalTimeToday:      roundMinutes(totalMinutesBetween(sessions, externalEntries, todayStart, todayEnd)),
		TotalTimeWeek:       roundMinutes(totalMinutesFrom(sessions, externalEntries, timeutil.StartOfWeek(now, weekFirstDay))),
		TotalTimeMonth:      roundMinutes(totalMinutesFrom(sessions, externalEntries, timeutil.StartOfMonth(now))),
		StreakDays:          streakDays(sessions, externalEntries, dayStart),
		CompletedGoalsToday: completedGoalsToday(input, sessions, externalEntries, todayKey),
		DailyProgress:       dailyProgress(sessions, externalEntries, dayStart),
		ActivityBreakdown:   activityBreakdown(input.Activities, sessions, externalEntries, input.ExternalActivityID),
	}, nil
}

func filterSessions(sessions []session.Session, activityIdFilter int) []session.Session {
	if activityIdFilter == 0 {
		return sessions
	}
	filtered := make([]session.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.ActivityID == activityIdFilter {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func applicableExternalEntries(input Input) []external.Entry {
	if !input.HasExternal {
		return nil
	}
	if input.ActivityIDFilter != 0 && input.ActivityIDFilter != input.ExternalActivityID {
		return nil
	}
	entries := make([]external.Entry, 0, len(input.ExternalEntries))
	for _, e := range input.ExternalEntries {
		if !timeutil.IsValidDay(e.Date) {
			log.Warnf("skipping external entry with malformed date %q", e.Date)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// totalMinutesBetween sums tracked minutes inside the inclusive interval
// [start, end]. Sessions are matched by the instant they started; external
// entries carry only a day and are matched by day keys instead, attributing
// the whole entry to its day.
func totalMinutesBetween(sessions []session.Session, externalEntries []external.Entry, start, end time.Time) float64 {
	seconds := 0.0
	for _, s := range sessions {
		if s.IsRunning {
			continue
		}
		if s.StartTime.Before(start) || s.StartTime.After(end) {
			continue
		}
		seconds += s.Duration.Seconds()
	}
	fromKey := timeutil.DayKey(start)
	toKey := timeutil.DayKey(end.Add(-time.Nanosecond))
	for _, e := range externalEntries {
		if e.Date >= fromKey && e.Date <= toKey {
			seconds += float64(e.Seconds)
		}
	}
	return seconds / 60
}

// totalMinutesFrom is the open-ended variant: everything from start onward.
func totalMinutesFrom(sessions []session.Session, externalEntries []external.Entry, start time.Time) float64 {
	seconds := 0.0
	for _, s := range sessions {
		if s.IsRunning {
			continue
		}
		if s.StartTime.Before(start) {
			continue
		}
		seconds += s.Duration.Seconds()
	}
	fromKey := timeutil.DayKey(start)
	for _, e := range externalEntries {
		if e.Date >= fromKey {
			seconds += float64(e.Seconds)
		}
	}
	return seconds / 60
}

// streakDays walks backward from today counting consecutive days with any
// qualifying activity. An empty today does not break the streak: the walk
// skips it without incrementing, so a streak built up to yesterday survives
// until the day actually ends unused.
func streakDays(sessions []session.Session, externalEntries []external.Entry, todayStart time.Time) int {
	streak := 0
	for i := 0; i < streakScanDays; i++ {
		dayStart := timeutil.SubtractDays(todayStart, i)
		if dayQualifies(sessions, externalEntries, dayStart) {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

func dayQualifies(sessions []session.Session, externalEntries []external.Entry, dayStart time.Time) bool {
	start, end := timeutil.DayInterval(dayStart)
	for _, s := range sessions {
		if s.IsRunning {
			continue
		}
		if !s.StartTime.Before(start) && !s.StartTime.After(end) {
			return true
		}
	}
	dayKey := timeutil.DayKey(dayStart)
	for _, e := range externalEntries {
		if e.Date == dayKey {
			return true
		}
	}
	return false
}

// completedGoalsToday counts activities with an active daily goal whose
// minutes tracked today reach the target. Sessions count towards the day
// their date field names, not the day their start instant falls on.
func completedGoalsToday(input Input, sessions []session.Session, externalEntries []external.Entry, todayKey string) int {
	completed := 0
	for _, act := range input.Activities {
		if !act.HasDailyGoal() {
			continue
		}
		if input.ActivityIDFilter != 0 && input.ActivityIDFilter != act.ID {
			continue
		}
		minutes := 0.0
		for _, s := range sessions {
			if s.IsRunning || s.ActivityID != act.ID {
				continue
			}
			if s.Date == todayKey {
				minutes += s.Duration.Minutes()
			}
		}
		if input.HasExternal && act.ID == input.ExternalActivityID {
			for _, e := range externalEntries {
				if e.Date == todayKey {
					minutes += float64(e.Seconds) / 60
				}
			}
		}
		if minutes >= float64(act.TargetMinutes) {
			completed++
		}
	}
	return completed
}

// dailyProgress builds the 30-day series, oldest first, ending on the current
// day. Days without activity appear with a zero value.
func dailyProgress(sessions []session.Session, externalEntries []external.Entry, todayStart time.Time) []DailyProgressEntry {
	progress := make([]DailyProgressEntry, 0, dailyProgressDays)
	for i := dailyProgressDays - 1; i >= 0; i-- {
		dayKey := timeutil.DayKey(timeutil.SubtractDays(todayStart, i))
		minutes := 0.0
		for _, s := range sessions {
			if s.IsRunning {
				continue
			}
			if s.Date == dayKey {
				minutes += s.Duration.Minutes()
			}
		}
		for _, e := range externalEntries {
			if e.Date == dayKey {
				minutes += float64(e.Seconds) / 60
			}
		}
		progress = append(progress, DailyProgressEntry{
			Date:         dayKey,
			TotalMinutes: roundMinutes(minutes),
		})
	}
	return progress
}

// activityBreakdown accumulates per-activity totals over all time. Buckets
// stay unrounded until the final output so percentages are computed on the
// precise values.
func activityBreakdown(activities []activity.Activity, sessions []session.Session, externalEntries []external.Entry, externalActivityId int) []ActivityBreakdownEntry {
	namesById := make(map[int]string, len(activities))
	for _, act := range activities {
		namesById[act.ID] = act.Name
	}

	buckets := make(map[int]float64)
	for _, s := range sessions {
		if s.IsRunning {
			continue
		}
		if _, known := namesById[s.ActivityID]; !known {
			log.Warnf("session %d references unknown activity %d, excluding from breakdown", s.ID, s.ActivityID)
			continue
		}
		buckets[s.ActivityID] += s.Duration.Minutes()
	}
	if len(externalEntries) > 0 {
		if _, known := namesById[externalActivityId]; known {
			// the external bucket exists even when the activity has no
			// sessions of its own
			for _, e := range externalEntries {
				buckets[externalActivityId] += float64(e.Seconds) / 60
			}
		} else {
			log.Warnf("external entries reference unknown activity %d, excluding from breakdown", externalActivityId)
		}
	}

	total := 0.0
	for _, minutes := range buckets {
		total += minutes
	}

	breakdown := make([]ActivityBreakdownEntry, 0, len(buckets))
	for activityId, minutes := range buckets {
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(minutes / total * 100))
		}
		breakdown = append(breakdown, ActivityBreakdownEntry{
			ActivityID:   activityId,
			ActivityName: namesById[activityId],
			TotalMinutes: roundMinutes(minutes),
			Percentage:   percentage,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].TotalMinutes != breakdown[j].TotalMinutes {
			return breakdown[i].TotalMinutes > breakdown[j].TotalMinutes
		}
		return breakdown[i].ActivityID < breakdown[j].ActivityID
	})
	return breakdown
}

func roundMinutes(minutes float64) int {
	return int(math.Round(minutes))
}
