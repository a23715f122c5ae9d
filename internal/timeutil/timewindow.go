package timeutil

import (
	"errors"
	"time"
)

// DayFormat is the wire format of calendar-day values. Sessions, checkboxes
// and external entries all attribute work to a day using this format, which
// is compared by string equality and never re-derived from instants.
const DayFormat = "2006-01-02"

var ErrInvalidInstant = errors.New("invalid reference instant")

// StartOfDay truncates t to the beginning of its calendar day, keeping the
// location of t.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// StartOfWeek truncates t to the beginning of the week containing it.
// The first day of a week is configurable; statistics differ at week
// boundaries depending on it.
func StartOfWeek(t time.Time, firstDay time.Weekday) time.Time {
	day := StartOfDay(t)
	diff := int(day.Weekday()) - int(firstDay)
	if diff < 0 {
		diff += 7
	}
	return day.AddDate(0, 0, -diff)
}

// StartOfMonth truncates t to the first day of its month.
func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// SubtractDays shifts t back by n whole calendar days.
func SubtractDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

// DayInterval returns the inclusive interval covering the calendar day that
// starts at dayStart: [dayStart, dayStart+24h].
func DayInterval(dayStart time.Time) (time.Time, time.Time) {
	return dayStart, dayStart.Add(24 * time.Hour)
}

// DayKey formats t as a calendar-day string.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a calendar-day string in the given location.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, loc)
}

// IsValidDay reports whether s is a well-formed calendar-day string.
// Malformed day values in records are excluded from aggregation rather than
// aborting a whole computation.
func IsValidDay(s string) bool {
	_, err := time.Parse(DayFormat, s)
	return err == nil
}
