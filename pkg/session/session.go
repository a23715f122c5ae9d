package session

import (
	"time"
)

// Session is one timed interval of work on a time-tracking activity.
// Date is the calendar day (YYYY-MM-DD) the session is attributed to; it is
// assigned when the session starts and is deliberately not re-derived from
// StartTime by consumers, so sessions crossing midnight keep their day.
type Session struct {
	ID         int
	UID        string
	ActivityID int
	StartTime  time.Time
	// EndTime is the zero value while the session is running.
	EndTime time.Time
	// Duration is set only once the session has been stopped. A running
	// session contributes nothing to aggregates regardless of elapsed time.
	Duration  time.Duration
	Date      string
	IsRunning bool
}
