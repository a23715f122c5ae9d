package event_bus

import "time"

const (
	SessionFinishedEvent EventType = "session.finished"
	CheckboxToggledEvent EventType = "checkbox.toggled"
)

// SessionFinished is published when a running session is stopped.
type SessionFinished struct {
	SessionID  int
	ActivityID int
	// Date is the calendar day the session is attributed to (YYYY-MM-DD).
	Date     string
	Duration time.Duration
}

// CheckboxToggled is published when a daily checkbox changes state.
type CheckboxToggled struct {
	ActivityID int
	Date       string
	IsChecked  bool
}
