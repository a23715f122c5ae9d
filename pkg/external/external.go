package external

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUnauthenticated = errors.New("authentication with the external source is required")
	ErrNotConfigured   = errors.New("no external source is configured")
)

// Entry is a single imported duration attributed to a calendar day.
// The day is the local day the entry started on, regardless of when it ended.
type Entry struct {
	Date    string
	Seconds int
}

// Source supplies externally tracked durations for the statistics engine.
// Implementations that are not configured report ActivityID as absent, in
// which case their entries are ignored.
type Source interface {
	Entries(ctx context.Context, from time.Time, to time.Time) ([]Entry, error)
	// ActivityID returns the local activity external entries are attributed
	// to, and whether a source is configured at all.
	ActivityID(ctx context.Context) (int, bool)
}
