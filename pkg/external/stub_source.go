package external

import (
	"context"
	"time"
)

// StubSource is a canned Source for tests.
type StubSource struct {
	StubEntries    []Entry
	StubActivityID int
	Configured     bool
	Err            error
}

func (s *StubSource) Entries(_ context.Context, _ time.Time, _ time.Time) ([]Entry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.StubEntries, nil
}

func (s *StubSource) ActivityID(_ context.Context) (int, bool) {
	return s.StubActivityID, s.Configured
}
