package external

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gcal "google.golang.org/api/calendar/v3"
)

func TestEventsToEntries(t *testing.T) {
	// given
	events := []*gcal.Event{
		{
			Summary: "Morning run",
			Start:   &gcal.EventDateTime{DateTime: "2024-03-15T07:00:00Z"},
			End:     &gcal.EventDateTime{DateTime: "2024-03-15T07:45:00Z"},
		},
		{
			Summary: "Late gym session crossing midnight",
			Start:   &gcal.EventDateTime{DateTime: "2024-03-15T23:30:00Z"},
			End:     &gcal.EventDateTime{DateTime: "2024-03-16T00:30:00Z"},
		},
	}

	// when
	entries := eventsToEntries(events, time.UTC)

	// then
	assert.Len(t, entries, 2)
	assert.Equal(t, Entry{Date: "2024-03-15", Seconds: 2700}, entries[0])
	// whole duration is attributed to the start day
	assert.Equal(t, Entry{Date: "2024-03-15", Seconds: 3600}, entries[1])
}

func TestEventsToEntries_SkipsUnusableEvents(t *testing.T) {
	// given
	events := []*gcal.Event{
		{Summary: "no times"},
		{
			Summary: "all-day",
			Start:   &gcal.EventDateTime{Date: "2024-03-15"},
			End:     &gcal.EventDateTime{Date: "2024-03-16"},
		},
		{
			Summary: "malformed start",
			Start:   &gcal.EventDateTime{DateTime: "not-a-time"},
			End:     &gcal.EventDateTime{DateTime: "2024-03-15T08:00:00Z"},
		},
		{
			Summary: "zero duration",
			Start:   &gcal.EventDateTime{DateTime: "2024-03-15T08:00:00Z"},
			End:     &gcal.EventDateTime{DateTime: "2024-03-15T08:00:00Z"},
		},
	}

	// when
	entries := eventsToEntries(events, time.UTC)

	// then
	assert.Empty(t, entries)
}

func TestEventsToEntries_ConvertsToLocation(t *testing.T) {
	// given
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	assert.NoError(t, err)
	events := []*gcal.Event{
		{
			// 23:30 UTC is already the next day in Warsaw (UTC+1)
			Start: &gcal.EventDateTime{DateTime: "2024-03-15T23:30:00Z"},
			End:   &gcal.EventDateTime{DateTime: "2024-03-16T00:00:00Z"},
		},
	}

	// when
	entries := eventsToEntries(events, warsaw)

	// then
	assert.Len(t, entries, 1)
	assert.Equal(t, "2024-03-16", entries[0].Date)
}
