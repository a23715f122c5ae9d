package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Warsaw")
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "afternoon is truncated to midnight",
			in:   time.Date(2024, 3, 15, 14, 30, 45, 123, time.UTC),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "midnight stays unchanged",
			in:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "location is preserved",
			in:   time.Date(2024, 3, 15, 23, 59, 59, 0, loc),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfDay(tt.in))
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		firstDay time.Weekday
		want     time.Time
	}{
		{
			name:     "wednesday with monday start",
			in:       time.Date(2023, 10, 18, 12, 0, 0, 0, time.UTC),
			firstDay: time.Monday,
			want:     time.Date(2023, 10, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "wednesday with sunday start",
			in:       time.Date(2023, 10, 18, 12, 0, 0, 0, time.UTC),
			firstDay: time.Sunday,
			want:     time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monday with monday start is its own week start",
			in:       time.Date(2023, 10, 16, 0, 0, 0, 0, time.UTC),
			firstDay: time.Monday,
			want:     time.Date(2023, 10, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday with monday start belongs to previous week",
			in:       time.Date(2023, 10, 22, 8, 0, 0, 0, time.UTC),
			firstDay: time.Monday,
			want:     time.Date(2023, 10, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday with sunday start is its own week start",
			in:       time.Date(2023, 10, 22, 8, 0, 0, 0, time.UTC),
			firstDay: time.Sunday,
			want:     time.Date(2023, 10, 22, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfWeek(tt.in, tt.firstDay))
		})
	}
}

func TestStartOfMonth(t *testing.T) {
	got := StartOfMonth(time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestSubtractDays(t *testing.T) {
	// crosses a month boundary
	got := SubtractDays(time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), 5)
	assert.Equal(t, time.Date(2024, 2, 26, 10, 0, 0, 0, time.UTC), got)
}

func TestDayInterval(t *testing.T) {
	dayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	start, end := DayInterval(dayStart)
	assert.Equal(t, dayStart, start)
	assert.Equal(t, dayStart.Add(24*time.Hour), end)
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2024-01-05", DayKey(time.Date(2024, 1, 5, 18, 45, 0, 0, time.UTC)))
}

func TestIsValidDay(t *testing.T) {
	assert.True(t, IsValidDay("2024-01-05"))
	assert.False(t, IsValidDay("2024-1-5"))
	assert.False(t, IsValidDay("not-a-date"))
	assert.False(t, IsValidDay(""))
}
