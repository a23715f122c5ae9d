package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivity_Validate(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		wantErr  bool
	}{
		{
			name:     "valid time-tracking activity",
			activity: Activity{Name: "Reading", Type: TypeTimeTracking, IsActive: true},
			wantErr:  false,
		},
		{
			name: "valid time-tracking activity with goal",
			activity: Activity{
				Name: "Reading", Type: TypeTimeTracking,
				GoalPeriod: PeriodDaily, TargetMinutes: 30, GoalIsActive: true,
			},
			wantErr: false,
		},
		{
			name:     "valid checkbox activity with reset period",
			activity: Activity{Name: "Vitamins", Type: TypeCheckbox, ResetPeriod: PeriodDaily},
			wantErr:  false,
		},
		{
			name:     "missing name",
			activity: Activity{Type: TypeTimeTracking},
			wantErr:  true,
		},
		{
			name:     "unknown type",
			activity: Activity{Name: "Reading", Type: "countdown"},
			wantErr:  true,
		},
		{
			name:     "reset period on time-tracking activity",
			activity: Activity{Name: "Reading", Type: TypeTimeTracking, ResetPeriod: PeriodWeekly},
			wantErr:  true,
		},
		{
			name: "goal on checkbox activity",
			activity: Activity{
				Name: "Vitamins", Type: TypeCheckbox,
				GoalPeriod: PeriodDaily, TargetMinutes: 30, GoalIsActive: true,
			},
			wantErr: true,
		},
		{
			name: "goal without target minutes",
			activity: Activity{
				Name: "Reading", Type: TypeTimeTracking,
				GoalPeriod: PeriodDaily, GoalIsActive: true,
			},
			wantErr: true,
		},
		{
			name: "goal with unknown period",
			activity: Activity{
				Name: "Reading", Type: TypeTimeTracking,
				GoalPeriod: "yearly", TargetMinutes: 30, GoalIsActive: true,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.activity.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidActivity)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestActivity_HasDailyGoal(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		want     bool
	}{
		{
			name: "active daily goal",
			activity: Activity{
				Type: TypeTimeTracking, GoalIsActive: true,
				GoalPeriod: PeriodDaily, TargetMinutes: 30,
			},
			want: true,
		},
		{
			name: "inactive goal",
			activity: Activity{
				Type: TypeTimeTracking, GoalIsActive: false,
				GoalPeriod: PeriodDaily, TargetMinutes: 30,
			},
			want: false,
		},
		{
			name: "weekly goal does not count as daily",
			activity: Activity{
				Type: TypeTimeTracking, GoalIsActive: true,
				GoalPeriod: PeriodWeekly, TargetMinutes: 30,
			},
			want: false,
		},
		{
			name: "checkbox activity never has a time goal",
			activity: Activity{
				Type: TypeCheckbox, GoalIsActive: true,
				GoalPeriod: PeriodDaily, TargetMinutes: 30,
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.activity.HasDailyGoal())
		})
	}
}
