package stats

import (
	"context"
	"time"

	"github.com/habitrail/habitrail/internal/metrics"
	"github.com/habitrail/habitrail/internal/timeutil"
	"github.com/habitrail/habitrail/internal/utils"
	"github.com/habitrail/habitrail/pkg/activity"
	"github.com/habitrail/habitrail/pkg/checkbox"
	"github.com/habitrail/habitrail/pkg/external"
	"github.com/habitrail/habitrail/pkg/session"
	log "github.com/sirupsen/logrus"
)

type StatsService interface {
	// GetStatistics computes a fresh statistics snapshot, optionally scoped
	// to one activity. An activityIdFilter of 0 means no filter.
	GetStatistics(ctx context.Context, activityIdFilter int) (Statistics, error)
}

type StatsServiceImpl struct {
	activityRepo activity.ActivityRepo
	sessionRepo  session.SessionRepo
	checkboxRepo checkbox.CheckboxRepo
	source       external.Source
	clock        utils.Clock
	weekFirstDay time.Weekday
}

func NewStatsServiceImpl(
	activityRepo activity.ActivityRepo,
	sessionRepo session.SessionRepo,
	checkboxRepo checkbox.CheckboxRepo,
	source external.Source,
	clock utils.Clock,
	weekFirstDay time.Weekday,
) *StatsServiceImpl {
	return &StatsServiceImpl{
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
		checkboxRepo: checkboxRepo,
		source:       source,
		clock:        clock,
		weekFirstDay: weekFirstDay,
	}
}

func (s *StatsServiceImpl) GetStatistics(ctx context.Context, activityIdFilter int) (Statistics, error) {
	now := s.clock.Now()

	activities, err := s.activityRepo.GetAll(ctx, true)
	if err != nil {
		return Statistics{}, err
	}
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		return Statistics{}, err
	}
	checkboxes, err := s.checkboxRepo.GetAll(ctx)
	if err != nil {
		return Statistics{}, err
	}

	input := Input{
		Activities:       activities,
		Sessions:         sessions,
		Checkboxes:       checkboxes,
		ActivityIDFilter: activityIdFilter,
	}

	if s.source != nil {
		if externalActivityId, configured := s.source.ActivityID(ctx); configured {
			from := timeutil.SubtractDays(timeutil.StartOfDay(now), streakScanDays-1)
			entries, err := s.source.Entries(ctx, from, now)
			if err != nil {
				// statistics degrade to local data only
				log.Warnf("unable to fetch external entries, computing statistics without them: %v", err)
			} else {
				input.ExternalEntries = entries
				input.ExternalActivityID = externalActivityId
				input.HasExternal = true
			}
		}
	}

	metrics.RecordStatsComputation()
	return Calculate(input, now, s.weekFirstDay)
}
