package app

import (
	"database/sql"

	"github.com/habitrail/habitrail/internal/config"
	"github.com/habitrail/habitrail/internal/event_bus"
	"github.com/habitrail/habitrail/internal/utils"
	"github.com/habitrail/habitrail/pkg/activity"
	"github.com/habitrail/habitrail/pkg/checkbox"
	"github.com/habitrail/habitrail/pkg/external"
	"github.com/habitrail/habitrail/pkg/notifier"
	"github.com/habitrail/habitrail/pkg/session"
	"github.com/habitrail/habitrail/pkg/stats"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.Bus

	ActivityRepo    activity.ActivityRepo
	ActivityService *activity.ActivityServiceImpl
	ActivityHandler *activity.ActivityHandler

	SessionRepo    session.SessionRepo
	SessionService *session.SessionServiceImpl
	SessionHandler *session.SessionHandler

	CheckboxRepo    checkbox.CheckboxRepo
	CheckboxService *checkbox.CheckboxServiceImpl
	CheckboxHandler *checkbox.CheckboxHandler

	GoogleAuth       *external.GoogleAuth
	SourceConfigRepo external.SourceConfigRepo
	ExternalSource   *external.GoogleSource
	ExternalHandler  *external.Handler

	StatsService     *stats.StatsServiceImpl
	CsvStatsRenderer *stats.CsvStatsRendererImpl
	StatsHandler     *stats.StatsHandler

	GoalNotifier *notifier.GoalNotifier

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.EventBus = event_bus.NewBus()

	deps.ActivityRepo = activity.NewActivityRepo(db)
	deps.ActivityService = activity.NewActivityServiceImpl(deps.ActivityRepo)
	deps.ActivityHandler = activity.NewActivityHandler(deps.ActivityService)

	deps.SessionRepo = session.NewSessionRepo(db)
	deps.SessionService = session.NewSessionServiceImpl(deps.SessionRepo, deps.ActivityRepo, deps.EventBus, deps.Clock)
	deps.SessionHandler = session.NewSessionHandler(deps.SessionService)

	deps.CheckboxRepo = checkbox.NewCheckboxRepo(db)
	deps.CheckboxService = checkbox.NewCheckboxServiceImpl(deps.CheckboxRepo, deps.ActivityRepo, deps.EventBus, deps.Clock, cfg.WeekStart())
	deps.CheckboxHandler = checkbox.NewCheckboxHandler(deps.CheckboxService)

	deps.GoogleAuth = external.NewGoogleAuth(db, cfg)
	deps.SourceConfigRepo = external.NewSourceConfigRepo(db)
	deps.ExternalSource = external.NewGoogleSource(deps.GoogleAuth, deps.SourceConfigRepo)
	deps.ExternalHandler = external.NewHandler(deps.ExternalSource, deps.SourceConfigRepo, deps.ActivityRepo)

	deps.StatsService = stats.NewStatsServiceImpl(
		deps.ActivityRepo,
		deps.SessionRepo,
		deps.CheckboxRepo,
		deps.ExternalSource,
		deps.Clock,
		cfg.WeekStart(),
	)
	deps.CsvStatsRenderer = stats.NewCsvStatsRenderer()
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService, deps.CsvStatsRenderer)

	if cfg.Notifications.Enabled {
		deps.GoalNotifier = notifier.NewGoalNotifier(notifier.NewDesktopNotifier(), deps.ActivityRepo, deps.SessionRepo)
		deps.GoalNotifier.Register(deps.EventBus)
	}

	return deps
}
