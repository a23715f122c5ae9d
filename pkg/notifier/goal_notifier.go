package notifier

import (
	"fmt"
	"sync"

	"github.com/habitrail/habitrail/internal/event_bus"
	"github.com/habitrail/habitrail/pkg/activity"
	"github.com/habitrail/habitrail/pkg/session"
	log "github.com/sirupsen/logrus"
)

// GoalNotifier watches finished sessions and notifies once per activity per
// day when a daily goal is reached.
type GoalNotifier struct {
	notifier     Notifier
	activityRepo activity.ActivityRepo
	sessionRepo  session.SessionRepo

	mu       sync.Mutex
	notified map[string]bool
}

func NewGoalNotifier(notifier Notifier, activityRepo activity.ActivityRepo, sessionRepo session.SessionRepo) *GoalNotifier {
	return &GoalNotifier{
		notifier:     notifier,
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
		notified:     make(map[string]bool),
	}
}

// Register subscribes the notifier to session events on the bus.
func (g *GoalNotifier) Register(bus *event_bus.Bus) {
	bus.Subscribe(event_bus.SessionFinishedEvent, g.onSessionFinished)
}

func (g *GoalNotifier) onSessionFinished(e event_bus.Event) error {
	finished, ok := e.Data.(event_bus.SessionFinished)
	if !ok {
		log.Warnf("unexpected payload for %s event: %T", e.Type, e.Data)
		return nil
	}
	ctx := e.Context()

	act, err := g.activityRepo.FindById(ctx, finished.ActivityID)
	if err != nil {
		return err
	}
	if act == nil || !act.HasDailyGoal() {
		return nil
	}

	sessions, err := g.sessionRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	minutes := 0.0
	for _, s := range sessions {
		if s.IsRunning || s.ActivityID != act.ID || s.Date != finished.Date {
			continue
		}
		minutes += s.Duration.Minutes()
	}
	if minutes < float64(act.TargetMinutes) {
		return nil
	}

	key := fmt.Sprintf("%d/%s", act.ID, finished.Date)
	g.mu.Lock()
	alreadyNotified := g.notified[key]
	g.notified[key] = true
	g.mu.Unlock()
	if alreadyNotified {
		return nil
	}

	message := fmt.Sprintf("You reached your %d minute goal for %s today.", act.TargetMinutes, act.Name)
	if err := g.notifier.Notify("Daily goal reached", message); err != nil {
		// notifications are best effort
		log.Warnf("unable to show goal notification: %v", err)
	}
	return nil
}
