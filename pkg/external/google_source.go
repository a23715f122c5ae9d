package external

import (
	"context"
	"fmt"
	"time"

	"github.com/habitrail/habitrail/internal/timeutil"
	log "github.com/sirupsen/logrus"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type CalendarItem struct {
	ID      string
	Summary string
}

// GoogleSource reads events from a configured Google Calendar and exposes
// them as duration entries.
type GoogleSource struct {
	auth       *GoogleAuth
	configRepo SourceConfigRepo
}

func NewGoogleSource(auth *GoogleAuth, configRepo SourceConfigRepo) *GoogleSource {
	return &GoogleSource{auth: auth, configRepo: configRepo}
}

func (s *GoogleSource) ActivityID(ctx context.Context) (int, bool) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil || cfg == nil {
		return 0, false
	}
	return cfg.ActivityID, true
}

func (s *GoogleSource) Entries(ctx context.Context, from time.Time, to time.Time) ([]Entry, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrNotConfigured
	}

	service, err := s.prepareGoogleService(ctx)
	if err != nil {
		return nil, err
	}

	googleEvents, err := service.Events.List(cfg.CalendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	return eventsToEntries(googleEvents.Items, from.Location()), nil
}

func (s *GoogleSource) ListCalendars(ctx context.Context) ([]CalendarItem, error) {
	service, err := s.prepareGoogleService(ctx)
	if err != nil {
		return nil, err
	}
	calendars, err := service.CalendarList.List().Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve calendars from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}
	var items []CalendarItem
	for _, cal := range calendars.Items {
		items = append(items, CalendarItem{
			ID:      cal.Id,
			Summary: cal.Summary,
		})
	}
	return items, nil
}

func (s *GoogleSource) prepareGoogleService(ctx context.Context) (*gcal.Service, error) {
	client, err := s.auth.getClient(ctx)
	if err != nil {
		err := fmt.Errorf("unable to retrieve Google auth client: %v", err)
		log.Error(err)
		return nil, err
	}
	if client == nil {
		log.Debug("no stored Google credentials, authentication is required")
		return nil, ErrUnauthenticated
	}
	service, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to create Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}

	return service, nil
}

// eventsToEntries converts calendar events into duration entries. The whole
// duration of an event is attributed to the day it started on, in the given
// location. Events without a usable start or end are skipped.
func eventsToEntries(googleEvents []*gcal.Event, loc *time.Location) []Entry {
	entries := make([]Entry, 0, len(googleEvents))
	for _, item := range googleEvents {
		if item.Start == nil || item.End == nil {
			continue
		}
		if item.Start.DateTime == "" {
			// all-day events carry no duration worth importing
			log.Debugf("skipping all-day calendar event: %s", item.Summary)
			continue
		}
		startTime, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			log.Warnf("skipping calendar event with malformed start %q: %v", item.Start.DateTime, err)
			continue
		}
		endTime, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			log.Warnf("skipping calendar event with malformed end %q: %v", item.End.DateTime, err)
			continue
		}
		seconds := int(endTime.Sub(startTime).Seconds())
		if seconds <= 0 {
			continue
		}
		entries = append(entries, Entry{
			Date:    timeutil.DayKey(startTime.In(loc)),
			Seconds: seconds,
		})
	}
	return entries
}
