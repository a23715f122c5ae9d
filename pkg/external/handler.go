package external

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/habitrail/habitrail/pkg/activity"
	log "github.com/sirupsen/logrus"
)

type CalendarItemDto struct {
	Id      string `json:"id"`
	Summary string `json:"summary"`
}

type SourceConfigDto struct {
	CalendarId string `json:"calendarId"`
	ActivityId int    `json:"activityId"`
}

type Handler struct {
	source       *GoogleSource
	configRepo   SourceConfigRepo
	activityRepo activity.ActivityRepo
}

func NewHandler(source *GoogleSource, configRepo SourceConfigRepo, activityRepo activity.ActivityRepo) *Handler {
	return &Handler{source: source, configRepo: configRepo, activityRepo: activityRepo}
}

func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	calendars, err := h.source.ListCalendars(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	calendarItems := make([]CalendarItemDto, 0, len(calendars))
	for _, c := range calendars {
		calendarItems = append(calendarItems, CalendarItemDto{Id: c.ID, Summary: c.Summary})
	}

	if err := json.NewEncoder(w).Encode(calendarItems); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	cfg, err := h.configRepo.Get(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if cfg == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	err = json.NewEncoder(w).Encode(SourceConfigDto{CalendarId: cfg.CalendarID, ActivityId: cfg.ActivityID})
	if err != nil {
		log.Errorf("error encoding source config to JSON: %v", err)
	}
}

func (h *Handler) SetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var dto SourceConfigDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if dto.CalendarId == "" {
		http.Error(w, "calendarId is required", http.StatusBadRequest)
		return
	}

	act, err := h.activityRepo.FindById(r.Context(), dto.ActivityId)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if act == nil {
		http.Error(w, "Activity not found", http.StatusNotFound)
		return
	}
	if act.Type != activity.TypeTimeTracking {
		http.Error(w, "External entries can only be bound to a time tracking activity", http.StatusBadRequest)
		return
	}

	err = h.configRepo.Save(r.Context(), SourceConfig{CalendarID: dto.CalendarId, ActivityID: dto.ActivityId})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	err = json.NewEncoder(w).Encode(dto)
	if err != nil {
		log.Errorf("error encoding source config to JSON: %v", err)
	}
}

func (h *Handler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	if err := h.configRepo.Delete(r.Context()); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
