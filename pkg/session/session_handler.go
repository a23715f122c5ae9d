package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/habitrail/habitrail/internal/rest"
	log "github.com/sirupsen/logrus"
)

type SessionDTO struct {
	ID         int        `json:"id"`
	UID        string     `json:"uid"`
	ActivityID int        `json:"activityId"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	// Duration is reported in seconds and present only for stopped sessions.
	Duration  *int   `json:"duration,omitempty"`
	Date      string `json:"date"`
	IsRunning bool   `json:"isRunning"`
}

type startSessionRequest struct {
	ActivityID int `json:"activityId"`
}

type SessionHandler struct {
	sessionService SessionService
}

func NewSessionHandler(sessionService SessionService) *SessionHandler {
	return &SessionHandler{sessionService}
}

func (handler *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	log.Debug("Starting new session")
	w.Header().Set("Content-Type", "application/json")

	var request startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if request.ActivityID == 0 {
		writeError(w, http.StatusBadRequest, "Missing activityId", "")
		return
	}

	session, err := handler.sessionService.Start(r.Context(), request.ActivityID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownActivity):
			writeError(w, http.StatusNotFound, "Activity not found", "")
		case errors.Is(err, ErrNotTimeTracking), errors.Is(err, ErrSessionAlreadyRunning):
			writeError(w, http.StatusConflict, err.Error(), "")
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(sessionToDTO(session)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *SessionHandler) StopSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	activityId, ok := queryActivityId(w, r)
	if !ok {
		return
	}

	session, err := handler.sessionService.Stop(r.Context(), activityId)
	if err != nil {
		if errors.Is(err, ErrNoRunningSession) {
			writeError(w, http.StatusNotFound, "No running session", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sessionToDTO(session)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *SessionHandler) GetCurrentSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	activityId, ok := queryActivityId(w, r)
	if !ok {
		return
	}

	session, err := handler.sessionService.GetCurrent(r.Context(), activityId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if session == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sessionToDTO(*session)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *SessionHandler) DiscardCurrentSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	activityId, ok := queryActivityId(w, r)
	if !ok {
		return
	}

	if err := handler.sessionService.DiscardCurrent(r.Context(), activityId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *SessionHandler) ListRecentSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	limit := 10
	if limitString := r.URL.Query().Get("last"); limitString != "" {
		parsed, err := strconv.Atoi(limitString)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid last parameter", "last must be a positive integer")
			return
		}
		limit = parsed
	}

	sessions, err := handler.sessionService.ListRecent(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sessionsDTO := make([]SessionDTO, 0, len(sessions))
	for _, session := range sessions {
		sessionsDTO = append(sessionsDTO, sessionToDTO(session))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sessionsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func queryActivityId(w http.ResponseWriter, r *http.Request) (int, bool) {
	activityIdString := r.URL.Query().Get("activityId")
	activityId, err := strconv.Atoi(activityIdString)
	if err != nil || activityId <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid activityId", "activityId must be a positive integer")
		return 0, false
	}
	return activityId, true
}

func writeError(w http.ResponseWriter, status int, message string, details string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func sessionToDTO(session Session) SessionDTO {
	dto := SessionDTO{
		ID:         session.ID,
		UID:        session.UID,
		ActivityID: session.ActivityID,
		StartTime:  session.StartTime,
		Date:       session.Date,
		IsRunning:  session.IsRunning,
	}
	if !session.EndTime.IsZero() {
		endTime := session.EndTime
		dto.EndTime = &endTime
	}
	if !session.IsRunning {
		seconds := int(session.Duration.Seconds())
		dto.Duration = &seconds
	}
	return dto
}
