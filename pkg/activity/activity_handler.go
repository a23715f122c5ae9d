package activity

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ActivityDTO struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category,omitempty"`
	Color         string `json:"color,omitempty"`
	IsActive      bool   `json:"isActive"`
	Type          string `json:"type"`
	ResetPeriod   string `json:"resetPeriod,omitempty"`
	GoalPeriod    string `json:"goalType,omitempty"`
	TargetMinutes int    `json:"targetMinutes,omitempty"`
	GoalIsActive  bool   `json:"goalIsActive,omitempty"`
}

type ActivityHandler struct {
	activityService ActivityService
}

func NewActivityHandler(activityService ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService}
}

func (handler *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new activity")
	w.Header().Set("Content-Type", "application/json")

	var activityDTO ActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&activityDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.activityService.Create(r.Context(), dtoToActivity(activityDTO))
	if err != nil {
		if errors.Is(err, ErrInvalidActivity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(activityToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ActivityHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	includeInactive := r.URL.Query().Has("includeInactive")

	activities, err := handler.activityService.GetAll(r.Context(), includeInactive)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	activitiesDTO := make([]ActivityDTO, 0, len(activities))
	for _, activity := range activities {
		activitiesDTO = append(activitiesDTO, activityToDTO(activity))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(activitiesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := pathId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	activity, err := handler.activityService.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if activity == nil {
		http.Error(w, "Activity not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(activityToDTO(*activity)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := pathId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var activityDTO ActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&activityDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if activityDTO.ID == 0 || activityDTO.ID != id {
		http.Error(w, "Invalid activity id in request body", http.StatusBadRequest)
		return
	}

	ok, err := handler.activityService.Update(r.Context(), dtoToActivity(activityDTO))
	if err != nil {
		if errors.Is(err, ErrInvalidActivity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Activity not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(activityDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := pathId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.activityService.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Activity not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathId(r *http.Request) (int, error) {
	idString := mux.Vars(r)["activityId"]
	id, err := strconv.ParseInt(idString, 10, 64)
	return int(id), err
}

func activityToDTO(activity Activity) ActivityDTO {
	return ActivityDTO{
		ID:            activity.ID,
		Name:          activity.Name,
		Category:      activity.Category,
		Color:         activity.Color,
		IsActive:      activity.IsActive,
		Type:          string(activity.Type),
		ResetPeriod:   string(activity.ResetPeriod),
		GoalPeriod:    string(activity.GoalPeriod),
		TargetMinutes: activity.TargetMinutes,
		GoalIsActive:  activity.GoalIsActive,
	}
}

func dtoToActivity(dto ActivityDTO) Activity {
	return Activity{
		ID:            dto.ID,
		Name:          dto.Name,
		Category:      dto.Category,
		Color:         dto.Color,
		IsActive:      dto.IsActive,
		Type:          Type(dto.Type),
		ResetPeriod:   Period(dto.ResetPeriod),
		GoalPeriod:    Period(dto.GoalPeriod),
		TargetMinutes: dto.TargetMinutes,
		GoalIsActive:  dto.GoalIsActive,
	}
}
