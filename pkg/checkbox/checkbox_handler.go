package checkbox

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/habitrail/habitrail/internal/rest"
	log "github.com/sirupsen/logrus"
)

type CheckboxHandler struct {
	service CheckboxService
}

func NewCheckboxHandler(service CheckboxService) *CheckboxHandler {
	return &CheckboxHandler{service: service}
}

type CheckboxDTO struct {
	ID         int    `json:"id"`
	ActivityID int    `json:"activityId"`
	Date       string `json:"date"`
	IsChecked  bool   `json:"isChecked"`
}

type ToggleRequestDTO struct {
	ActivityID int    `json:"activityId"`
	Date       string `json:"date"`
}

type CompletionStatusDTO struct {
	ActivityID  int    `json:"activityId"`
	PeriodStart string `json:"periodStart"`
	IsCompleted bool   `json:"isCompleted"`
}

func (h *CheckboxHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var request ToggleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	checkbox, err := h.service.Toggle(r.Context(), request.ActivityID, request.Date)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownActivity):
			writeError(w, http.StatusNotFound, "Activity not found", err)
		case errors.Is(err, ErrNotCheckbox), errors.Is(err, ErrInvalidDate):
			writeError(w, http.StatusBadRequest, "Invalid request", err)
		default:
			writeError(w, http.StatusInternalServerError, "Internal Server Error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(checkboxToDTO(checkbox))
	if err != nil {
		log.Errorf("error encoding checkbox to JSON: %v", err)
	}
}

func (h *CheckboxHandler) ListForDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	checkboxes, err := h.service.ListForDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, "Invalid date", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	dtos := make([]CheckboxDTO, 0, len(checkboxes))
	for _, checkbox := range checkboxes {
		dtos = append(dtos, checkboxToDTO(checkbox))
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(dtos)
	if err != nil {
		log.Errorf("error encoding checkboxes to JSON: %v", err)
	}
}

func (h *CheckboxHandler) GetCompletion(w http.ResponseWriter, r *http.Request) {
	activityId, err := strconv.Atoi(r.URL.Query().Get("activityId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid activityId", err)
		return
	}

	status, err := h.service.CompletionForPeriod(r.Context(), activityId)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownActivity):
			writeError(w, http.StatusNotFound, "Activity not found", err)
		case errors.Is(err, ErrNotCheckbox):
			writeError(w, http.StatusBadRequest, "Activity is not checkbox-based", err)
		default:
			writeError(w, http.StatusInternalServerError, "Internal Server Error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(CompletionStatusDTO{
		ActivityID:  status.ActivityID,
		PeriodStart: status.PeriodStart,
		IsCompleted: status.IsCompleted,
	})
	if err != nil {
		log.Errorf("error encoding completion status to JSON: %v", err)
	}
}

func checkboxToDTO(checkbox Checkbox) CheckboxDTO {
	return CheckboxDTO{
		ID:         checkbox.ID,
		ActivityID: checkbox.ActivityID,
		Date:       checkbox.Date,
		IsChecked:  checkbox.IsChecked,
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: err.Error()})
	if encodeErr != nil {
		log.Errorf("error encoding error response: %v", encodeErr)
	}
}
