package stats

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/habitrail/habitrail/internal/rest"
)

type DailyProgressEntryDTO struct {
	Date         string `json:"date"`
	TotalMinutes int    `json:"totalMinutes"`
}

type ActivityBreakdownEntryDTO struct {
	ActivityID   int    `json:"activityId"`
	ActivityName string `json:"activityName"`
	TotalMinutes int    `json:"totalMinutes"`
	Percentage   int    `json:"percentage"`
}

type StatisticsDTO struct {
	TotalTimeToday      int                         `json:"totalTimeToday"`
	TotalTimeWeek       int                         `json:"totalTimeWeek"`
	TotalTimeMonth      int                         `json:"totalTimeMonth"`
	StreakDays          int                         `json:"streakDays"`
	CompletedGoalsToday int                         `json:"completedGoalsToday"`
	DailyProgress       []DailyProgressEntryDTO     `json:"dailyProgress"`
	ActivityBreakdown   []ActivityBreakdownEntryDTO `json:"activityBreakdown"`
}

type StatsHandler struct {
	statsService     StatsService
	csvStatsRenderer StatsRenderer
}

func NewStatsHandler(statsService StatsService, csvStatsRenderer StatsRenderer) *StatsHandler {
	return &StatsHandler{statsService, csvStatsRenderer}
}

func (handler *StatsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	activityIdFilter := 0
	if activityIdString := r.URL.Query().Get("activityId"); activityIdString != "" {
		parsed, err := strconv.Atoi(activityIdString)
		if err != nil || parsed <= 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid activityId",
				Details: "activityId must be a positive integer",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		activityIdFilter = parsed
	}

	statistics, err := handler.statsService.GetStatistics(r.Context(), activityIdFilter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := handler.csvStatsRenderer.RenderStatistics(statistics)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(convertToJsonResponse(&statistics)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func convertToJsonResponse(statistics *Statistics) *StatisticsDTO {
	dailyProgress := make([]DailyProgressEntryDTO, 0, len(statistics.DailyProgress))
	for _, entry := range statistics.DailyProgress {
		dailyProgress = append(dailyProgress, DailyProgressEntryDTO{
			Date:         entry.Date,
			TotalMinutes: entry.TotalMinutes,
		})
	}

	breakdown := make([]ActivityBreakdownEntryDTO, 0, len(statistics.ActivityBreakdown))
	for _, entry := range statistics.ActivityBreakdown {
		breakdown = append(breakdown, ActivityBreakdownEntryDTO{
			ActivityID:   entry.ActivityID,
			ActivityName: entry.ActivityName,
			TotalMinutes: entry.TotalMinutes,
			Percentage:   entry.Percentage,
		})
	}

	return &StatisticsDTO{
		TotalTimeToday:      statistics.TotalTimeToday,
		TotalTimeWeek:       statistics.TotalTimeWeek,
		TotalTimeMonth:      statistics.TotalTimeMonth,
		StreakDays:          statistics.StreakDays,
		CompletedGoalsToday: statistics.CompletedGoalsToday,
		DailyProgress:       dailyProgress,
		ActivityBreakdown:   breakdown,
	}
}
