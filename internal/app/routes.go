package app

import (
	"github.com/gorilla/mux"
	"github.com/habitrail/habitrail/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Activities
	r.HandleFunc("/api/activity", deps.ActivityHandler.Create).Methods("POST")
	r.HandleFunc("/api/activity", deps.ActivityHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/activity/{activityId}", deps.ActivityHandler.Get).Methods("GET")
	r.HandleFunc("/api/activity/{activityId}", deps.ActivityHandler.Update).Methods("PUT")
	r.HandleFunc("/api/activity/{activityId}", deps.ActivityHandler.Delete).Methods("DELETE")

	// Sessions
	r.HandleFunc("/api/session", deps.SessionHandler.StartSession).Methods("POST")
	r.HandleFunc("/api/session/current/status", deps.SessionHandler.StopSession).Methods("PATCH")
	r.HandleFunc("/api/session/current", deps.SessionHandler.GetCurrentSession).Methods("GET")
	r.HandleFunc("/api/session/current", deps.SessionHandler.DiscardCurrentSession).Methods("DELETE")
	r.HandleFunc("/api/session", deps.SessionHandler.ListRecentSessions).Queries("last", "{last}").Methods("GET")

	// Daily checkboxes
	r.HandleFunc("/api/checkbox", deps.CheckboxHandler.Toggle).Methods("POST")
	r.HandleFunc("/api/checkbox", deps.CheckboxHandler.ListForDate).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/checkbox/completion", deps.CheckboxHandler.GetCompletion).Queries("activityId", "{activityId}").Methods("GET")

	// Statistics
	r.HandleFunc("/api/stats", deps.StatsHandler.GetStatistics).Methods("GET")

	// Google Calendar integration
	r.HandleFunc("/api/external/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/external/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/external/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/external/google/calendars", deps.ExternalHandler.ListCalendars).Methods("GET")
	r.HandleFunc("/api/external/configuration", deps.ExternalHandler.GetConfig).Methods("GET")
	r.HandleFunc("/api/external/configuration", deps.ExternalHandler.SetConfig).Methods("PUT")
	r.HandleFunc("/api/external/configuration", deps.ExternalHandler.DeleteConfig).Methods("DELETE")

	// Observability
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
