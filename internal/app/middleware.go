package app

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/habitrail/habitrail/internal/config"
	"github.com/habitrail/habitrail/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Request logging and latency metrics
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			recorder := &metrics.StatusRecorder{ResponseWriter: w, Status: http.StatusOK}

			next.ServeHTTP(recorder, req)

			route := req.URL.Path
			if current := mux.CurrentRoute(req); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}
			elapsed := time.Since(start)
			metrics.ObserveRequest(req.Method, route, recorder.Status, elapsed)
			log.Debugf("%s %s -> %d (%s)", req.Method, req.URL.Path, recorder.Status, elapsed)
		})
	})
}
