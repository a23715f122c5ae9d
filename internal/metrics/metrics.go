package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "habitrail",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method, route, and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "code"})

	statsComputations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "habitrail",
		Subsystem: "stats",
		Name:      "computations_total",
		Help:      "Number of statistics aggregations performed.",
	})
)

func init() {
	prometheus.MustRegister(requestDuration, statsComputations)
}

// ObserveRequest records one handled HTTP request.
func ObserveRequest(method, route string, code int, elapsed time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

// RecordStatsComputation counts one statistics aggregation.
func RecordStatsComputation() {
	statsComputations.Inc()
}

// StatusRecorder captures the status code written by a handler.
type StatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *StatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}
