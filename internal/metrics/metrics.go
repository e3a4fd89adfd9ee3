package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tasktracker_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tasktracker_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	taskTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tasktracker_task_transitions_total",
		Help: "Completion flag flips by direction",
	}, []string{"transition"})
)

// ObserveHTTPRequest records an HTTP request metric. route is the route
// template, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveTransition counts a completion flag flip.
func ObserveTransition(completed bool) {
	if completed {
		taskTransitions.WithLabelValues("completed").Inc()
		return
	}
	taskTransitions.WithLabelValues("reopened").Inc()
}
