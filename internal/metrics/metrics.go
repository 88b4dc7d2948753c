package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	StateWrites = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "coach_state_writes_total", Help: "Total persisted state documents"},
	)
	StateWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "coach_state_write_failures_total", Help: "Total rejected state writes"},
	)
	StateReadRecoveries = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "coach_state_read_recoveries_total", Help: "Total loads that fell back to the default state"},
	)
	Mutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "coach_state_mutations_total", Help: "State mutations by operation and outcome"},
		[]string{"operation", "outcome"},
	)
	GenerationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "coach_generation_requests_total", Help: "Generation provider calls by kind and outcome"},
		[]string{"kind", "outcome"},
	)
	GenerationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coach_generation_duration_seconds",
			Help:    "Latency of generation provider calls",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"kind"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "coach_http_requests_total", Help: "HTTP requests by method, route and status"},
		[]string{"method", "route", "status"},
	)
	EventSubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "coach_event_subscribers", Help: "Open state-changed subscriptions"},
	)
)

var registerOnce sync.Once

// Register adds all collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			StateWrites,
			StateWriteFailures,
			StateReadRecoveries,
			Mutations,
			GenerationRequests,
			GenerationDuration,
			HTTPRequests,
			EventSubscribers,
		)
	})
}
