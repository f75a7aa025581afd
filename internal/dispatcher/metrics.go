package dispatcher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsRouted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainrelay_events_routed_total",
			Help: "Total number of events translated and submitted, by contract kind and event",
		},
		[]string{"kind", "event"},
	)

	eventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainrelay_events_dropped_total",
			Help: "Total number of logs dropped before reaching a handler, by contract kind and reason",
		},
		[]string{"kind", "reason"},
	)

	handlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainrelay_handler_errors_total",
			Help: "Total number of handler failures, by contract kind and event",
		},
		[]string{"kind", "event"},
	)

	handlerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chainrelay_handler_duration_seconds",
			Help:    "Time spent translating one event, including auxiliary reads",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"event"},
	)

	pendingSubmissions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chainrelay_pending_submissions",
			Help: "Number of operations handed to the relay client and not yet completed",
		},
	)
)

func observeHandler(event string, start time.Time) {
	handlerDuration.WithLabelValues(event).Observe(time.Since(start).Seconds())
}
