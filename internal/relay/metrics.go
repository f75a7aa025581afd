package relay

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainrelay_relay_submissions_total",
			Help: "Total number of operations sent to the store, by operation and result",
		},
		[]string{"operation", "result"},
	)

	submissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chainrelay_relay_submission_duration_seconds",
			Help:    "Duration of store requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	inFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chainrelay_relay_in_flight",
			Help: "Number of store requests currently in flight",
		},
	)
)

func observeSubmission(operation string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}

	submissions.WithLabelValues(operation, result).Inc()
	submissionDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
