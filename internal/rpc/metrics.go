package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainrelay_rpc_requests_total",
			Help: "Total number of RPC requests by method",
		},
		[]string{"method"},
	)

	rpcErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainrelay_rpc_errors_total",
			Help: "Total number of RPC errors by method and type",
		},
		[]string{"method", "error_type"},
	)

	rpcDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chainrelay_rpc_request_duration_seconds",
			Help:    "Duration of RPC requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	rpcRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainrelay_rpc_retries_total",
			Help: "Total number of RPC retries by operation",
		},
		[]string{"operation"},
	)

	activeFeeds = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chainrelay_log_feeds_active",
			Help: "Number of open log feeds by mode",
		},
		[]string{"mode"},
	)
)

// observe records a single RPC call.
func observe(method string, start time.Time, err error) {
	rpcRequests.WithLabelValues(method).Inc()
	rpcDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		rpcErrors.WithLabelValues(method, errorType(err)).Inc()
	}
}

func rpcRetryInc(operation string) {
	rpcRetries.WithLabelValues(operation).Inc()
}

func feedOpened(mode string) {
	activeFeeds.WithLabelValues(mode).Inc()
}

func feedClosed(mode string) {
	activeFeeds.WithLabelValues(mode).Dec()
}
