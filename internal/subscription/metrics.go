package subscription

import (
	"github.com/goran-ethernal/ChainRelay/internal/contracts"
	pkgsub "github.com/goran-ethernal/ChainRelay/pkg/subscription"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	subscriptions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chainrelay_subscriptions",
			Help: "Number of subscriptions by contract kind and state",
		},
		[]string{"kind", "state"},
	)

	bootstrapFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainrelay_bootstrap_failures_total",
			Help: "Total number of bootstrap list queries that failed",
		},
		[]string{"operation"},
	)

	bootstrapTargets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainrelay_bootstrap_targets_total",
			Help: "Total number of contracts discovered through the bootstrap lists",
		},
		[]string{"kind"},
	)
)

func transition(kind contracts.Kind, from *pkgsub.State, to pkgsub.State) {
	if from != nil {
		subscriptions.WithLabelValues(kind.String(), from.String()).Dec()
	}
	subscriptions.WithLabelValues(kind.String(), to.String()).Inc()
}
