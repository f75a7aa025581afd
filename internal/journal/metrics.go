package journal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var recordsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chainrelay_journal_records_total",
		Help: "Total number of journal writes by result",
	},
	[]string{"result"},
)
