package service

import "github.com/prometheus/client_golang/prometheus"

var (
	relationMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tuiter_relation_mutations_total",
			Help: "Relationship mutations by kind, operation and whether a record changed",
		},
		[]string{"kind", "op", "changed"},
	)

	counterSyncFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tuiter_counter_sync_failures_total",
			Help: "Tuit counter recomputes that failed after a relationship mutation",
		},
	)
)

func init() {
	prometheus.MustRegister(relationMutations)
	prometheus.MustRegister(counterSyncFailures)
}

func observe(kind, op string, changed bool) {
	c := "false"
	if changed {
		c = "true"
	}
	relationMutations.WithLabelValues(kind, op, c).Inc()
}
