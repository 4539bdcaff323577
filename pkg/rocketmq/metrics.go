package rocketmq

import "github.com/prometheus/client_golang/prometheus"

var repairMessages = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tuiter_counter_repair_messages_total",
		Help: "Counter repair messages by stage (publish, consume) and result",
	},
	[]string{"stage", "result"},
)

func init() {
	prometheus.MustRegister(repairMessages)
}

func countRepair(stage string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	repairMessages.WithLabelValues(stage, result).Inc()
}
