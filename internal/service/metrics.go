package service

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeOK          = "ok"
	outcomeDegraded    = "degraded"
	outcomeError       = "error"
	outcomeUnavailable = "unavailable"
)

var operationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "bookmarkd",
		Subsystem: "llm",
		Name:      "operations_total",
		Help:      "Total façade operations by outcome",
	},
	[]string{"op", "outcome"},
)

func init() {
	prometheus.MustRegister(operationsTotal)
}

func observeOp(op, outcome string) {
	operationsTotal.WithLabelValues(op, outcome).Inc()
}
