// Package observability registers the tracker's prometheus collectors.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "service",
		Name:      "operations_total",
		Help:      "Count of service operations by entity, operation and outcome.",
	}, []string{"entity", "operation", "outcome"})

	lastWriteGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "exercise_tracker",
		Subsystem: "persistence",
		Name:      "last_write_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful write to the store.",
	})
)

func init() {
	prometheus.MustRegister(operationsTotal, lastWriteGauge)
}

// RecordOperation counts a completed service operation.
func RecordOperation(entity, operation string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	operationsTotal.WithLabelValues(entity, operation, outcome).Inc()
}

// RecordWrite updates the persistence watermark gauge.
func RecordWrite(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastWriteGauge.Set(float64(ts.Unix()))
}
