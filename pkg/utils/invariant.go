// Package utils carries the ambient pieces shared by the rest of the
// module: invariant reporting, logging setup, build information and small
// generic helpers.
//
// Invariants are conditions that must hold unless there is a bug in our own
// code: a cursor standing on a nil node, an index outside its list, a chain
// whose links stopped being symmetric. They are what you would `panic()` on,
// except a library embedded in a long-running process should not take the
// process down over them. A violation is recorded on a monitoring counter
// and logged; callers still handle the broken case themselves (early return,
// zero value). Under test builds a violation panics instead, so bugs cannot
// hide behind the counter.
//
// Do not raise invariants for conditions driven by callers or the outside
// world; an out-of-range index coming over the wire is input validation, not
// an invariant.

package utils

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promclient "github.com/prometheus/client_model/go"
)

var invariantsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "invariants_total",
	Help: "The total number of invariant violations",
}, []string{
	"module", // The module in which this invariant occurred.
	"type",   // The type of the invariant that occurred.
})

// RaiseInvariant records an invariant violation on the monitoring counter
// and the log. In test mode it panics so the violating test fails loudly.
func RaiseInvariant(module, invariantType, msg string, args ...any) {
	invariantsMetric.WithLabelValues(module, invariantType).Inc()
	slog.With("invariant", invariantType, "module", module).Error(msg, args...)
	if IsTestMode {
		panic("invariant violated: " + invariantType)
	}
}

// GetMetricValue returns the current value of the invariant counter for the
// given module and invariant type.
func GetMetricValue(module, invariantType string) int {
	var metric = &promclient.Metric{}
	if err := invariantsMetric.WithLabelValues(module, invariantType).Write(metric); err != nil {
		slog.Error(err.Error())
		return 0
	}
	return int(metric.Counter.GetValue())
}
