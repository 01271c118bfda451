package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricNamespace = "nodelist"

// Counters.
var (
	//nolint:gochecknoglobals
	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "operations_total",
		Help:      "Total number of list operations applied.",
		Namespace: metricNamespace,
	}, []string{"op"})

	//nolint:gochecknoglobals
	operationErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "operation_errors_total",
		Help:      "Total number of list operations that failed.",
		Namespace: metricNamespace,
	}, []string{"op"})

	//nolint:gochecknoglobals
	scriptsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "scripts_total",
		Help:      "Total number of scripts evaluated.",
		Namespace: metricNamespace,
	})
)

// Gauges.
var (
	//nolint:gochecknoglobals
	scriptDurationSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "script_duration_seconds",
		Help:      "Duration of the last evaluated script in seconds.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	lastDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "last_depth",
		Help:      "Depth of the list touched by the last operation.",
		Namespace: metricNamespace,
	})
)

// Init initializes and registers the metrics.
func Init(reg prometheus.Registerer) {
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: metricNamespace,
	}))

	reg.MustRegister(
		operationsTotal,
		operationErrorsTotal,
		scriptsTotal,

		scriptDurationSeconds,
		lastDepth,
	)
}

// AddOperation increments the applied operations counter for op.
func AddOperation(op string) {
	operationsTotal.WithLabelValues(op).Inc()
}

// AddOperationError increments the failed operations counter for op.
func AddOperationError(op string) {
	operationErrorsTotal.WithLabelValues(op).Inc()
}

// AddScript increments the evaluated scripts counter.
func AddScript() {
	scriptsTotal.Inc()
}

// SetScriptDuration sets the duration of the last evaluated script.
func SetScriptDuration(dur time.Duration) {
	scriptDurationSeconds.Set(dur.Seconds())
}

// SetLastDepth sets the depth of the list touched by the last operation.
func SetLastDepth(v int) {
	lastDepth.Set(float64(v))
}

// WriteTextfile writes the metrics gathered by g to path in the Prometheus
// text format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g) //nolint:wrapcheck
}
