// Package telemetry implements the Prometheus-backed translation reporter.
//
// Metrics are collected on the process-wide default registry and delivered to
// a push gateway in one best-effort push before the process exits; delivery
// failures are logged and swallowed, never surfaced to the caller.
package telemetry

import (
	"time"

	"github.com/oasisprotocol/oasis-core/go/common/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/oasisprotocol/txpool-parser/conf"
)

var (
	metricInputBytes  = promauto.NewCounter(prometheus.CounterOpts{Name: "txpool_parser_input_bytes", Help: "Size of the raw dump read from standard input."})
	metricOutputBytes = promauto.NewCounter(prometheus.CounterOpts{Name: "txpool_parser_output_bytes", Help: "Size of the encoded JSON output."})
	metricWrappers    = promauto.NewCounterVec(prometheus.CounterOpts{Name: "txpool_parser_wrapper_matches", Help: "Erased wrapper token occurrences per wrapper type."}, []string{"wrapper"})
	metricFields      = promauto.NewCounterVec(prometheus.CounterOpts{Name: "txpool_parser_field_matches", Help: "Quoted field name occurrences per field."}, []string{"field"})
	metricDuration    = promauto.NewHistogram(prometheus.HistogramOpts{Name: "txpool_parser_parse_seconds", Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}, Help: "Histogram for the dump rewrite and parse duration."})
	metricParseErrors = promauto.NewCounter(prometheus.CounterOpts{Name: "txpool_parser_parse_errors", Help: "Counter for JSON parse failures of rewritten dumps."})
	metricErrorLine   = promauto.NewGauge(prometheus.GaugeOpts{Name: "txpool_parser_parse_error_line", Help: "Line of the last JSON parse failure."})
	metricErrorColumn = promauto.NewGauge(prometheus.GaugeOpts{Name: "txpool_parser_parse_error_column", Help: "Column of the last JSON parse failure."})
)

var logger = logging.GetLogger("telemetry")

// Reporter implements convert.Reporter on the default Prometheus registry.
type Reporter struct{}

// InputBytes implements convert.Reporter.
func (Reporter) InputBytes(n int) {
	metricInputBytes.Add(float64(n))
}

// OutputBytes implements convert.Reporter.
func (Reporter) OutputBytes(n int) {
	metricOutputBytes.Add(float64(n))
}

// WrapperMatch implements convert.Reporter.
func (Reporter) WrapperMatch(wrapper string, n int) {
	metricWrappers.WithLabelValues(wrapper).Add(float64(n))
}

// FieldMatch implements convert.Reporter.
func (Reporter) FieldMatch(field string, n int) {
	metricFields.WithLabelValues(field).Add(float64(n))
}

// ParseDuration implements convert.Reporter.
func (Reporter) ParseDuration(d time.Duration) {
	metricDuration.Observe(d.Seconds())
}

// ParseError implements convert.Reporter.
func (Reporter) ParseError(line, column int) {
	metricParseErrors.Inc()
	metricErrorLine.Set(float64(line))
	metricErrorColumn.Set(float64(column))
}

// Push delivers the collected metrics to the configured push gateway. Push
// is a no-op when telemetry is not configured.
func Push(cfg *conf.TelemetryConfig) {
	if !cfg.Enabled() {
		return
	}
	p := push.New(cfg.PushAddress, cfg.JobName).Gatherer(prometheus.DefaultGatherer)
	if err := p.Push(); err != nil {
		logger.Warn("failed to push metrics", "err", err, "push_address", cfg.PushAddress)
	}
}
