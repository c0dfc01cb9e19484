package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Render outcomes
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeBadInput  = "bad_input"
	OutcomeNoData    = "no_data"
	OutcomeLoadError = "load_error"
)

// Metrics holds the collectors of one process on a private registry
type Metrics struct {
	registry  *prometheus.Registry
	renders   *prometheus.CounterVec
	duration  prometheus.Histogram
	tableRows prometheus.Gauge
}

// New registers the render collectors plus the Go runtime collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mbti_renders_total",
			Help: "Render attempts by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mbti_render_duration_seconds",
			Help:    "Time from table load to finished layout.",
			Buckets: prometheus.DefBuckets,
		}),
		tableRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mbti_table_rows",
			Help: "Rows in the most recently loaded table.",
		}),
	}
	m.registry.MustRegister(
		m.renders,
		m.duration,
		m.tableRows,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRender records one render attempt
func (m *Metrics) ObserveRender(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// SetTableRows records the size of the last loaded table
func (m *Metrics) SetTableRows(rows int) {
	if m == nil {
		return
	}
	m.tableRows.Set(float64(rows))
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
