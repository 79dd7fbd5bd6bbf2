// Package metrics exposes report run metrics to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "warehouse"

// Recorder implements ports.ReportMetrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	runs           *prometheus.CounterVec
	failures       *prometheus.CounterVec
	runDuration    prometheus.Histogram
	lastRunOrders  prometheus.Gauge
	ordersImported prometheus.Counter
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Recorder{
		registry: registry,
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_runs_total",
				Help:      "Report generation runs by outcome.",
			},
			[]string{"status"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_failures_total",
				Help:      "Failed report runs by the stage that aborted them.",
			},
			[]string{"stage"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_run_duration_seconds",
				Help:      "Duration of successful report runs.",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
		lastRunOrders: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "report_last_run_orders",
				Help:      "Number of orders in the last successful report.",
			},
		),
		ordersImported: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_imported_total",
				Help:      "Orders stored through the import endpoint.",
			},
		),
	}

	registry.MustRegister(r.runs, r.failures, r.runDuration, r.lastRunOrders, r.ordersImported)
	return r
}

func (r *Recorder) ReportGenerated(orders int, elapsed time.Duration) {
	r.runs.WithLabelValues("success").Inc()
	r.runDuration.Observe(elapsed.Seconds())
	r.lastRunOrders.Set(float64(orders))
}

func (r *Recorder) ReportFailed(stage string) {
	r.runs.WithLabelValues("failure").Inc()
	r.failures.WithLabelValues(stage).Inc()
}

func (r *Recorder) OrdersImported(count int) {
	r.ordersImported.Add(float64(count))
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry is exposed for tests and extra collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
