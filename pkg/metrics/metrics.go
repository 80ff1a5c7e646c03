// Package metrics provides the Prometheus instrumentation for the
// quotation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the application metrics.
type Collector struct {
	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	CalculationsTotal *prometheus.CounterVec

	CalculationDuration prometheus.Histogram
	BOMLines            prometheus.Histogram

	UnresolvedPartsTotal prometheus.Counter
	ClampedQuantities    prometheus.Counter
	ModuleFailuresTotal  *prometheus.CounterVec

	CatalogSize prometheus.Gauge
}

// NewCollector creates a collector registered on reg. Passing a fresh
// registry keeps tests isolated from the global default.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1.0},
			},
			[]string{"route"},
		),
		CalculationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calculations_total",
				Help:      "Total quotation calculations by outcome",
			},
			[]string{"outcome"},
		),
		CalculationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "calculation_duration_seconds",
				Help:      "Quotation calculation duration in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
		),
		BOMLines: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "bom_lines",
				Help:      "BOM line count per calculation",
				Buckets:   []float64{10, 25, 50, 75, 100, 150, 200},
			},
		),
		UnresolvedPartsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unresolved_parts_total",
				Help:      "Total BOM lines that missed the part catalog",
			},
		),
		ClampedQuantities: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "clamped_quantities_total",
				Help:      "Total formula results clamped to zero",
			},
		),
		ModuleFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "module_failures_total",
				Help:      "Total isolated formula module failures by module",
			},
			[]string{"module"},
		),
		CatalogSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_parts",
				Help:      "Number of parts in the active catalog",
			},
		),
	}
}
