// Package metrics records delivery activity for Prometheus.
//
// PrometheusRecorder and NoopRecorder both satisfy services.Recorder. Recording
// never blocks and never returns errors; a collector that fails to register is
// logged and left unregistered.
package metrics

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric names.
const (
	DeliveriesAddedTotal = "deliverytracker_deliveries_added_total"
	DeliveryCost         = "deliverytracker_delivery_cost"
	ReportsRenderedTotal = "deliverytracker_reports_rendered_total"
	ReportDeliveries     = "deliverytracker_report_deliveries"
)

// PrometheusRecorder implements services.Recorder with Prometheus collectors.
type PrometheusRecorder struct {
	logger *slog.Logger

	deliveriesAdded  *prometheus.CounterVec
	deliveryCost     *prometheus.HistogramVec
	reportsRendered  prometheus.Counter
	reportDeliveries prometheus.Gauge
}

// NewPrometheusRecorder creates the collectors and registers them with reg.
// A nil logger falls back to slog.Default.
func NewPrometheusRecorder(reg prometheus.Registerer, logger *slog.Logger) *PrometheusRecorder {
	if logger == nil {
		logger = slog.Default()
	}

	r := &PrometheusRecorder{
		logger: logger.With("component", "metrics"),
		deliveriesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: DeliveriesAddedTotal,
			Help: "Total number of deliveries registered, by delivery kind.",
		}, []string{"kind"}),
		deliveryCost: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    DeliveryCost,
			Help:    "Cost of registered deliveries, by delivery kind.",
			Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100, 250},
		}, []string{"kind"}),
		reportsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: ReportsRenderedTotal,
			Help: "Total number of delivery reports rendered.",
		}),
		reportDeliveries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: ReportDeliveries,
			Help: "Number of deliveries in the most recent report.",
		}),
	}

	r.register(reg, r.deliveriesAdded, DeliveriesAddedTotal)
	r.register(reg, r.deliveryCost, DeliveryCost)
	r.register(reg, r.reportsRendered, ReportsRenderedTotal)
	r.register(reg, r.reportDeliveries, ReportDeliveries)

	return r
}

func (r *PrometheusRecorder) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if err := reg.Register(c); err != nil {
		r.logger.Warn("failed to register collector", "metric", name, "error", err)
	}
}

// DeliveryAdded counts one delivery of kind and observes its cost.
func (r *PrometheusRecorder) DeliveryAdded(kind string, cost float64) {
	r.deliveriesAdded.WithLabelValues(kind).Inc()
	r.deliveryCost.WithLabelValues(kind).Observe(cost)
}

// ReportRendered counts one report and remembers how many deliveries it listed.
func (r *PrometheusRecorder) ReportRendered(count int) {
	r.reportsRendered.Inc()
	r.reportDeliveries.Set(float64(count))
}
