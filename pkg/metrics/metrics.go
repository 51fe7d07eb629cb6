// Package metrics exposes Prometheus collectors for the dashboard.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "launch_dash"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the dashboard collectors and the registry they are
// registered with.
type Metrics struct {
	registry *prometheus.Registry

	callbackInvocations *prometheus.CounterVec
	callbackDuration    *prometheus.HistogramVec
	datasetRecords      prometheus.Gauge
	payloadExtent       *prometheus.GaugeVec
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		callbackInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "callback_invocations_total",
			Help:      "Number of dashboard callback invocations by output and outcome.",
		}, []string{"output", "outcome"}),
		callbackDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "callback_duration_seconds",
			Help:      "Latency of dashboard callback invocations.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"output"}),
		datasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Number of launch records loaded.",
		}),
		payloadExtent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_payload_mass_kg",
			Help:      "Minimum and maximum payload mass of the loaded launch records.",
		}, []string{"bound"}),
	}

	m.registry.MustRegister(
		m.callbackInvocations,
		m.callbackDuration,
		m.datasetRecords,
		m.payloadExtent,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCallback records one callback invocation.
func (m *Metrics) ObserveCallback(output string, duration time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.callbackInvocations.WithLabelValues(output, outcome).Inc()
	m.callbackDuration.WithLabelValues(output).Observe(duration.Seconds())
}

// SetDataset records the size and payload extent of the loaded dataset.
func (m *Metrics) SetDataset(records int, payloadMin, payloadMax float64) {
	m.datasetRecords.Set(float64(records))
	m.payloadExtent.WithLabelValues("min").Set(payloadMin)
	m.payloadExtent.WithLabelValues("max").Set(payloadMax)
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
