// Package metrics holds the Prometheus instruments exposed on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "service_generator"

// Registration outcomes used as the "outcome" label value.
const (
	OutcomeAccepted = "accepted"
	OutcomeNotFound = "not_found"
)

// Metrics holds all Prometheus metrics for the application.
//
// Each instance owns its own registry so tests can build as many as they
// like without duplicate registration panics.
type Metrics struct {
	Registry         *prometheus.Registry
	Registrations    *prometheus.CounterVec
	RegisterDuration prometheus.Histogram
	LastIssuedID     prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Total number of service file registration requests by outcome",
		}, []string{"outcome"}),
		RegisterDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "register_duration_seconds",
			Help:      "Time spent handling service file registrations",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		LastIssuedID: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_issued_id",
			Help:      "Most recent identifier issued by this process",
		}),
	}
}

// RecordAccepted counts an accepted registration and the id it was issued.
func (m *Metrics) RecordAccepted(id int64, elapsed time.Duration) {
	m.Registrations.WithLabelValues(OutcomeAccepted).Inc()
	m.RegisterDuration.Observe(elapsed.Seconds())
	m.LastIssuedID.Set(float64(id))
}

// RecordNotFound counts a registration rejected for missing input.
func (m *Metrics) RecordNotFound(elapsed time.Duration) {
	m.Registrations.WithLabelValues(OutcomeNotFound).Inc()
	m.RegisterDuration.Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
