// Package metrics exports package lifecycle counters to prometheus.
package metrics

import (
	"net/http"

	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "parcel"

// Metrics holds the lifecycle counters and the registry they are exported from.
type Metrics struct {
	registry *prometheus.Registry

	transitions   *prometheus.CounterVec
	failures      *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

var _ service.LifecycleMetrics = (*Metrics)(nil)

// New creates a Metrics instance backed by its own registry, with the standard
// Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return NewWithRegistry(registry)
}

// NewWithRegistry registers the lifecycle counters on registry.
func NewWithRegistry(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "package_transitions_total",
				Help:      "Total number of packages entering a lifecycle status",
			},
			[]string{"status"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "package_operation_failures_total",
				Help:      "Total number of failed package operations by failure kind",
			},
			[]string{"operation", "kind"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Total number of notification dispatch attempts by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(m.transitions, m.failures, m.notifications)

	return m
}

// Handler returns an HTTP handler for metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordTransition counts a package entering status.
func (m *Metrics) RecordTransition(status entity.PackageStatus) {
	m.transitions.WithLabelValues(status.String()).Inc()
}

// RecordFailure counts a failed operation under its domain kind, or "internal".
func (m *Metrics) RecordFailure(operation string, err error) {
	kind := "internal"
	if k, ok := domainerrors.KindOf(err); ok {
		kind = k.String()
	}

	m.failures.WithLabelValues(operation, kind).Inc()
}

// RecordNotification counts a notification dispatch outcome.
func (m *Metrics) RecordNotification(delivered bool) {
	outcome := "failed"
	if delivered {
		outcome = "delivered"
	}

	m.notifications.WithLabelValues(outcome).Inc()
}
