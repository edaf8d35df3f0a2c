// Package metrics counts what admins do with the portal pages.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	activations *prometheus.CounterVec
	operations  *prometheus.CounterVec
}

// New registers the portal collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flounder",
			Name:      "page_activations_total",
			Help:      "Pages built from the seed, by page.",
		}, []string{"page"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flounder",
			Name:      "record_operations_total",
			Help:      "Record operations performed on a page, by page and operation.",
		}, []string{"page", "op"}),
	}
	reg.MustRegister(m.activations, m.operations)
	return m
}

// Activated is safe to call on a nil *Metrics.
func (m *Metrics) Activated(page string) {
	if m == nil {
		return
	}
	m.activations.WithLabelValues(page).Inc()
}

// Op is safe to call on a nil *Metrics.
func (m *Metrics) Op(page, op string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(page, op).Inc()
}

func (m *Metrics) Activations() *prometheus.CounterVec { return m.activations }

func (m *Metrics) Operations() *prometheus.CounterVec { return m.operations }

// Handler serves the exposition format for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
