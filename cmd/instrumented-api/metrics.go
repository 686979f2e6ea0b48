package main

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

var metricLabels = []string{"path", "method", "status"}

// Metrics owns the request and error counters and the registry they are
// exposed from. Construct one per process (or per test) with NewMetrics.
type Metrics struct {
	registry      *prometheus.Registry
	requestsTotal *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
}

// NewMetrics creates a fresh registry holding http_requests_total and
// http_errors_total.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			metricLabels,
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total HTTP 5xx",
			},
			metricLabels,
		),
	}
	m.registry.MustRegister(m.requestsTotal, m.errorsTotal)
	return m
}

// IncRequest adds one to http_requests_total for the given labels.
func (m *Metrics) IncRequest(path, method, status string) {
	m.requestsTotal.WithLabelValues(path, method, status).Inc()
}

// IncError adds one to http_errors_total for the given labels.
func (m *Metrics) IncError(path, method, status string) {
	m.errorsTotal.WithLabelValues(path, method, status).Inc()
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})
}

// WriteText renders every family in the plain-text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
