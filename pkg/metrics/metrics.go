// Package metrics holds the Prometheus collectors of the console.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultPath is the HTTP path of the scrape endpoint.
const DefaultPath = "/metrics"

const namespace = "producer_console"

// Metrics is a set of collectors registered on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	Decisions *prometheus.CounterVec
	Queries   *prometheus.CounterVec
	QueryRows prometheus.Histogram
	Mutations *prometheus.CounterVec
	Producers *prometheus.GaugeVec
}

// New creates and registers the console collectors, plus the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authz_decisions_total",
			Help:      "Authorization decisions by kind, privilege and outcome.",
		}, []string{"kind", "privilege", "outcome"}),
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Producer listing queries by result.",
		}, []string{"result"}),
		QueryRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_matched_rows",
			Help:      "Producers matched by a listing query before pagination.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
		}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Producer store mutations by operation and result.",
		}, []string{"op", "result"}),
		Producers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "producers",
			Help:      "Producers per tenant.",
		}, []string{"tenant"}),
	}

	m.registry.MustRegister(
		m.Decisions,
		m.Queries,
		m.QueryRows,
		m.Mutations,
		m.Producers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveDecision counts an authorization outcome. Safe on a nil receiver.
func (m *Metrics) ObserveDecision(kind, privilege string, allowed bool) {
	if m == nil {
		return
	}
	m.Decisions.WithLabelValues(kind, privilege, outcome(allowed)).Inc()
}

// ObserveQuery counts a listing query and the rows it matched.
func (m *Metrics) ObserveQuery(matched int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Queries.WithLabelValues("error").Inc()
		return
	}
	m.Queries.WithLabelValues("ok").Inc()
	m.QueryRows.Observe(float64(matched))
}

// ObserveMutation counts a store mutation.
func (m *Metrics) ObserveMutation(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Mutations.WithLabelValues(op, result).Inc()
}

// SetProducers records the producer count of tenant.
func (m *Metrics) SetProducers(tenant string, n int) {
	if m == nil {
		return
	}
	m.Producers.WithLabelValues(tenant).Set(float64(n))
}

func outcome(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "denied"
}
