// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vantage"

var (
	// ConfigTransitions counts committed reducer transitions by action type
	ConfigTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "config",
		Name:      "transitions_total",
		Help:      "Number of committed configuration transitions.",
	}, []string{"action"})

	// LegacyWrites counts deferred writes to the legacy store
	LegacyWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "config",
		Name:      "legacy_writes_total",
		Help:      "Number of deferred writes to the legacy configuration store.",
	}, []string{"operation", "result"})

	// LegacyPatches counts change notifications received from the legacy store
	LegacyPatches = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "config",
		Name:      "legacy_patches_total",
		Help:      "Number of change notifications received from the legacy store.",
	})

	// FieldLookups counts field registry lookups by outcome
	FieldLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fields",
		Name:      "lookups_total",
		Help:      "Number of field metadata lookups.",
	}, []string{"result"})
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultFound   = "found"
	ResultMissing = "missing"
)

var registry = newRegistry()

func newRegistry() *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		ConfigTransitions,
		LegacyWrites,
		LegacyPatches,
		FieldLookups,
	)
	return r
}

// Registry returns the registry every collector of the service is bound to
func Registry() *prometheus.Registry {
	return registry
}

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
