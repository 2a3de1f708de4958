// Package observability holds the prometheus instrumentation of the webhook.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what one turn can do: resolve to a scene, transition,
// miss every transition, and hit the task backend.
type Metrics struct {
	Turns        *prometheus.CounterVec
	Transitions  *prometheus.CounterVec
	Fallbacks    *prometheus.CounterVec
	BackendCalls *prometheus.CounterVec
}

// New registers the counters on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Turns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "alice_turns_total",
			Help: "Turns processed, by the scene that rendered the reply.",
		}, []string{"scene"}),
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "alice_scene_transitions_total",
			Help: "Scene transitions taken.",
		}, []string{"from", "to"}),
		Fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "alice_fallbacks_total",
			Help: "Turns where no transition matched, by current scene.",
		}, []string{"scene"}),
		BackendCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "todoist_requests_total",
			Help: "Requests issued to the task backend.",
		}, []string{"operation", "status"}),
	}
}

// ObserveBackend records one backend call outcome.
func (m *Metrics) ObserveBackend(operation string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.BackendCalls.WithLabelValues(operation, status).Inc()
}
