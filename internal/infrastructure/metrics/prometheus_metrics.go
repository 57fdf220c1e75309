package metrics

import (
	"mecanica_xpto/internal/domain/entities"
	"mecanica_xpto/internal/usecase/interfaces"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServiceOrderMetrics exposes service order counters on a private registry,
// served by Handler at /metrics.
type ServiceOrderMetrics struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	sagas       *prometheus.CounterVec
}

var _ interfaces.IServiceOrderMetrics = (*ServiceOrderMetrics)(nil)

func NewServiceOrderMetrics() *ServiceOrderMetrics {
	reg := prometheus.NewRegistry()
	m := &ServiceOrderMetrics{
		registry: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "os_status_transitions_total",
			Help: "Service order status transitions, by source and target status.",
		}, []string{"from", "to"}),
		sagas: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "os_stock_saga_outcomes_total",
			Help: "Stock deduction saga outcomes.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		m.transitions,
		m.sagas,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *ServiceOrderMetrics) StatusChanged(from, to entities.ServiceOrderStatus) {
	m.transitions.WithLabelValues(string(from), string(to)).Inc()
}

func (m *ServiceOrderMetrics) StockSagaOutcome(outcome string) {
	m.sagas.WithLabelValues(outcome).Inc()
}

func (m *ServiceOrderMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
