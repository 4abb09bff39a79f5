package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OrderMetrics holds the counters the order service reports.
type OrderMetrics struct {
	OrdersCreated     prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	EventsPublished   *prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "demo_delivery",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders placed.",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "demo_delivery",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Total number of order status transitions, by target status.",
	}, []string{"status"})
	published := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "demo_delivery",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Total number of order events published, by outcome.",
	}, []string{"outcome"})

	prometheus.MustRegister(created, transitions, published)
	return &OrderMetrics{
		OrdersCreated:     created,
		StatusTransitions: transitions,
		EventsPublished:   published,
	}
}

// Handler exposes the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
