package observer

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

type MetricsObserver struct {
	events *prom.CounterVec
}

// NewMetricsObserver registers an event counter labelled by operation on reg.
func NewMetricsObserver(reg prom.Registerer) *MetricsObserver {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	m := &MetricsObserver{
		events: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "listset",
			Name:      "events_total",
			Help:      "Observed events by operation",
		}, []string{"op"}),
	}
	reg.MustRegister(m.events)
	return m
}

func (m *MetricsObserver) Observe(e Event) {
	if m == nil || m.events == nil {
		return
	}
	m.events.WithLabelValues(e.Op).Inc()
}

// Counter returns the event counter for op.
func (m *MetricsObserver) Counter(op string) prom.Counter {
	return m.events.WithLabelValues(op)
}
