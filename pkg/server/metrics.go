package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	operations *prometheus.CounterVec
	size       prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pqueue",
			Subsystem: "http",
			Name:      "operations_total",
			Help:      "Queue operations served, by operation and result.",
		}, []string{"operation", "result"}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pqueue",
			Subsystem: "http",
			Name:      "queue_size",
			Help:      "Number of elements currently queued.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.operations,
		m.size,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.operations.WithLabelValues(op, result).Inc()
}
