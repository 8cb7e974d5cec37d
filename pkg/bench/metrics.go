package bench

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "pqueue"
	metricsSubsystem = "bench"
)

func newDurationVec() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "operation_seconds",
		Help:      "Duration of a single priority queue operation.",
		// 10ns .. ~40ms
		Buckets: prometheus.ExponentialBuckets(1e-8, 4, 12),
	}, []string{"backend", "operation", "size"})
}

// registerDurations registers vec with reg, reusing an identical collector
// registered by an earlier Runner.
func registerDurations(reg prometheus.Registerer, vec *prometheus.HistogramVec) (*prometheus.HistogramVec, error) {
	if reg == nil {
		return vec, nil
	}
	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
		}
		return nil, errors.Wrap(err, "failed to register bench metrics")
	}
	return vec, nil
}
