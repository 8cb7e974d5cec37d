package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for progress messages.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRegisterer registers the operation histogram with reg.
// Without it the histogram is kept private to the Runner.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Runner) {
		r.reg = reg
	}
}
