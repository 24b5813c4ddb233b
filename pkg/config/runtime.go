package config

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/verdigris-dev/verdigris/pkg/reactive"
)

// RuntimeOptions returns the reactive runtime options of the scheduler
// section. Metrics are registered on reg when enabled; a nil reg means the
// default registerer. A nil logger leaves the runtime default.
func (c *Config) RuntimeOptions(logger *slog.Logger, reg prometheus.Registerer) []reactive.Option {
	opts := []reactive.Option{
		reactive.WithLogger(logger),
	}
	if c.Scheduler.MaxPasses > 0 {
		opts = append(opts, reactive.WithMaxPasses(c.Scheduler.MaxPasses))
	}
	if c.Scheduler.Metrics {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		m := reactive.NewMetrics(
			reactive.WithNamespace(c.Scheduler.MetricsNamespace),
			reactive.WithRegistry(reg),
		)
		opts = append(opts, reactive.WithMetrics(m))
	}
	return opts
}
