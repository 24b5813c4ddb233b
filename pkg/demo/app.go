package demo

import (
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/verdigris-dev/verdigris/internal/errors"
	"github.com/verdigris-dev/verdigris/pkg/config"
	"github.com/verdigris-dev/verdigris/pkg/reactive"
	"github.com/verdigris-dev/verdigris/pkg/theme"
)

// Env is what the host supplies when starting the demo from configuration.
type Env struct {
	// LogOutput receives the runtime's logs. Defaults to os.Stderr.
	LogOutput io.Writer

	// Registerer receives the scheduler metrics when the configuration
	// enables them. Defaults to the Prometheus default registerer.
	Registerer prometheus.Registerer

	// OnError observes isolated errors. Without one they are logged.
	OnError reactive.ErrorHandler
}

// App is the home page running on its own runtime.
type App struct {
	Config  *config.Config
	Theme   *theme.Theme
	Runtime *reactive.Runtime
	Page    *HomePage
}

// Start builds the theme, logger and runtime described by cfg and mounts
// the home page on it. A nil cfg means the defaults.
func Start(cfg *config.Config, sink Sink, env Env) (*App, error) {
	if cfg == nil {
		cfg = config.New()
	}
	th, err := cfg.BuildTheme()
	if err != nil {
		return nil, errors.FromError(err, "E122")
	}

	out := env.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := cfg.Log.NewLogger(out)
	if cfg.Name != "" {
		logger = logger.With("app", cfg.Name)
	}

	opts := cfg.RuntimeOptions(logger, env.Registerer)
	if env.OnError != nil {
		opts = append(opts, reactive.WithErrorHandler(env.OnError))
	}
	rt := reactive.NewRuntime(opts...)
	theme.Provide(rt.Root(), th)

	page, err := Mount(rt.Root(), sink)
	if err != nil {
		rt.Dispose()
		return nil, err
	}
	logger.Info("demo started", "theme", th.Name, "config", cfg.Path())
	return &App{Config: cfg, Theme: th, Runtime: rt, Page: page}, nil
}

// Open loads the nearest verdigris.json at or above dir and starts the demo
// with it.
func Open(dir string, sink Sink, env Env) (*App, error) {
	cfg, err := config.Discover(dir)
	if err != nil {
		return nil, err
	}
	return Start(cfg, sink, env)
}

// Stop unmounts the page and releases the runtime.
func (a *App) Stop() {
	a.Page.Unmount()
	a.Runtime.Dispose()
}
