// Package config loads verdigris.json (or a YAML equivalent) and turns it
// into a theme, a logger and reactive runtime options.
//
// # Configuration File Structure
//
//	{
//	  "name": "showcase",
//	  "theme": {
//	    "name": "verdigris",
//	    "primary": "#3eafa8",
//	    "colors": {"brand": "#4bd5cc"},
//	    "defaultVariant": "filled",
//	    "defaultSize": "sm",
//	    "defaultPadding": "none",
//	    "spacing": {"md": 16},
//	    "sizes": {"xl": {"fontSize": 20, "height": 60, "paddingX": 32}}
//	  },
//	  "scheduler": {
//	    "maxPasses": 100,
//	    "metrics": true,
//	    "metricsNamespace": "verdigris"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
//
// Every field is optional; omitted theme fields keep the DefaultTheme value.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	th, err := cfg.BuildTheme()
//	logger := cfg.Log.NewLogger(os.Stderr)
//	rt := reactive.NewRuntime(cfg.RuntimeOptions(logger, prometheus.DefaultRegisterer)...)
package config
