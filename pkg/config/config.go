package config

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verdigris-dev/verdigris/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "verdigris.json"

	// DefaultLogLevel is the log level when none is configured.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the log format when none is configured.
	DefaultLogFormat = "text"

	// DefaultMetricsNamespace is the Prometheus namespace of scheduler metrics.
	DefaultMetricsNamespace = "verdigris"
)

// Config represents the complete verdigris.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Theme overrides the default theme.
	Theme ThemeConfig `json:"theme,omitempty" yaml:"theme,omitempty"`

	// Scheduler configures the reactive runtime.
	Scheduler SchedulerConfig `json:"scheduler,omitempty" yaml:"scheduler,omitempty"`

	// Log configures logging.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ThemeConfig overrides parts of the default theme. Empty fields keep the
// default.
type ThemeConfig struct {
	// Name is the theme name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Palette colors. Values may be hex colors or color names, including
	// names declared in Colors.
	Primary   string `json:"primary,omitempty" yaml:"primary,omitempty"`
	OnPrimary string `json:"onPrimary,omitempty" yaml:"onPrimary,omitempty"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Surface   string `json:"surface,omitempty" yaml:"surface,omitempty"`
	Border    string `json:"border,omitempty" yaml:"border,omitempty"`
	Highlight string `json:"highlight,omitempty" yaml:"highlight,omitempty"`

	// Colors adds or replaces named colors.
	Colors map[string]string `json:"colors,omitempty" yaml:"colors,omitempty" validate:"omitempty,dive,keys,required,lowercase,endkeys,color"`

	// DefaultVariant is one of filled, outline, light, subtle.
	DefaultVariant string `json:"defaultVariant,omitempty" yaml:"defaultVariant,omitempty" validate:"omitempty,oneof=filled outline light subtle"`

	// DefaultSize is a size name such as "sm" or "large".
	DefaultSize string `json:"defaultSize,omitempty" yaml:"defaultSize,omitempty" validate:"omitempty,size"`

	// DefaultPadding is a padding level name such as "none" or "md".
	DefaultPadding string `json:"defaultPadding,omitempty" yaml:"defaultPadding,omitempty" validate:"omitempty,padding"`

	// Radius is the corner radius in pixels.
	Radius *float64 `json:"radius,omitempty" yaml:"radius,omitempty" validate:"omitempty,gte=0"`

	// Spacing overrides pixels per padding level.
	Spacing map[string]float64 `json:"spacing,omitempty" yaml:"spacing,omitempty" validate:"omitempty,dive,keys,padding,endkeys,gte=0"`

	// Sizes overrides the dimensions of sizes.
	Sizes map[string]SizeScaleConfig `json:"sizes,omitempty" yaml:"sizes,omitempty" validate:"omitempty,dive,keys,size,endkeys"`
}

// SizeScaleConfig is the dimensions of one size, in pixels.
type SizeScaleConfig struct {
	FontSize float64 `json:"fontSize" yaml:"fontSize" validate:"gt=0"`
	Height   float64 `json:"height" yaml:"height" validate:"gt=0"`
	PaddingX float64 `json:"paddingX" yaml:"paddingX" validate:"gte=0"`
}

// SchedulerConfig configures the reactive runtime.
type SchedulerConfig struct {
	// MaxPasses is the pass budget of one flush (0 for the default).
	MaxPasses int `json:"maxPasses,omitempty" yaml:"maxPasses,omitempty" validate:"gte=0,lte=100000"`

	// Metrics enables Prometheus metrics.
	Metrics bool `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// MetricsNamespace is the Prometheus namespace.
	MetricsNamespace string `json:"metricsNamespace,omitempty" yaml:"metricsNamespace,omitempty" validate:"omitempty,metric_name"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=text json"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			MetricsNamespace: DefaultMetricsNamespace,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Discover finds the nearest verdigris.json at or above dir and loads it.
func Discover(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		return nil, err
	}
	return Load(root)
}

// Load reads configuration from the specified directory.
// It looks for verdigris.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. Files ending
// in .yaml or .yml are parsed as YAML, anything else as JSON. The loaded
// configuration is validated.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or pass the path of a YAML configuration")
		}
		return nil, errors.FromError(err, "E120").WithField("path", path)
	}

	cfg := New()
	if isYAML(path) {
		err = decodeYAML(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithField("path", path)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Scheduler.MetricsNamespace == "" {
		c.Scheduler.MetricsNamespace = DefaultMetricsNamespace
	}
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing verdigris.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.FromError(err, "E120")
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E121").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}
