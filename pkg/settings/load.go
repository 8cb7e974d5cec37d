package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel    = "info"
	defaultMaxBackups  = 3
	defaultMaxAge      = 28
	defaultMaxSize     = 100
	defaultServerMode  = "release"
	defaultServerPort  = 8080
	defaultBackend     = "heap"
	defaultRepetitions = 100
	defaultMaxPriority = 1_000_000
	defaultGenSize     = 1000
	defaultGenMaxPrio  = 100
)

// DefaultBenchSizes are the input sizes timed when none are configured.
var DefaultBenchSizes = []int{5000, 8000, 10000, 16000, 20000, 40000, 60000, 100000}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := newConfig()
	cfg.setDefaults()
	return cfg
}

// Load reads a YAML file, fills unset fields with defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := newConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section against its validation tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// newConfig presets fields whose zero value is a legal setting, so that an
// explicit zero in the file survives unmarshalling.
func newConfig() *Config {
	return &Config{
		Generator: Generator{MaxPriority: defaultGenMaxPrio},
	}
}

// setDefaults fills zero-valued fields
func (c *Config) setDefaults() {
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaultLogLevel
	}
	if c.Logger.MaxBackups == 0 {
		c.Logger.MaxBackups = defaultMaxBackups
	}
	if c.Logger.MaxAge == 0 {
		c.Logger.MaxAge = defaultMaxAge
	}
	if c.Logger.MaxSize == 0 {
		c.Logger.MaxSize = defaultMaxSize
	}

	if c.Server.Mode == "" {
		c.Server.Mode = defaultServerMode
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultServerPort
	}
	if c.Server.Backend == "" {
		c.Server.Backend = defaultBackend
	}

	if len(c.Bench.Sizes) == 0 {
		c.Bench.Sizes = append([]int(nil), DefaultBenchSizes...)
	}
	if c.Bench.Repetitions == 0 {
		c.Bench.Repetitions = defaultRepetitions
	}
	if c.Bench.MaxPriority == 0 {
		c.Bench.MaxPriority = defaultMaxPriority
	}
	if c.Bench.Parallelism == 0 {
		c.Bench.Parallelism = 1
	}

	if c.Generator.Size == 0 {
		c.Generator.Size = defaultGenSize
	}
}

// Validate checks the benchmark section on its own.
func (b *Bench) Validate() error {
	if err := validate.Struct(b); err != nil {
		return errors.Wrap(err, "invalid bench config")
	}
	return nil
}
