// Package imconfig provides the viper-backed configuration shared by the
// selectors and simulators: default worker count, log level, and random
// seed. It mirrors the Config type in the teacher clustering service's
// louvain and scar packages (same default keys, same CreateLogger shape).
package imconfig

import (
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages library-wide defaults using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a Config populated with sensible defaults.
func New() *Config {
	v := viper.New()

	v.SetDefault("performance.num_workers", runtime.NumCPU())
	v.SetDefault("performance.use_multithread", true)

	v.SetDefault("algorithm.random_seed", time.Now().UnixNano())

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.enable_progress", true)

	return &Config{v: v}
}

// LoadFromFile merges configuration from a file (YAML/JSON/TOML, per
// viper's extension sniffing) over the defaults.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set allows ad hoc overrides, e.g. c.Set("algorithm.random_seed", int64(42)).
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// NumWorkers returns the configured worker count for multithreaded Monte
// Carlo simulation. Defaults to runtime.NumCPU().
func (c *Config) NumWorkers() int { return c.v.GetInt("performance.num_workers") }

// UseMultithread reports whether simulators should default to the
// multithreaded code path.
func (c *Config) UseMultithread() bool { return c.v.GetBool("performance.use_multithread") }

// RandomSeed returns the default user seed for Monte Carlo simulation.
func (c *Config) RandomSeed() int64 { return c.v.GetInt64("algorithm.random_seed") }

// LogLevel returns the configured zerolog level name.
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// EnableProgress reports whether selectors should log per-round progress.
func (c *Config) EnableProgress() bool { return c.v.GetBool("logging.enable_progress") }

// CreateLogger builds a zerolog.Logger at the configured level, tagged
// with the given service name.
func (c *Config) CreateLogger(service string) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", service).Logger()
}
