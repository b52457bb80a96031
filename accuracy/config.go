// Package accuracy measures the error of the dmath functions against high
// precision big.Float oracles on deterministic samples of their domains.
package accuracy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tuneinsight/decmath/dmath"
)

// EnvPrefix is the prefix of the environment variables read by LoadConfig.
const EnvPrefix = "DECMATH"

// Config is the configuration of an accuracy run.
type Config struct {
	// Seed keys the samplers, two runs with the same seed sample the same inputs.
	Seed string `mapstructure:"seed"`
	// Samples is the number of inputs drawn per function.
	Samples int `mapstructure:"samples"`
	// Workers is the number of functions swept concurrently.
	Workers int `mapstructure:"workers"`
	// Prec is the precision in bits of the oracles.
	Prec uint `mapstructure:"prec"`
	// Places is the number of digits after the decimal point of sampled inputs.
	Places int32 `mapstructure:"places"`
	// Tolerance replaces the error bound of every function if positive.
	Tolerance float64 `mapstructure:"tolerance"`
	// Functions restricts the run to the named functions, all if empty.
	Functions []string `mapstructure:"functions"`
	// LogLevel is one of zerolog's level names.
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is either "console" or "json".
	LogFormat string `mapstructure:"log_format"`

	Logger zerolog.Logger `mapstructure:"-"`
}

// DefaultConfig returns the default configuration, with a disabled logger.
func DefaultConfig() Config {
	return Config{
		Seed:      "decmath",
		Samples:   256,
		Workers:   4,
		Prec:      256,
		Places:    12,
		Tolerance: 0,
		Functions: []string{},
		LogLevel:  "info",
		LogFormat: "console",
		Logger:    zerolog.Nop(),
	}
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	defaults := DefaultConfig()
	fs.String("config", "", "path to a YAML configuration file")
	fs.String("seed", defaults.Seed, "key of the input samplers")
	fs.Int("samples", defaults.Samples, "number of inputs per function")
	fs.Int("workers", defaults.Workers, "number of functions swept concurrently")
	fs.Uint("prec", defaults.Prec, "precision in bits of the oracles")
	fs.Int32("places", defaults.Places, "digits after the decimal point of the inputs")
	fs.Float64("tolerance", defaults.Tolerance, "error bound overriding the per function bounds")
	fs.StringSlice("functions", defaults.Functions, "functions to sweep (default all)")
	fs.String("log-level", defaults.LogLevel, "log level")
	fs.String("log-format", defaults.LogFormat, "log format (console or json)")
}

// LoadConfig reads the configuration from, by increasing priority, the
// defaults, the YAML file at path if not empty, the DECMATH_* environment
// variables and the flags of fs that were set if fs is not nil.
func LoadConfig(path string, fs *pflag.FlagSet) (cfg Config, err error) {

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("samples", defaults.Samples)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("prec", defaults.Prec)
	v.SetDefault("places", defaults.Places)
	v.SetDefault("tolerance", defaults.Tolerance)
	v.SetDefault("functions", defaults.Functions)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err = v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if fs != nil {
		for key, flag := range map[string]string{
			"seed":       "seed",
			"samples":    "samples",
			"workers":    "workers",
			"prec":       "prec",
			"places":     "places",
			"tolerance":  "tolerance",
			"functions":  "functions",
			"log_level":  "log-level",
			"log_format": "log-format",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err = v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("failed to bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Logger = zerolog.Nop()

	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return
}

// Validate checks that the configuration describes a runnable sweep.
func (cfg Config) Validate() (err error) {

	var errs []error

	if cfg.Samples < 1 {
		errs = append(errs, fmt.Errorf("samples must be positive but is %d", cfg.Samples))
	}

	if cfg.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive but is %d", cfg.Workers))
	}

	// the oracles must carry more digits than the grid of dmath
	if minPrec := uint(4 * (dmath.Precision + dmath.GuardDigits)); cfg.Prec < minPrec {
		errs = append(errs, fmt.Errorf("prec must be at least %d but is %d", minPrec, cfg.Prec))
	}

	if cfg.Places < 0 || cfg.Places > dmath.Precision {
		errs = append(errs, fmt.Errorf("places must be in [0, %d] but is %d", dmath.Precision, cfg.Places))
	}

	if cfg.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("tolerance must be non-negative but is %g", cfg.Tolerance))
	}

	if _, err = Lookup(cfg.Functions); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
