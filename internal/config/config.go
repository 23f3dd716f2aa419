package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/percolate/montecarlo"
	"github.com/katalvlaran/percolate/percolation"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. PERCOLATE_SEED.
const EnvPrefix = "PERCOLATE"

// Flag keys, shared by pflag and viper.
const (
	KeySeed      = "seed"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Defaults for optional settings.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// ErrUsage indicates malformed command-line input: wrong number of positional
// arguments, a non-integer argument or an unknown log level/format.
var ErrUsage = errors.New("config: usage error")

// Config is the fully resolved configuration of one run.
type Config struct {
	N         int    // grid side length
	Trials    int    // number of independent trials
	Seed      int64  // RNG seed; 0 lets the app pick a time-based seed
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json
}

// RegisterFlags declares the optional flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int64(KeySeed, 0, "RNG seed; 0 picks a time-based seed.")
	fs.String(KeyLogLevel, DefaultLogLevel, "Log level: 'debug', 'info', 'warn' or 'error'.")
	fs.String(KeyLogFormat, DefaultLogFormat, "Log format: 'text' or 'json'.")
}

// Load resolves a Config from an already parsed flag set. The two positional
// arguments of fs are the grid size and the trial count; optional settings
// come from flags, then PERCOLATE_* variables, then defaults.
// The result is validated before it is returned.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if fs.NArg() != 2 {
		return nil, fmt.Errorf("%w: expected 2 positional arguments <n> <trials>, got %d", ErrUsage, fs.NArg())
	}
	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return nil, fmt.Errorf("%w: grid size %q is not an integer", ErrUsage, fs.Arg(0))
	}
	trials, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return nil, fmt.Errorf("%w: trial count %q is not an integer", ErrUsage, fs.Arg(1))
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	// GetInt64 would turn a malformed PERCOLATE_SEED into 0.
	seed, err := cast.ToInt64E(v.Get(KeySeed))
	if err != nil {
		return nil, fmt.Errorf("%w: seed %q is not an integer", ErrUsage, v.GetString(KeySeed))
	}

	cfg := &Config{
		N:         n,
		Trials:    trials,
		Seed:      seed,
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field. A non-positive or oversized N and a
// non-positive Trials wrap montecarlo.ErrInvalidArgument; bad log settings
// wrap ErrUsage.
func (c *Config) Validate() error {
	if err := percolation.ValidateSize(c.N); err != nil {
		return fmt.Errorf("%w: %v", montecarlo.ErrInvalidArgument, err)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trial count %d must be positive", montecarlo.ErrInvalidArgument, c.Trials)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: invalid log-level %q: must be 'debug', 'info', 'warn' or 'error'", ErrUsage, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: invalid log-format %q: must be 'text' or 'json'", ErrUsage, c.LogFormat)
	}

	return nil
}
