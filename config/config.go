// File: config.go
// Role: run configuration for a MODIT mining invocation - defaults,
//       functional options, YAML file overrides, validation.
// Contract:
//   - Options apply left-to-right; later options override earlier ones.
//   - New applies defaults, then options, then validates; a Config
//     obtained from New is always safe to hand to the solver and IO
//     layer.
//   - Option constructors never panic; invalid values surface from New's
//     validation as InvalidArgument-class sentinels.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for the mining bounds.
const (
	DefaultNMax = 5
	DefaultEMax = 5

	// InfiniteDelta disables the time-window constraint.
	InfiniteDelta int64 = math.MaxInt64
)

// Sentinel errors; all are InvalidArgument-class per the error taxonomy
// and map to exit code 1 at the CLI boundary.
var (
	// ErrNoInput indicates no input graph path was supplied.
	ErrNoInput = errors.New("config: input graph path is required")

	// ErrBadNodeBound indicates n_max < 2.
	ErrBadNodeBound = errors.New("config: n_max must be >= 2")

	// ErrBadEdgeBound indicates e_max < 1.
	ErrBadEdgeBound = errors.New("config: e_max must be >= 1")

	// ErrBadDelta indicates a negative delta.
	ErrBadDelta = errors.New("config: delta must be >= 0")

	// ErrBadConfigFile wraps YAML file read/parse failures.
	ErrBadConfigFile = errors.New("config: cannot load config file")
)

// Config holds one run's parameters. Construct through New; the zero value
// skips defaulting and validation.
type Config struct {
	InputPath  string // graph file, required
	OutputPath string // empty means stdout
	NMax       int    // max nodes per occurrence
	EMax       int    // max edges per occurrence
	Delta      int64  // max timestamp span; InfiniteDelta disables
	Undirected bool   // treat the graph as undirected
	Verbose    bool   // progress logging
}

// Option mutates a Config before validation.
type Option func(*Config)

// New builds a Config from defaults plus opts, applied left-to-right, and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		NMax:  DefaultNMax,
		EMax:  DefaultEMax,
		Delta: InfiniteDelta,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}
	if c.NMax < 2 {
		return fmt.Errorf("n_max=%d: %w", c.NMax, ErrBadNodeBound)
	}
	if c.EMax < 1 {
		return fmt.Errorf("e_max=%d: %w", c.EMax, ErrBadEdgeBound)
	}
	if c.Delta < 0 {
		return fmt.Errorf("delta=%d: %w", c.Delta, ErrBadDelta)
	}

	return nil
}

// WithInput sets the input graph path.
func WithInput(path string) Option {
	return func(c *Config) { c.InputPath = path }
}

// WithOutput sets the output path; empty keeps stdout.
func WithOutput(path string) Option {
	return func(c *Config) { c.OutputPath = path }
}

// WithNodeBound sets n_max.
func WithNodeBound(n int) Option {
	return func(c *Config) { c.NMax = n }
}

// WithEdgeBound sets e_max.
func WithEdgeBound(e int) Option {
	return func(c *Config) { c.EMax = e }
}

// WithDelta sets the time-window span.
func WithDelta(d int64) Option {
	return func(c *Config) { c.Delta = d }
}

// WithUndirected switches the run to undirected interpretation.
func WithUndirected() Option {
	return func(c *Config) { c.Undirected = true }
}

// WithVerbose enables progress logging.
func WithVerbose() Option {
	return func(c *Config) { c.Verbose = true }
}

// fileConfig mirrors Config with pointer fields so a YAML document can
// override exactly the keys it names and leave the rest untouched.
type fileConfig struct {
	Input      *string `yaml:"input"`
	Output     *string `yaml:"output"`
	NMax       *int    `yaml:"n_max"`
	EMax       *int    `yaml:"e_max"`
	Delta      *int64  `yaml:"delta"`
	Undirected *bool   `yaml:"undirected"`
	Verbose    *bool   `yaml:"verbose"`
}

// FromFile loads a YAML override document and returns it as one Option, so
// file values slot into the usual left-to-right precedence (typically:
// defaults, then file, then explicit flags).
func FromFile(path string) (Option, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadConfigFile, path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadConfigFile, path, err)
	}

	return func(c *Config) {
		if fc.Input != nil {
			c.InputPath = *fc.Input
		}
		if fc.Output != nil {
			c.OutputPath = *fc.Output
		}
		if fc.NMax != nil {
			c.NMax = *fc.NMax
		}
		if fc.EMax != nil {
			c.EMax = *fc.EMax
		}
		if fc.Delta != nil {
			c.Delta = *fc.Delta
		}
		if fc.Undirected != nil {
			c.Undirected = *fc.Undirected
		}
		if fc.Verbose != nil {
			c.Verbose = *fc.Verbose
		}
	}, nil
}
