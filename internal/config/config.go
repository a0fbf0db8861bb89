// Package config holds the YAML configuration of the gridpath command.
//
//	search:
//	  mode: eager          # eager | extract
//	  heuristic: euclidean # euclidean | octile | zero
//	  max_expansions: 0    # 0 = unlimited
//	batch:
//	  workers: 4           # 0 = one per CPU
//	metrics:
//	  enabled: true
//	  addr: ":9090"
//	server:
//	  max_cells: 1000000      # largest grid POST /search accepts
//	  max_body_bytes: 8388608 # largest request body
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config maps the configuration file through YAML tags.
type Config struct {
	Search struct {
		Mode          string `yaml:"mode"`
		Heuristic     string `yaml:"heuristic"`
		MaxExpansions int    `yaml:"max_expansions"`
	} `yaml:"search"`

	Batch struct {
		Workers int `yaml:"workers"`
	} `yaml:"batch"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Addr    string `yaml:"addr"`
	} `yaml:"metrics"`

	Server struct {
		MaxCells     int   `yaml:"max_cells"`
		MaxBodyBytes int64 `yaml:"max_body_bytes"`
	} `yaml:"server"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Search.Mode = astar.EagerExit.String()
	cfg.Search.Heuristic = "euclidean"
	cfg.Batch.Workers = 0
	cfg.Metrics.Enabled = true
	cfg.Metrics.Addr = ":9090"
	cfg.Server.MaxCells = 1_000_000
	cfg.Server.MaxBodyBytes = 8 << 20

	return cfg
}

// Load reads path over the defaults. Only an empty path yields the
// defaults unchanged; a missing file or an unknown key is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field for a usable value.
func (c *Config) Validate() error {
	if _, err := astar.ParseMode(c.Search.Mode); err != nil {
		return fmt.Errorf("%w: search.mode: %w", ErrInvalidConfig, err)
	}
	if _, err := astar.HeuristicByName(c.Search.Heuristic); err != nil {
		return fmt.Errorf("%w: search.heuristic: %w", ErrInvalidConfig, err)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions must be >= 0, got %d", ErrInvalidConfig, c.Search.MaxExpansions)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be >= 0, got %d", ErrInvalidConfig, c.Batch.Workers)
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("%w: metrics.addr is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Server.MaxCells <= 0 {
		return fmt.Errorf("%w: server.max_cells must be > 0, got %d", ErrInvalidConfig, c.Server.MaxCells)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be > 0, got %d", ErrInvalidConfig, c.Server.MaxBodyBytes)
	}

	return nil
}

// SearchOptions converts the search section to astar options.
// The config must have passed Validate.
func (c *Config) SearchOptions() []astar.Option {
	mode, _ := astar.ParseMode(c.Search.Mode)
	h, _ := astar.HeuristicByName(c.Search.Heuristic)

	return []astar.Option{
		astar.WithMode(mode),
		astar.WithHeuristic(h),
		astar.WithMaxExpansions(c.Search.MaxExpansions),
	}
}
