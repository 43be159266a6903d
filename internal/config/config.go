// Package config loads maze generation settings from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/growmaze/internal/maze"
	"github.com/samdwyer/growmaze/internal/theme"
)

const (
	DefaultWidth  = 16
	DefaultHeight = 8
)

// ErrInvalidConfig is returned for values that cannot be parsed or used.
var ErrInvalidConfig = errors.New("invalid config")

// ViewMode selects between printing text and opening the terminal viewer.
type ViewMode string

const (
	ViewOff  ViewMode = "off"  // Always print text
	ViewOn   ViewMode = "on"   // Always open the viewer
	ViewAuto ViewMode = "auto" // Open the viewer when stdout is a terminal
)

// Set implements flag.Value.
func (v *ViewMode) Set(s string) error {
	switch ViewMode(s) {
	case ViewOff, ViewOn, ViewAuto:
		*v = ViewMode(s)
		return nil
	}
	return fmt.Errorf("%w: view mode %q (want off, on or auto)", ErrInvalidConfig, s)
}

func (v *ViewMode) String() string {
	return string(*v)
}

// Config holds maze generation options.
type Config struct {
	Width  int
	Height int

	// Seed for random number generation. Used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Theme     string   // Glyph theme id
	Exit      bool     // Open an exit through the right border of the last row
	View      ViewMode // Output mode
	Telemetry bool     // Export traces over OTLP
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Theme:  theme.DefaultID,
		View:   ViewOff,
	}
}

// Load reads a .env file if present, then the MAZE_* environment variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("[CONFIG] [INFO] .env file not loaded: %v", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a config from defaults overridden by lookup.
func FromEnv(lookup func(key string) (string, bool)) (Config, error) {
	cfg := Default()

	if err := envInt(lookup, "MAZE_WIDTH", &cfg.Width); err != nil {
		return cfg, err
	}
	if err := envInt(lookup, "MAZE_HEIGHT", &cfg.Height); err != nil {
		return cfg, err
	}
	if v, ok := lookup("MAZE_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: MAZE_SEED must be an integer: %v", ErrInvalidConfig, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup("MAZE_THEME"); ok {
		cfg.Theme = v
	}
	if err := envBool(lookup, "MAZE_EXIT", &cfg.Exit); err != nil {
		return cfg, err
	}
	if v, ok := lookup("MAZE_VIEW"); ok {
		if err := cfg.View.Set(v); err != nil {
			return cfg, err
		}
	}
	if err := envBool(lookup, "MAZE_TELEMETRY", &cfg.Telemetry); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// BindFlags registers flags that override the loaded values.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "maze width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "maze height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.StringVar(&c.Theme, "theme", c.Theme, "glyph theme id")
	fs.BoolVar(&c.Exit, "exit", c.Exit, "open an exit through the right border")
	fs.Var(&c.View, "view", "output mode: off, on or auto")
	fs.BoolVar(&c.Telemetry, "telemetry", c.Telemetry, "export traces over OTLP")
}

// Validate checks dimensions and view mode. Theme ids are checked against the
// registry by the caller.
func (c Config) Validate() error {
	if err := maze.CheckDimensions(c.Width, c.Height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.View.Set(string(c.View)); err != nil {
		return err
	}
	return nil
}

// RNG returns a random source for the configured seed.
func (c Config) RNG() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func envInt(lookup func(string) (string, bool), key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	*dst = n
	return nil
}

func envBool(lookup func(string) (string, bool), key string, dst *bool) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidConfig, key, err)
	}
	*dst = b
	return nil
}
