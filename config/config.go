// Package config loads game settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidSize     = errors.New("invalid board size")
	ErrInvalidSpawn    = errors.New("invalid spawn position")
	ErrInvalidInterval = errors.New("invalid tick interval")
)

// Config holds everything a frontend needs to build an engine and a loop.
type Config struct {
	Cols   int `yaml:"cols"`
	Rows   int `yaml:"rows"`
	SpawnX int `yaml:"spawnX"`
	SpawnY int `yaml:"spawnY"`

	// TickInterval is the gravity period, e.g. "500ms".
	TickInterval time.Duration `yaml:"tickInterval"`

	// Seed makes piece order reproducible. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	CellSize int    `yaml:"cellSize"`
	LogLevel string `yaml:"logLevel"`

	// Keys maps key names to command names, e.g. "ArrowLeft: move_left".
	Keys map[string]string `yaml:"keys"`
}

// DefaultKeys is the reference key binding.
func DefaultKeys() map[string]string {
	return map[string]string{
		"ArrowLeft":  engine.CommandMoveLeft.String(),
		"ArrowRight": engine.CommandMoveRight.String(),
		"ArrowDown":  engine.CommandSoftDrop.String(),
		"ArrowUp":    engine.CommandRotate.String(),
		"Space":      engine.CommandHardDrop.String(),
	}
}

// Default returns the reference configuration: a 10×20 board spawning at
// (3, 0) with a 500ms tick.
func Default() *Config {
	return &Config{
		Cols:         engine.DefaultCols,
		Rows:         engine.DefaultRows,
		SpawnX:       engine.DefaultSpawnX,
		SpawnY:       engine.DefaultSpawnY,
		TickInterval: loop.DefaultTickInterval,
		CellSize:     30,
		LogLevel:     "info",
		Keys:         DefaultKeys(),
	}
}

// LoadConfig reads a YAML file, fills unset fields with defaults and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills fields that decoding can leave blank. Keys are
// replaced as a whole so a file binding only some keys does not inherit the
// rest.
func applyDefaults(cfg *Config) {
	if len(cfg.Keys) == 0 {
		cfg.Keys = DefaultKeys()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
}

// Validate checks that the board can hold a spawned piece and that every
// key binding names a known command.
func (c *Config) Validate() error {
	if c.Cols < engine.SpawnWidth || c.Rows < engine.SpawnHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidSize, c.Cols, c.Rows, engine.SpawnWidth, engine.SpawnHeight)
	}
	if !engine.SpawnFits(c.Cols, c.Rows, c.SpawnX, c.SpawnY) {
		return fmt.Errorf("%w: (%d, %d) does not fit %dx%d", ErrInvalidSpawn, c.SpawnX, c.SpawnY, c.Cols, c.Rows)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, c.TickInterval)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// Bindings resolves Keys into commands.
func (c *Config) Bindings() (map[string]engine.Command, error) {
	out := make(map[string]engine.Command, len(c.Keys))
	for key, name := range c.Keys {
		cmd, err := engine.ParseCommand(name)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out[strings.TrimSpace(key)] = cmd
	}
	return out, nil
}

// EngineConfig builds the engine settings. A zero Seed draws a random one.
func (c *Config) EngineConfig() engine.Config {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return engine.Config{
		Cols:   c.Cols,
		Rows:   c.Rows,
		SpawnX: c.SpawnX,
		SpawnY: c.SpawnY,
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
