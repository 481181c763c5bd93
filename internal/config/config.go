// Package config holds the startup settings shared by every front-end.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"blockgol/internal/core"
)

const (
	DefaultTargetCells    = 20000
	DefaultWindowWidth    = 600
	DefaultWindowHeight   = 600
	DefaultTPS            = 60
	DefaultGenerationRate = 10
	DefaultEngine         = "scan"
	DefaultAliveColor     = "#ffffff"
	DefaultDeadColor      = "#000000"
	DefaultLogLevel       = "info"
)

// Config is static for the lifetime of a session.
type Config struct {
	TargetCells    int    `yaml:"target_cells"`
	Windowed       bool   `yaml:"windowed"`
	WindowWidth    int    `yaml:"window_width"`
	WindowHeight   int    `yaml:"window_height"`
	TPS            int    `yaml:"tps"`
	GenerationRate int    `yaml:"generation_rate"`
	Seed           int64  `yaml:"seed"`
	Engine         string `yaml:"engine"`
	AliveColor     string `yaml:"alive_color"`
	DeadColor      string `yaml:"dead_color"`
	LogLevel       string `yaml:"log_level"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		TargetCells:    DefaultTargetCells,
		Windowed:       true,
		WindowWidth:    DefaultWindowWidth,
		WindowHeight:   DefaultWindowHeight,
		TPS:            DefaultTPS,
		GenerationRate: DefaultGenerationRate,
		Engine:         DefaultEngine,
		AliveColor:     DefaultAliveColor,
		DeadColor:      DefaultDeadColor,
		LogLevel:       DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.TargetCells <= 0 {
		errs = append(errs, fmt.Errorf("target_cells must be positive, got %d", c.TargetCells))
	}
	if c.Windowed && (c.WindowWidth <= 0 || c.WindowHeight <= 0) {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.GenerationRate <= 0 {
		errs = append(errs, fmt.Errorf("generation_rate must be positive, got %d", c.GenerationRate))
	}
	if _, ok := core.Lookup(c.Engine); !ok {
		errs = append(errs, fmt.Errorf("unknown engine %q (have %s)", c.Engine, strings.Join(core.EvolverNames(), ", ")))
	}
	for name, v := range map[string]string{"alive_color": c.AliveColor, "dead_color": c.DeadColor} {
		if !validHex(v) {
			errs = append(errs, fmt.Errorf("%s must be #rgb or #rrggbb, got %q", name, v))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Colors returns the alive and dead cell colors.
func (c *Config) Colors() (alive, dead color.Color) {
	return gg.Hex(c.AliveColor).Color(), gg.Hex(c.DeadColor).Color()
}

// Evolver returns the configured evolution strategy.
func (c *Config) Evolver() (core.Evolver, error) {
	e, ok := core.Lookup(c.Engine)
	if !ok {
		return nil, fmt.Errorf("config: unknown engine %q", c.Engine)
	}
	return e, nil
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
