package config

import "github.com/spf13/pflag"

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.TargetCells, "cells", c.TargetCells, "target number of grid cells")
	fs.BoolVar(&c.Windowed, "windowed", c.Windowed, "run in a fixed window instead of fullscreen")
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window canvas width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window canvas height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "input and render ticks per second")
	fs.IntVar(&c.GenerationRate, "rate", c.GenerationRate, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random worlds (0 = time based)")
	fs.StringVar(&c.Engine, "engine", c.Engine, "evolution strategy (scan, convolution)")
	fs.StringVar(&c.AliveColor, "alive-color", c.AliveColor, "color of live cells")
	fs.StringVar(&c.DeadColor, "dead-color", c.DeadColor, "color of dead cells")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error, off)")
}

// Resolve layers the YAML file at path (if any) under the flags that were set
// explicitly on fs. flags must be the Config previously bound to fs.
func Resolve(path string, flags *Config, fs *pflag.FlagSet) (*Config, error) {
	if path == "" {
		out := *flags
		if err := out.Validate(); err != nil {
			return nil, err
		}
		return &out, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *pflag.Flag) {
		cfg.override(f.Name, flags)
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// override copies one flag-backed field. Flags owned by subcommands are not
// config fields and are skipped.
func (c *Config) override(name string, from *Config) {
	switch name {
	case "cells":
		c.TargetCells = from.TargetCells
	case "windowed":
		c.Windowed = from.Windowed
	case "width":
		c.WindowWidth = from.WindowWidth
	case "height":
		c.WindowHeight = from.WindowHeight
	case "tps":
		c.TPS = from.TPS
	case "rate":
		c.GenerationRate = from.GenerationRate
	case "seed":
		c.Seed = from.Seed
	case "engine":
		c.Engine = from.Engine
	case "alive-color":
		c.AliveColor = from.AliveColor
	case "dead-color":
		c.DeadColor = from.DeadColor
	case "log-level":
		c.LogLevel = from.LogLevel
	}
}
