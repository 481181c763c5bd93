package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"blockgol/internal/config"
	"blockgol/internal/core"
	"blockgol/internal/logging"
	"blockgol/internal/session"
	"blockgol/internal/sizing"
)

// resolve layers the config file under explicitly set flags and builds the
// logger for the run.
func (g *globals) resolve(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Resolve(g.configPath, g.flags, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// newController sizes the grid for canvas and seeds the first world.
func newController(cfg *config.Config, log *slog.Logger, canvas core.Size) (*session.Controller, error) {
	log.Info("screen created", "width", canvas.W, "height", canvas.H, "target_cells", cfg.TargetCells)

	layout, err := sizing.Fit(canvas.W, canvas.H, cfg.TargetCells)
	if err != nil {
		return nil, err
	}
	log.Info("elements", "count", layout.Cells(), "block", layout.BlockSize)

	evolve, err := cfg.Evolver()
	if err != nil {
		return nil, err
	}
	return session.New(layout,
		session.WithEvolver(cfg.Engine, evolve),
		session.WithRNG(core.NewRNG(cfg.Seed)),
		session.WithLogger(log),
	), nil
}
