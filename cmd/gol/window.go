//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"blockgol/internal/app"
	"blockgol/internal/core"
)

func runWindow(cmd *cobra.Command, g *globals) error {
	cfg, log, err := g.resolve(cmd)
	if err != nil {
		return err
	}

	canvas := core.Size{W: cfg.WindowWidth, H: cfg.WindowHeight}
	if !cfg.Windowed {
		w, h := ebiten.ScreenSizeInFullscreen()
		canvas = core.Size{W: w, H: h}
	}

	ctrl, err := newController(cfg, log, canvas)
	if err != nil {
		return err
	}
	on, off := cfg.Colors()
	game := app.New(ctrl, on, off, cfg.GenerationRate)

	ebiten.SetWindowTitle("gol")
	ebiten.SetTPS(cfg.TPS)
	if cfg.Windowed {
		ebiten.SetWindowSize(canvas.W, canvas.H)
	} else {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("bye", "generation", ctrl.Generation())
	return nil
}
