package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blockgol/internal/core"
	"blockgol/internal/render"
	"blockgol/internal/session"
)

func newFrameCmd(g *globals) *cobra.Command {
	var (
		out         string
		generations int
	)
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "evolve a random world headlessly and write it as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.resolve(cmd)
			if err != nil {
				return err
			}
			if generations < 0 {
				return fmt.Errorf("generations must not be negative, got %d", generations)
			}

			ctrl, err := newController(cfg, log, core.Size{W: cfg.WindowWidth, H: cfg.WindowHeight})
			if err != nil {
				return err
			}
			if generations > 0 {
				ctrl.Apply(session.ToggleRun())
				for i := 0; i < generations; i++ {
					ctrl.Advance()
				}
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			alive, dead := cfg.Colors()
			if err := render.NewFrame(ctrl.Layout(), alive, dead).EncodePNG(f, ctrl.Grid()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			log.Info("frame written", "path", out, "generation", ctrl.Generation(), "population", ctrl.Grid().Population())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "gol.png", "output PNG path")
	cmd.Flags().IntVar(&generations, "generations", 0, "generations to evolve before rendering")
	return cmd
}
