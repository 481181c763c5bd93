package main

import (
	"os"

	"github.com/spf13/cobra"

	"blockgol/internal/logging"
	"blockgol/internal/tui"
)

func newTermCmd(g *globals) *cobra.Command {
	var (
		graph   bool
		logFile string
	)
	cmd := &cobra.Command{
		Use:   "term",
		Short: "play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := g.resolve(cmd)
			if err != nil {
				return err
			}
			evolve, err := cfg.Evolver()
			if err != nil {
				return err
			}

			// The alternate screen owns the terminal; logs go to a file or nowhere.
			log := logging.Nop()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				if log, err = logging.New(f, cfg.LogLevel); err != nil {
					return err
				}
			}

			return tui.Run(tui.Options{
				TargetCells: cfg.TargetCells,
				Rate:        cfg.GenerationRate,
				Seed:        cfg.Seed,
				Engine:      cfg.Engine,
				Evolver:     evolve,
				AliveColor:  cfg.AliveColor,
				DeadColor:   cfg.DeadColor,
				ShowGraph:   graph,
				Logger:      log,
			})
		},
	}
	cmd.Flags().BoolVar(&graph, "graph", false, "show a population graph under the grid")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
