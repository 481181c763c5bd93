package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"blockgol/internal/config"
	_ "blockgol/internal/sims/life"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// globals carries the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	flags      *config.Config
}

func newRootCmd() *cobra.Command {
	g := &globals{flags: config.DefaultConfig()}

	root := &cobra.Command{
		Use:          "gol",
		Short:        "Conway's Game of Life on an adaptive block grid",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, g)
		},
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML config file")
	g.flags.Bind(root.PersistentFlags())

	root.AddCommand(
		newWindowCmd(g),
		newTermCmd(g),
		newBenchCmd(g),
		newFrameCmd(g),
	)
	return root
}

func newWindowCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "open the interactive window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, g)
		},
	}
}
