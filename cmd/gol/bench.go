package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"blockgol/internal/bench"
	"blockgol/internal/core"
	"blockgol/internal/sizing"
)

func newBenchCmd(g *globals) *cobra.Command {
	var (
		generations int
		seeds       int
		workers     int
		plot        bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "time every evolution strategy and check they agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.resolve(cmd)
			if err != nil {
				return err
			}
			if seeds <= 0 {
				return fmt.Errorf("seeds must be positive, got %d", seeds)
			}
			layout, err := sizing.Fit(cfg.WindowWidth, cfg.WindowHeight, cfg.TargetCells)
			if err != nil {
				return err
			}

			base := cfg.Seed
			if base == 0 {
				base = 1
			}
			seedList := make([]int64, seeds)
			for i := range seedList {
				seedList[i] = base + int64(i)
			}

			log.Info("bench", "layout", layout.String(), "generations", generations, "seeds", seeds)
			report, err := bench.Run(cmd.Context(), bench.Options{
				Size:        layout.Size(),
				Generations: generations,
				Seeds:       seedList,
				Engines:     core.EvolverNames(),
				Workers:     workers,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "grid %s, %d generations x %d seeds\n\n", layout, generations, len(seedList))
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ENGINE\tTOTAL\tPER GEN")
			for _, r := range report.Engines {
				fmt.Fprintf(tw, "%s\t%v\t%v\n", r.Engine, r.Elapsed.Round(time.Microsecond), r.PerStep())
			}
			tw.Flush()

			if plot && len(report.Population) > 1 {
				series := make([]float64, len(report.Population))
				for i, p := range report.Population {
					series[i] = float64(p)
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, asciigraph.Plot(series,
					asciigraph.Height(10),
					asciigraph.Width(60),
					asciigraph.Caption(fmt.Sprintf("population, seed %d", seedList[0]))))
			}

			if len(report.Mismatches) > 0 {
				return fmt.Errorf("strategies disagree on seeds %v", report.Mismatches)
			}
			fmt.Fprintln(out, "\nall strategies agree")
			return nil
		},
	}
	cmd.Flags().IntVar(&generations, "generations", 200, "generations per seed")
	cmd.Flags().IntVar(&seeds, "seeds", 4, "number of random worlds")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = NumCPU)")
	cmd.Flags().BoolVar(&plot, "plot", true, "plot the population of the first world")
	return cmd
}
