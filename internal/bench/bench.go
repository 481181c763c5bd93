// Package bench compares evolution strategies on seeded random worlds.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"blockgol/internal/core"
)

// Options controls a comparison run.
type Options struct {
	Size        core.Size
	Generations int
	Seeds       []int64
	Engines     []string
	Workers     int
}

// EngineResult aggregates one strategy over all seeds.
type EngineResult struct {
	Engine  string
	Elapsed time.Duration
	Steps   int
}

// PerStep returns the mean time per generation.
func (r EngineResult) PerStep() time.Duration {
	if r.Steps == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Steps)
}

// Report is the outcome of Run.
type Report struct {
	Engines []EngineResult
	// Mismatches lists seeds where strategies produced different worlds.
	Mismatches []int64
	// Population is the per-generation population of the first seed.
	Population []int
}

type scenario struct {
	seed  int64
	first bool
}

type scenarioResult struct {
	seed       int64
	elapsed    map[string]time.Duration
	agree      bool
	population []int
}

// Run evolves every seed with every engine and checks the results agree.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Size.W <= 0 || opts.Size.H <= 0 {
		return Report{}, fmt.Errorf("bench: invalid size %dx%d", opts.Size.W, opts.Size.H)
	}
	if opts.Generations <= 0 {
		return Report{}, fmt.Errorf("bench: generations must be positive, got %d", opts.Generations)
	}
	if len(opts.Seeds) == 0 {
		opts.Seeds = []int64{1}
	}
	if len(opts.Engines) == 0 {
		opts.Engines = core.EvolverNames()
	}
	evolvers := make([]core.Evolver, len(opts.Engines))
	for i, name := range opts.Engines {
		e, ok := core.Lookup(name)
		if !ok {
			return Report{}, fmt.Errorf("bench: unknown engine %q", name)
		}
		evolvers[i] = e
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res := runScenario(opts, evolvers, sc)
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i, seed := range opts.Seeds {
			select {
			case jobs <- scenario{seed: seed, first: i == 0}:
			case <-ctx.Done():
				return
			}
		}
	}()

	totals := make(map[string]time.Duration, len(opts.Engines))
	report := Report{}
	for res := range results {
		for name, d := range res.elapsed {
			totals[name] += d
		}
		if !res.agree {
			report.Mismatches = append(report.Mismatches, res.seed)
		}
		if res.population != nil {
			report.Population = res.population
		}
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	sort.Slice(report.Mismatches, func(i, j int) bool { return report.Mismatches[i] < report.Mismatches[j] })
	for _, name := range opts.Engines {
		report.Engines = append(report.Engines, EngineResult{
			Engine:  name,
			Elapsed: totals[name],
			Steps:   opts.Generations * len(opts.Seeds),
		})
	}
	return report, nil
}

func runScenario(opts Options, evolvers []core.Evolver, sc scenario) scenarioResult {
	start := core.RandomGrid(opts.Size.W, opts.Size.H, core.NewRNG(sc.seed))
	res := scenarioResult{seed: sc.seed, elapsed: make(map[string]time.Duration, len(evolvers)), agree: true}

	var reference *core.Grid
	for i, evolve := range evolvers {
		g := start
		var pop []int
		if sc.first && i == 0 {
			pop = append(make([]int, 0, opts.Generations+1), g.Population())
		}
		t0 := time.Now()
		for gen := 0; gen < opts.Generations; gen++ {
			g = evolve(g)
			if pop != nil {
				pop = append(pop, g.Population())
			}
		}
		res.elapsed[opts.Engines[i]] = time.Since(t0)
		if pop != nil {
			res.population = pop
		}
		if reference == nil {
			reference = g
		} else if !reference.Equal(g) {
			res.agree = false
		}
	}
	return res
}
