// Package session owns the live world and turns input commands into grid
// mutations, snapshot handling and run/pause transitions.
package session

import (
	"log/slog"

	"blockgol/internal/core"
	"blockgol/internal/logging"
	"blockgol/internal/sims/life"
	"blockgol/internal/sizing"
)

// EditMode tracks an in-progress pointer stroke.
type EditMode int

const (
	Idle EditMode = iota
	Painting
	Erasing
)

func (m EditMode) String() string {
	switch m {
	case Painting:
		return "painting"
	case Erasing:
		return "erasing"
	default:
		return "idle"
	}
}

const defaultHistory = 240

// Controller is the sole owner of the live grid and its snapshot. It is not
// safe for concurrent use; front-ends drive it from a single loop.
type Controller struct {
	layout sizing.Layout
	engine string
	evolve core.Evolver
	rng    *core.RNG
	log    *slog.Logger

	grid     *core.Grid
	snapshot *core.Grid
	snapGen  int

	running    bool
	mode       EditMode
	generation int

	history    []int
	historyCap int
}

// Option customises a Controller.
type Option func(*Controller)

// WithEvolver selects the evolution strategy and the name reported in Status.
func WithEvolver(name string, e core.Evolver) Option {
	return func(c *Controller) {
		if e != nil {
			c.engine = name
			c.evolve = e
		}
	}
}

// WithRNG sets the source used for random worlds.
func WithRNG(rng *core.RNG) Option {
	return func(c *Controller) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithHistory bounds the number of population samples kept for graphs.
func WithHistory(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.historyCap = n
		}
	}
}

// New builds a stopped controller over a random grid sized by layout.
func New(layout sizing.Layout, opts ...Option) *Controller {
	c := &Controller{
		layout:     layout,
		engine:     life.EngineScan,
		evolve:     life.Evolve,
		log:        logging.Nop(),
		historyCap: defaultHistory,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = core.NewRNG(0)
	}
	c.grid = core.RandomGrid(layout.BlocksX, layout.BlocksY, c.rng)
	c.record()
	c.log.Info("world created", "layout", layout.String(), "cells", layout.Cells(), "engine", c.engine)
	return c
}

// Tick applies cmds in order and then advances one generation if running.
// It reports true once a Quit command was seen; commands after it are dropped.
func (c *Controller) Tick(cmds []Command) bool {
	for _, cmd := range cmds {
		if c.Apply(cmd) {
			return true
		}
	}
	c.Advance()
	return false
}

// Apply executes a single command and reports whether it requests shutdown.
func (c *Controller) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CmdNewRandom:
		c.reset(core.RandomGrid(c.layout.BlocksX, c.layout.BlocksY, c.rng))
		c.log.Info("new random world", "population", c.grid.Population())
	case CmdSaveSnapshot:
		c.snapshot = c.grid.Clone()
		c.snapGen = c.generation
		c.log.Info("snapshot saved", "generation", c.generation)
	case CmdRestoreSnapshot:
		c.running = false
		if c.snapshot == nil {
			c.log.Debug("restore ignored, no snapshot")
			return false
		}
		c.grid = c.snapshot.Clone()
		c.generation = c.snapGen
		c.record()
		c.log.Info("snapshot restored", "generation", c.generation)
	case CmdToggleRun:
		c.running = !c.running
		c.log.Debug("run toggled", "running", c.running)
	case CmdClear:
		c.reset(core.NewGrid(c.layout.BlocksX, c.layout.BlocksY))
		c.log.Info("world cleared")
	case CmdPaintStart:
		c.running = false
		c.mode = Painting
	case CmdEraseStart:
		c.running = false
		c.mode = Erasing
	case CmdPaintMove:
		if c.mode == Painting {
			c.setAt(cmd.X, cmd.Y, true)
		}
	case CmdEraseMove:
		if c.mode == Erasing {
			c.setAt(cmd.X, cmd.Y, false)
		}
	case CmdPaintStop, CmdEraseStop:
		c.mode = Idle
	case CmdQuit:
		c.log.Info("quit requested", "generation", c.generation)
		return true
	}
	return false
}

// Advance evolves the grid by one generation when running. The state before
// the first step of a run is checkpointed if no snapshot exists yet.
func (c *Controller) Advance() {
	if !c.running {
		return
	}
	if c.snapshot == nil {
		c.snapshot = c.grid.Clone()
		c.snapGen = c.generation
		c.log.Debug("auto checkpoint", "generation", c.generation)
	}
	c.grid = c.evolve(c.grid)
	c.generation++
	c.record()
}

func (c *Controller) reset(g *core.Grid) {
	c.running = false
	c.snapshot = nil
	c.snapGen = 0
	c.grid = g
	c.generation = 0
	c.history = c.history[:0]
	c.record()
}

func (c *Controller) setAt(x, y int, alive bool) {
	bx, by := c.layout.PixelToBlock(x, y)
	c.grid.Set(bx, by, alive)
}

func (c *Controller) record() {
	if len(c.history) >= c.historyCap {
		copy(c.history, c.history[1:])
		c.history = c.history[:len(c.history)-1]
	}
	c.history = append(c.history, c.grid.Population())
}

// Grid returns the live grid. Callers must treat it as read-only.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Layout returns the block layout fixed at construction.
func (c *Controller) Layout() sizing.Layout { return c.layout }

// Running reports whether ticks advance the simulation.
func (c *Controller) Running() bool { return c.running }

// EditMode reports the current pointer stroke mode.
func (c *Controller) EditMode() EditMode { return c.mode }

// HasSnapshot reports whether a restorable snapshot exists.
func (c *Controller) HasSnapshot() bool { return c.snapshot != nil }

// Generation returns the number of steps since the world was created.
func (c *Controller) Generation() int { return c.generation }

// History returns a copy of recent population samples, oldest first.
func (c *Controller) History() []int {
	out := make([]int, len(c.history))
	copy(out, c.history)
	return out
}
