package session

import "fmt"

// Status is a point-in-time summary for HUDs and status bars.
type Status struct {
	Generation  int
	Population  int
	Running     bool
	Mode        EditMode
	HasSnapshot bool
	Engine      string
	BlocksX     int
	BlocksY     int
	BlockSize   int
}

// Status captures the controller state.
func (c *Controller) Status() Status {
	return Status{
		Generation:  c.generation,
		Population:  c.grid.Population(),
		Running:     c.running,
		Mode:        c.mode,
		HasSnapshot: c.snapshot != nil,
		Engine:      c.engine,
		BlocksX:     c.layout.BlocksX,
		BlocksY:     c.layout.BlocksY,
		BlockSize:   c.layout.BlockSize,
	}
}

// State returns "running" or "paused".
func (s Status) State() string {
	if s.Running {
		return "running"
	}
	return "paused"
}

func (s Status) String() string {
	snap := "-"
	if s.HasSnapshot {
		snap = "saved"
	}
	return fmt.Sprintf("gen %d  pop %d  %s  %s  snap %s  %dx%d@%dpx  %s",
		s.Generation, s.Population, s.State(), s.Mode, snap, s.BlocksX, s.BlocksY, s.BlockSize, s.Engine)
}
