// Package life implements Conway's Game of Life (B3/S23) on a bounded grid.
// Cells outside the grid count as dead; there is no wraparound.
package life

import "blockgol/internal/core"

const (
	// EngineScan names the direct 8-neighbour scan strategy.
	EngineScan = "scan"
	// EngineConvolution names the kernel convolution strategy.
	EngineConvolution = "convolution"
)

// Rule applies the B3/S23 transition to one cell.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Neighbors counts live cells among the 8 surrounding (x, y).
func Neighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Evolve advances the grid by one generation using a direct neighbour scan.
// The input is never modified.
func Evolve(cur *core.Grid) *core.Grid {
	src := cur.Cells()
	next := core.NewGrid(cur.W, cur.H)
	dst := next.Cells()
	for y := 0; y < cur.H; y++ {
		for x := 0; x < cur.W; x++ {
			idx := cur.Index(x, y)
			dst[idx] = Rule(src[idx], Neighbors(cur, x, y))
		}
	}
	return next
}

func init() {
	core.Register(EngineScan, Evolve)
	core.Register(EngineConvolution, EvolveConvolution)
}
