package core

// Grid stores a 2D field of binary cells in row-major order.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// RandomGrid allocates a grid where every cell is alive with probability 1/2.
func RandomGrid(w, h int, rng *RNG) *Grid {
	g := NewGrid(w, h)
	FillBinary(rng, g.data)
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At reports whether the cell at (x, y) is alive. Out of range cells are dead.
func (g *Grid) At(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[g.Index(x, y)]
}

// Set assigns the cell at (x, y). Out of range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = alive
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]bool, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same size and cell values.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
