package life

import "blockgol/internal/core"

// The weighted kernel is
//
//	2 2 2
//	2 1 2
//	2 2 2
//
// so the response is 2*neighbours + self. A cell is alive in the next
// generation exactly when the response lies in [5, 7]: 5 and 7 are live cells
// with 2 or 3 neighbours, 6 is a dead cell with 3.
const (
	kernelMin = 5
	kernelMax = 7
)

// EvolveConvolution advances the grid by one generation by convolving it with
// the weighted kernel above. The 3x3 box sum is computed separably; taps that
// fall outside the grid contribute nothing.
func EvolveConvolution(cur *core.Grid) *core.Grid {
	w, h := cur.W, cur.H
	src := cur.Cells()

	// Horizontal pass: rows[y][x] = src[y][x-1] + src[y][x] + src[y][x+1].
	rows := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s := 0
			if x > 0 && src[y*w+x-1] {
				s++
			}
			if src[y*w+x] {
				s++
			}
			if x+1 < w && src[y*w+x+1] {
				s++
			}
			rows[y*w+x] = s
		}
	}

	next := core.NewGrid(w, h)
	dst := next.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			box := rows[y*w+x]
			if y > 0 {
				box += rows[(y-1)*w+x]
			}
			if y+1 < h {
				box += rows[(y+1)*w+x]
			}
			self := 0
			if src[y*w+x] {
				self = 1
			}
			response := 2*box - self
			dst[y*w+x] = response >= kernelMin && response <= kernelMax
		}
	}
	return next
}
