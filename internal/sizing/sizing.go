// Package sizing maps a pixel canvas onto a grid of square blocks.
package sizing

import (
	"fmt"

	"blockgol/internal/core"
)

// Layout is the result of fitting a block grid onto a canvas.
type Layout struct {
	Canvas    core.Size
	BlockSize int
	BlocksX   int
	BlocksY   int
}

// Fit picks the block size whose grid cell count is closest to target among
// all block sizes that tile the canvas exactly on both axes. Ties go to the
// smallest block size.
func Fit(canvasW, canvasH, target int) (Layout, error) {
	if canvasW <= 0 || canvasH <= 0 {
		return Layout{}, fmt.Errorf("%w: %dx%d", ErrInvalidCanvasSize, canvasW, canvasH)
	}
	if target <= 0 {
		return Layout{}, fmt.Errorf("%w: target cells %d", ErrInvalidGridDimensions, target)
	}

	best := Layout{}
	bestDist := -1
	for _, c := range CommonDivisors(canvasW, canvasH) {
		bx, by := canvasW/c, canvasH/c
		dist := abs(bx*by - target)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = Layout{
				Canvas:    core.Size{W: canvasW, H: canvasH},
				BlockSize: c,
				BlocksX:   bx,
				BlocksY:   by,
			}
		}
	}
	return best, nil
}

// Divisors returns the positive divisors of n in ascending order.
func Divisors(n int) []int {
	if n <= 0 {
		return nil
	}
	var low, high []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if j := n / i; j != i {
			high = append(high, j)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low
}

// CommonDivisors returns the divisors shared by a and b in ascending order.
func CommonDivisors(a, b int) []int {
	db := Divisors(b)
	set := make(map[int]struct{}, len(db))
	for _, d := range db {
		set[d] = struct{}{}
	}
	var out []int
	for _, d := range Divisors(a) {
		if _, ok := set[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Size returns the block grid dimensions.
func (l Layout) Size() core.Size { return core.Size{W: l.BlocksX, H: l.BlocksY} }

// Cells returns the number of blocks in the grid.
func (l Layout) Cells() int { return l.BlocksX * l.BlocksY }

// PixelToBlock maps a canvas pixel to the block containing it. The result is
// clamped to the grid so pointer positions at or past the canvas edges still
// address a valid cell.
func (l Layout) PixelToBlock(x, y int) (int, int) {
	bs := l.BlockSize
	if bs <= 0 {
		bs = 1
	}
	bx := floorDiv(x+1, bs)
	by := floorDiv(y+1, bs)
	return clamp(bx, 0, l.BlocksX-1), clamp(by, 0, l.BlocksY-1)
}

// BlockOrigin returns the top-left pixel of the block at (col, row).
func (l Layout) BlockOrigin(col, row int) (int, int) {
	return col * l.BlockSize, row * l.BlockSize
}

func (l Layout) String() string {
	return fmt.Sprintf("%dx%d blocks of %dpx on %dx%d canvas", l.BlocksX, l.BlocksY, l.BlockSize, l.Canvas.W, l.Canvas.H)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
