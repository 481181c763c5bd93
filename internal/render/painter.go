//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"blockgol/internal/core"
)

// GridPainter uploads binary cell data into a one-pixel-per-cell image and
// draws it scaled up to the block size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided grid into the painter image and draws it with each
// cell covering a blockSize square.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.Grid, on, off color.Color, blockSize int) {
	if grid.W != gp.w || grid.H != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, grid.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(blockSize), float64(blockSize))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(gp.img, op)
}
