package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"blockgol/internal/core"
	"blockgol/internal/sizing"
)

// Frame paints one filled block per cell onto an offscreen canvas the size of
// the layout's canvas.
type Frame struct {
	layout sizing.Layout
	alive  gg.RGBA
	dead   gg.RGBA
}

// NewFrame returns a frame renderer for layout using the given cell colors.
func NewFrame(layout sizing.Layout, alive, dead color.Color) *Frame {
	return &Frame{layout: layout, alive: gg.FromColor(alive), dead: gg.FromColor(dead)}
}

// Draw paints grid into dc. The context is expected to match the layout canvas.
func (f *Frame) Draw(dc *gg.Context, grid *core.Grid) error {
	dc.ClearWithColor(f.dead)
	bs := float64(f.layout.BlockSize)
	painted := false
	for row := 0; row < grid.H; row++ {
		for col := 0; col < grid.W; col++ {
			if !grid.At(col, row) {
				continue
			}
			x, y := f.layout.BlockOrigin(col, row)
			dc.DrawRectangle(float64(x), float64(y), bs, bs)
			painted = true
		}
	}
	if !painted {
		return nil
	}
	dc.SetColor(f.alive.Color())
	return dc.Fill()
}

// Image renders grid and returns the resulting picture.
func (f *Frame) Image(grid *core.Grid) (image.Image, error) {
	dc := gg.NewContext(f.layout.Canvas.W, f.layout.Canvas.H)
	defer dc.Close()
	if err := f.Draw(dc, grid); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG renders grid and writes it to w as PNG.
func (f *Frame) EncodePNG(w io.Writer, grid *core.Grid) error {
	dc := gg.NewContext(f.layout.Canvas.W, f.layout.Canvas.H)
	defer dc.Close()
	if err := f.Draw(dc, grid); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}
