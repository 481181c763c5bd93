//go:build ebiten

package ui

import (
	"image/color"

	"blockgol/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 6
	hudLineH   = 14
)

// HUD draws a translucent status panel in the top-left corner. H toggles it.
type HUD struct {
	ctrl    *session.Controller
	visible bool
	lines   []string
	panel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided controller.
func NewHUD(ctrl *session.Controller) *HUD {
	return &HUD{ctrl: ctrl, visible: true}
}

// Update refreshes the cached status text and handles the toggle key.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	h.lines = append(StatusLines(h.ctrl.Status()), HintLine(HUDToggle))
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	width += 2 * hudPadding
	height := len(h.lines)*hudLineH + 2*hudPadding

	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, line := range h.lines {
		text.Draw(h.panel, line, face, hudPadding, hudPadding+(i+1)*hudLineH-3, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
