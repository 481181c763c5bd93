//go:build ebiten

package app

import (
	"image/color"

	"blockgol/internal/core"
	"blockgol/internal/render"
	"blockgol/internal/session"
	"blockgol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var boundKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyN, "n"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyR, "r"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyEscape, "esc"},
}

// Game adapts a session controller to the ebiten.Game interface.
type Game struct {
	ctrl    *session.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep

	onColor  color.Color
	offColor color.Color

	cmds         []session.Command
	lastX, lastY int
}

// New constructs a Game for the provided controller. Generations advance at
// rate per second independently of the frame rate.
func New(ctrl *session.Controller, on, off color.Color, rate int) *Game {
	size := ctrl.Grid().Size()
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(ctrl),
		stepper:  core.NewFixedStep(rate),
		onColor:  on,
		offColor: off,
	}
}

// Update translates this frame's input into commands, applies them in order
// and advances the world when a generation is due.
func (g *Game) Update() error {
	g.cmds = g.pollInput(g.cmds[:0])
	for _, cmd := range g.cmds {
		if g.ctrl.Apply(cmd) {
			return ebiten.Termination
		}
	}
	if g.stepper.ShouldStep() {
		g.ctrl.Advance()
	}
	g.hud.Update()
	return nil
}

func (g *Game) pollInput(dst []session.Command) []session.Command {
	for _, k := range boundKeys {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		if cmd, ok := session.KeyCommand(k.name); ok {
			dst = append(dst, cmd)
		}
	}

	x, y := ebiten.CursorPosition()
	moved := x != g.lastX || y != g.lastY
	g.lastX, g.lastY = x, y
	return pointerCommands(dst,
		buttonState(ebiten.MouseButtonLeft, x, y),
		buttonState(ebiten.MouseButtonRight, x, y),
		moved)
}

func buttonState(b ebiten.MouseButton, x, y int) pointer {
	return pointer{
		pressed:      ebiten.IsMouseButtonPressed(b),
		justPressed:  inpututil.IsMouseButtonJustPressed(b),
		justReleased: inpututil.IsMouseButtonJustReleased(b),
		x:            x,
		y:            y,
	}
}

// Draw renders the current world.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Grid(), g.onColor, g.offColor, g.ctrl.Layout().BlockSize)
	g.hud.Draw(screen)
}

// Layout returns the canvas size so cursor positions are canvas pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := g.ctrl.Layout().Canvas
	return c.W, c.H
}
