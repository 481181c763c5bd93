// Package tui runs the simulation in a terminal. Each terminal cell is one
// canvas pixel; the canvas is sized once from the first window size report.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"blockgol/internal/core"
	"blockgol/internal/logging"
	"blockgol/internal/session"
	"blockgol/internal/sizing"
	"blockgol/internal/ui"
)

const (
	statusRows = 3
	graphRows  = 7
	aliveRune  = '█'
	deadRune   = ' '
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Options configures the terminal front-end.
type Options struct {
	TargetCells int
	Rate        int
	Seed        int64
	Engine      string
	Evolver     core.Evolver
	AliveColor  string
	DeadColor   string
	ShowGraph   bool
	Logger      *slog.Logger
}

type tickMsg time.Time

// Model is the bubbletea model wrapping a session controller.
type Model struct {
	opts     Options
	ctrl     *session.Controller
	canvas   lipgloss.Style
	width    int
	height   int
	err      error
	quitting bool
}

// New returns a model that waits for the terminal size before creating the world.
func New(opts Options) Model {
	if opts.Rate <= 0 {
		opts.Rate = 10
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	return Model{
		opts:   opts,
		canvas: lipgloss.NewStyle().Foreground(lipgloss.Color(opts.AliveColor)).Background(lipgloss.Color(opts.DeadColor)),
	}
}

// Run starts the program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.Rate), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.ctrl != nil {
			// The grid is fixed for the session; a resize only crops the view.
			return m, nil
		}
		return m.start()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.ctrl == nil {
			return m, nil
		}
		if cmd, ok := session.KeyCommand(msg.String()); ok && m.ctrl.Apply(cmd) {
			return m.quit()
		}
	case tea.MouseMsg:
		if m.ctrl == nil {
			return m, nil
		}
		for _, cmd := range mouseCommands(tea.MouseEvent(msg), m.ctrl.EditMode(), m.ctrl.Layout().Canvas) {
			m.ctrl.Apply(cmd)
		}
	case tickMsg:
		if m.ctrl == nil || m.quitting {
			return m, nil
		}
		m.ctrl.Advance()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	reserved := statusRows
	if m.opts.ShowGraph {
		reserved += graphRows
	}
	layout, err := sizing.Fit(m.width, m.height-reserved, m.opts.TargetCells)
	if err != nil {
		m.err = fmt.Errorf("terminal %dx%d too small: %w", m.width, m.height, err)
		return m.quit()
	}
	opts := []session.Option{
		session.WithRNG(core.NewRNG(m.opts.Seed)),
		session.WithLogger(m.opts.Logger),
		session.WithHistory(max(m.width-12, 10)),
	}
	if m.opts.Evolver != nil {
		opts = append(opts, session.WithEvolver(m.opts.Engine, m.opts.Evolver))
	}
	m.ctrl = session.New(layout, opts...)
	return m, m.tick()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// mouseCommands translates one mouse event. Presses outside the canvas are
// ignored; releases end whichever stroke is in progress since terminals do not
// always report which button was released.
func mouseCommands(ev tea.MouseEvent, mode session.EditMode, canvas core.Size) []session.Command {
	inside := ev.X >= 0 && ev.X < canvas.W && ev.Y >= 0 && ev.Y < canvas.H
	switch ev.Action {
	case tea.MouseActionPress:
		if !inside {
			return nil
		}
		switch ev.Button {
		case tea.MouseButtonLeft:
			return []session.Command{session.PaintStart(), session.PaintMove(ev.X, ev.Y)}
		case tea.MouseButtonRight:
			return []session.Command{session.EraseStart(), session.EraseMove(ev.X, ev.Y)}
		}
	case tea.MouseActionMotion:
		switch mode {
		case session.Painting:
			return []session.Command{session.PaintMove(ev.X, ev.Y)}
		case session.Erasing:
			return []session.Command{session.EraseMove(ev.X, ev.Y)}
		}
	case tea.MouseActionRelease:
		switch mode {
		case session.Painting:
			return []session.Command{session.PaintStop()}
		case session.Erasing:
			return []session.Command{session.EraseStop()}
		}
	}
	return nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return errStyle.Render(m.err.Error()) + "\n"
	}
	if m.ctrl == nil {
		return "sizing canvas..."
	}

	var s strings.Builder
	s.WriteString(m.canvas.Render(canvasText(m.ctrl.Grid(), m.ctrl.Layout())))
	s.WriteString("\n")
	if m.opts.ShowGraph {
		s.WriteString(graphStyle.Render(populationGraph(m.ctrl.History(), m.width)))
		s.WriteString("\n")
	}
	s.WriteString(statusStyle.Render(strings.Join(ui.StatusLines(m.ctrl.Status()), "  |  ")))
	s.WriteString("\n")
	s.WriteString(hintStyle.Render(ui.HintLine()))
	return s.String()
}

// canvasText draws each block as a blockSize square of runes.
func canvasText(g *core.Grid, layout sizing.Layout) string {
	var s strings.Builder
	row := make([]rune, layout.Canvas.W)
	for y := 0; y < layout.Canvas.H; y++ {
		by := y / layout.BlockSize
		for x := range row {
			if g.At(x/layout.BlockSize, by) {
				row[x] = aliveRune
			} else {
				row[x] = deadRune
			}
		}
		if y > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(string(row))
	}
	return s.String()
}

func populationGraph(history []int, width int) string {
	data := make([]float64, len(history))
	for i, v := range history {
		data[i] = float64(v)
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(graphRows-3),
		asciigraph.Width(max(width-12, 10)),
		asciigraph.Caption("population"))
}
