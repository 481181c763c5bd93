// Package ui formats controller state for on-screen display.
package ui

import (
	"fmt"

	"blockgol/internal/session"
)

// KeyHint pairs a key label with the action it triggers.
type KeyHint struct {
	Key    string
	Action string
}

// KeyHints lists the bindings shown to the user, in display order.
var KeyHints = []KeyHint{
	{"space", "run/pause"},
	{"n", "random"},
	{"c", "clear"},
	{"s", "save"},
	{"r", "restore"},
	{"lmb", "paint"},
	{"rmb", "erase"},
	{"esc", "quit"},
}

// StatusLines renders the status as short lines suitable for a HUD.
func StatusLines(s session.Status) []string {
	snap := "none"
	if s.HasSnapshot {
		snap = "saved"
	}
	lines := []string{
		fmt.Sprintf("gen %d  pop %d", s.Generation, s.Population),
		fmt.Sprintf("%s  snapshot %s", s.State(), snap),
		fmt.Sprintf("%dx%d cells @ %dpx  %s", s.BlocksX, s.BlocksY, s.BlockSize, s.Engine),
	}
	if s.Mode != session.Idle {
		lines[1] += "  " + s.Mode.String()
	}
	return lines
}

// HUDToggle is the extra binding the window HUD listens for.
var HUDToggle = KeyHint{"h", "hide hud"}

// HintLine joins KeyHints and any front-end specific extras into one line.
func HintLine(extra ...KeyHint) string {
	out := ""
	for i, h := range append(KeyHints[:len(KeyHints):len(KeyHints)], extra...) {
		if i > 0 {
			out += "  "
		}
		out += h.Key + " " + h.Action
	}
	return out
}
