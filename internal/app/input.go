package app

import "blockgol/internal/session"

// pointer is one frame of mouse button state in canvas pixels.
type pointer struct {
	pressed      bool
	justPressed  bool
	justReleased bool
	x, y         int
}

// pointerCommands appends the commands for one frame of primary (paint) and
// secondary (erase) button state. moved reports whether the cursor changed
// position since the previous frame.
func pointerCommands(dst []session.Command, primary, secondary pointer, moved bool) []session.Command {
	dst = strokeCommands(dst, primary, moved, session.PaintStart(), session.PaintStop(), session.PaintMove)
	dst = strokeCommands(dst, secondary, moved, session.EraseStart(), session.EraseStop(), session.EraseMove)
	return dst
}

func strokeCommands(dst []session.Command, p pointer, moved bool, start, stop session.Command, move func(x, y int) session.Command) []session.Command {
	switch {
	case p.justPressed:
		dst = append(dst, start, move(p.x, p.y))
	case p.pressed && moved:
		dst = append(dst, move(p.x, p.y))
	}
	if p.justReleased {
		dst = append(dst, stop)
	}
	return dst
}
