package session

// CommandKind enumerates the discrete inputs the controller understands.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdNewRandom
	CmdSaveSnapshot
	CmdRestoreSnapshot
	CmdToggleRun
	CmdClear
	CmdPaintStart
	CmdPaintMove
	CmdPaintStop
	CmdEraseStart
	CmdEraseMove
	CmdEraseStop
	CmdQuit
)

var commandNames = map[CommandKind]string{
	CmdNone:            "none",
	CmdNewRandom:       "new-random",
	CmdSaveSnapshot:    "save",
	CmdRestoreSnapshot: "restore",
	CmdToggleRun:       "toggle-run",
	CmdClear:           "clear",
	CmdPaintStart:      "paint-start",
	CmdPaintMove:       "paint-move",
	CmdPaintStop:       "paint-stop",
	CmdEraseStart:      "erase-start",
	CmdEraseMove:       "erase-move",
	CmdEraseStop:       "erase-stop",
	CmdQuit:            "quit",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one input event. X and Y are canvas pixel coordinates and only
// matter for the move commands.
type Command struct {
	Kind CommandKind
	X, Y int
}

// NewRandom replaces the world with a fresh random grid.
func NewRandom() Command { return Command{Kind: CmdNewRandom} }

// SaveSnapshot stores a deep copy of the current grid.
func SaveSnapshot() Command { return Command{Kind: CmdSaveSnapshot} }

// RestoreSnapshot brings back the saved grid and pauses.
func RestoreSnapshot() Command { return Command{Kind: CmdRestoreSnapshot} }

// ToggleRun flips between running and paused.
func ToggleRun() Command { return Command{Kind: CmdToggleRun} }

// Clear kills every cell and pauses.
func Clear() Command { return Command{Kind: CmdClear} }

// PaintStart begins a painting stroke.
func PaintStart() Command { return Command{Kind: CmdPaintStart} }

// PaintStop ends a painting stroke.
func PaintStop() Command { return Command{Kind: CmdPaintStop} }

// EraseStart begins an erasing stroke.
func EraseStart() Command { return Command{Kind: CmdEraseStart} }

// EraseStop ends an erasing stroke.
func EraseStop() Command { return Command{Kind: CmdEraseStop} }

// Quit requests shutdown.
func Quit() Command { return Command{Kind: CmdQuit} }

// PaintMove sets the block under pixel (x, y) alive while painting.
func PaintMove(x, y int) Command { return Command{Kind: CmdPaintMove, X: x, Y: y} }

// EraseMove sets the block under pixel (x, y) dead while erasing.
func EraseMove(x, y int) Command { return Command{Kind: CmdEraseMove, X: x, Y: y} }

// KeyCommand maps a key name to its command. Names are lower case; the space
// bar is "space" and escape is "esc". Unbound keys report false. "b" was an
// older alias for clear and is intentionally not bound.
func KeyCommand(key string) (Command, bool) {
	switch key {
	case "n":
		return NewRandom(), true
	case "s":
		return SaveSnapshot(), true
	case "r":
		return RestoreSnapshot(), true
	case "space", " ":
		return ToggleRun(), true
	case "c":
		return Clear(), true
	case "esc", "escape":
		return Quit(), true
	}
	return Command{}, false
}
