package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/maze"
)

// command is a non-movement action bound to a key.
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdRestart
	cmdToggleHint
)

// keyDirection maps arrow keys, WASD and hjkl to a direction.
func keyDirection(key tcell.Key, r rune) (maze.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return maze.Up, true
	case tcell.KeyDown:
		return maze.Down, true
	case tcell.KeyLeft:
		return maze.Left, true
	case tcell.KeyRight:
		return maze.Right, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W', 'k':
			return maze.Up, true
		case 's', 'S', 'j':
			return maze.Down, true
		case 'a', 'A', 'h':
			return maze.Left, true
		case 'd', 'D', 'l':
			return maze.Right, true
		}
	}
	return 0, false
}

// keyCommand maps the remaining keys to game commands.
func keyCommand(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return cmdQuit
		case 'r', 'R':
			return cmdRestart
		case '?':
			return cmdToggleHint
		}
	}
	return cmdNone
}
