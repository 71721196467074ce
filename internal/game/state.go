// Package game hosts a maze session: it owns the board, maps keys to moves
// and drives the render loop.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the default state while the player searches for the exit.
	StatePlaying State = iota
	// StateEscaped is entered the first time the player reaches the exit.
	StateEscaped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}
