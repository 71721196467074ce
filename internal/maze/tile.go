// Package maze provides the maze board, its generator and player movement.
package maze

// Tile represents a single board cell.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '█'
	// TileEmpty represents a carved passage tile.
	TileEmpty Tile = ' '
	// TileExit represents the exit the player is looking for.
	TileExit Tile = 'x'
)

// IsPassable returns true if the player can stand on the tile.
func (t Tile) IsPassable() bool {
	return t == TileEmpty || t == TileExit
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileEmpty:
		return "empty"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}
