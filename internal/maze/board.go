package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize is returned when a board is requested with a zero dimension.
var ErrInvalidSize = errors.New("maze: board dimensions must be at least 1x1")

// View is the read-only surface of a board handed to renderers.
type View interface {
	Width() uint
	Height() uint
	Get(x, y uint) Tile
	Player() Coord
	Done() bool
}

// Board is a rectangular maze stored row-major as a flat slice of tiles.
// A Board is not safe for concurrent use.
type Board struct {
	size   Coord
	data   []Tile
	start  Coord
	player Coord
	done   bool
}

// NewBoard creates a board of the given size filled with walls.
// The start and player positions are both (0, 0).
func NewBoard(width, height uint) (*Board, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}

	data := make([]Tile, width*height)
	for i := range data {
		data[i] = TileWall
	}

	return &Board{
		size: Coord{X: width, Y: height},
		data: data,
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() uint { return b.size.X }

// Height returns the number of rows.
func (b *Board) Height() uint { return b.size.Y }

// Size returns the board extent.
func (b *Board) Size() Coord { return b.size }

// Start returns the cell generation starts carving from.
func (b *Board) Start() Coord { return b.start }

// Player returns the current player position.
func (b *Board) Player() Coord { return b.player }

// Done reports whether the player has reached the exit.
// Once true it stays true for the life of the board.
func (b *Board) Done() bool { return b.done }

// InBounds returns true if (x, y) lies on the board.
func (b *Board) InBounds(x, y uint) bool {
	return x < b.size.X && y < b.size.Y
}

// Get returns the tile at (x, y), or TileWall when out of bounds.
func (b *Board) Get(x, y uint) Tile {
	if !b.InBounds(x, y) {
		return TileWall
	}
	return b.data[x+y*b.size.X]
}

// Set overwrites the tile at (x, y). Out of bounds writes are ignored.
func (b *Board) Set(x, y uint, tile Tile) {
	if !b.InBounds(x, y) {
		return
	}
	b.data[x+y*b.size.X] = tile
}

// IsWall returns true if (x, y) is on the board and holds a wall.
func (b *Board) IsWall(x, y uint) bool {
	return b.InBounds(x, y) && b.Get(x, y) == TileWall
}

// IsEmpty returns true if (x, y) is on the board and holds an empty tile.
func (b *Board) IsEmpty(x, y uint) bool {
	return b.InBounds(x, y) && b.Get(x, y) == TileEmpty
}

// Neighbors returns the cells dist steps away from (x, y) along each axis
// that satisfy match. Offsets that would underflow or overflow are skipped.
func (b *Board) Neighbors(x, y, dist uint, match func(x, y uint) bool) []Coord {
	origin := Coord{X: x, Y: y}
	found := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		c, ok := origin.offset(d, dist)
		if ok && match(c.X, c.Y) {
			found = append(found, c)
		}
	}
	return found
}

// Count returns how many cells hold the given tile.
func (b *Board) Count(tile Tile) int {
	n := 0
	for _, t := range b.data {
		if t == tile {
			n++
		}
	}
	return n
}

// Exit returns the exit coordinate, if the board has one.
func (b *Board) Exit() (Coord, bool) {
	for i, t := range b.data {
		if t == TileExit {
			idx := uint(i)
			return Coord{X: idx % b.size.X, Y: idx / b.size.X}, true
		}
	}
	return Coord{}, false
}

// String renders the board one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := uint(0); y < b.size.Y; y++ {
		for x := uint(0); x < b.size.X; x++ {
			sb.WriteRune(b.Get(x, y).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
