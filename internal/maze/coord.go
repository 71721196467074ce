package maze

// Direction is one of the four axis-aligned steps a player can take.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Coord identifies a cell, or a board extent, in the unsigned domain.
type Coord struct {
	X, Y uint
}

// Step returns the neighboring coordinate in the given direction.
// ok is false when the step would leave the unsigned domain.
func (c Coord) Step(d Direction) (next Coord, ok bool) {
	return c.offset(d, 1)
}

// offset moves dist cells in direction d, reporting underflow and overflow
// as a missing neighbor rather than wrapping.
func (c Coord) offset(d Direction, dist uint) (Coord, bool) {
	switch d {
	case Up:
		if c.Y < dist {
			return c, false
		}
		return Coord{c.X, c.Y - dist}, true
	case Down:
		if c.Y+dist < c.Y {
			return c, false
		}
		return Coord{c.X, c.Y + dist}, true
	case Left:
		if c.X < dist {
			return c, false
		}
		return Coord{c.X - dist, c.Y}, true
	case Right:
		if c.X+dist < c.X {
			return c, false
		}
		return Coord{c.X + dist, c.Y}, true
	default:
		return c, false
	}
}

// midpoint returns the cell halfway between two cells on the same axis.
func midpoint(a, b Coord) Coord {
	return Coord{X: mid(a.X, b.X), Y: mid(a.Y, b.Y)}
}

func mid(a, b uint) uint {
	if a > b {
		a, b = b, a
	}
	return a + (b-a)/2
}
