package ui

import (
	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/maze"
)

// Renderer draws a maze view using a theme.
type Renderer struct {
	screen *Screen
	theme  gamedata.Theme
}

// NewRenderer creates a renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Frame is everything drawn in one pass.
type Frame struct {
	View   maze.View
	Hint   []maze.Direction // optional path from the player, drawn over empty tiles
	Status string
}

// Render draws the board, the hint path, the player and the status line.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	v := f.View
	for y := uint(0); y < v.Height(); y++ {
		for x := uint(0); x < v.Width(); x++ {
			g := r.glyph(v.Get(x, y))
			r.screen.SetContent(int(x), int(y), g.Rune(), g.Style())
		}
	}

	for _, c := range hintCells(v.Player(), f.Hint) {
		if v.Get(c.X, c.Y) == maze.TileEmpty {
			r.screen.SetContent(int(c.X), int(c.Y), r.theme.Hint.Rune(), r.theme.Hint.Style())
		}
	}

	p := v.Player()
	r.screen.SetContent(int(p.X), int(p.Y), r.theme.Player.Rune(), r.theme.Player.Style().Bold(true))

	r.RenderMessage(f.Status, int(v.Height())+1)

	r.screen.Show()
}

// RenderMessage writes a line of text starting at column 0.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := r.theme.StatusStyle()
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}

func (r *Renderer) glyph(t maze.Tile) gamedata.Glyph {
	switch t {
	case maze.TileEmpty:
		return r.theme.Empty
	case maze.TileExit:
		return r.theme.Exit
	default:
		return r.theme.Wall
	}
}

// hintCells walks path from start and returns every cell visited after it.
func hintCells(start maze.Coord, path []maze.Direction) []maze.Coord {
	cells := make([]maze.Coord, 0, len(path))
	cur := start
	for _, d := range path {
		next, ok := cur.Step(d)
		if !ok {
			break
		}
		cells = append(cells, next)
		cur = next
	}
	return cells
}
