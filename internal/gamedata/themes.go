package gamedata

import "github.com/gdamore/tcell/v2"

// Glyph is a character and the colors it is drawn with.
type Glyph struct {
	Char       string `json:"char"`
	Foreground string `json:"fg"`
	Background string `json:"bg,omitempty"`
}

// Rune returns the first character of the glyph, or '?' if it is empty.
func (g Glyph) Rune() rune {
	for _, r := range g.Char {
		return r
	}
	return '?'
}

// Style returns the tcell style for the glyph. Unknown colors fall back to
// the terminal defaults.
func (g Glyph) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(colorOr(g.Foreground, tcell.ColorDefault)).
		Background(colorOr(g.Background, tcell.ColorDefault))
}

// Theme decides how each part of the board is drawn.
type Theme struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Wall   Glyph  `json:"wall"`
	Empty  Glyph  `json:"empty"`
	Exit   Glyph  `json:"exit"`
	Player Glyph  `json:"player"`
	Hint   Glyph  `json:"hint"`
	Status string `json:"status"`
}

// Key implements Identified.
func (t Theme) Key() string { return t.ID }

// StatusStyle returns the style of the status line.
func (t Theme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(colorOr(t.Status, tcell.ColorWhite))
}

// themesFile mirrors themes.json.
type themesFile struct {
	Themes []Theme `json:"themes"`
}

// LoadThemes indexes the embedded themes.json.
func LoadThemes() (*Registry[Theme], error) {
	return loadRegistry("themes.json", func(f themesFile) []Theme { return f.Themes })
}

// MustLoadThemes is LoadThemes that panics on error.
func MustLoadThemes() *Registry[Theme] {
	r, err := LoadThemes()
	if err != nil {
		panic(err)
	}
	return r
}
