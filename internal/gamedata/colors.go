package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a W3C color name ("maroon") or a hex string ("#800000")
// to a tcell.Color. The empty string maps to the terminal default.
func ParseColor(s string) (tcell.Color, error) {
	if s == "" || s == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("gamedata: unknown color %q", s)
	}
	return c, nil
}

// colorOr parses s, falling back when it is not a valid color.
func colorOr(s string, fallback tcell.Color) tcell.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
