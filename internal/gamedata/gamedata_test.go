package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	if presets.Count() != 3 {
		t.Errorf("Expected 3 presets, got %d", presets.Count())
	}

	for _, id := range []string{"small", "medium", "large"} {
		p, ok := presets.Get(id)
		if !ok {
			t.Errorf("Expected preset %q not found", id)
			continue
		}
		if p.Width == 0 || p.Height == 0 {
			t.Errorf("Preset %q has zero dimension: %dx%d", id, p.Width, p.Height)
		}
	}

	large, _ := presets.Get("large")
	if large.Width != 51 || large.Height != 51 {
		t.Errorf("large preset = %dx%d, want 51x51", large.Width, large.Height)
	}
}

func TestLoadThemes(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("Failed to load themes: %v", err)
	}

	for _, theme := range themes.All() {
		for name, g := range map[string]Glyph{
			"wall":   theme.Wall,
			"empty":  theme.Empty,
			"exit":   theme.Exit,
			"player": theme.Player,
			"hint":   theme.Hint,
		} {
			if g.Char == "" {
				t.Errorf("theme %q: %s glyph is empty", theme.ID, name)
			}
			if _, err := ParseColor(g.Foreground); err != nil {
				t.Errorf("theme %q: %s color: %v", theme.ID, name, err)
			}
		}
	}

	if _, ok := themes.Get("classic"); !ok {
		t.Error("classic theme not found")
	}
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry([]Preset{
		{ID: "a", Width: 1, Height: 1},
		{ID: "b", Width: 2, Height: 2},
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if got := r.IDs(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("IDs() = %v, want [a b]", got)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) should report not found")
	}

	if _, err := NewRegistry([]Preset{{ID: "a"}, {ID: "a"}}); err == nil {
		t.Error("NewRegistry() with duplicate ids should fail")
	}
	if _, err := NewRegistry([]Preset{{ID: ""}}); err == nil {
		t.Error("NewRegistry() with empty id should fail")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"#00ff00", true},
		{"yellow", true},
		{"gray", true},
		{"", true},
		{"default", true},
		{"invalid", false},
		{"#FFF", false},
	}

	for _, tt := range tests {
		_, err := ParseColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestGlyph(t *testing.T) {
	g := Glyph{Char: "█", Foreground: "bogus"}

	if g.Rune() != '█' {
		t.Errorf("Rune() = %q, want '█'", g.Rune())
	}
	if (Glyph{}).Rune() != '?' {
		t.Error("empty glyph should render as '?'")
	}

	if g.Style() != tcell.StyleDefault {
		t.Error("unknown color should fall back to the default style")
	}
}
