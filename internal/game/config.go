package game

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/mazeband/internal/gamedata"
)

const (
	// DefaultPreset is used when MAZE_PRESET is unset.
	DefaultPreset = "medium"
	// DefaultTheme is used when MAZE_THEME is unset.
	DefaultTheme = "classic"
)

// Config holds game configuration options.
type Config struct {
	Preset string
	Width  uint
	Height uint
	Theme  gamedata.Theme
}

// LookupFunc reads one configuration value. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// LoadConfig resolves the game configuration:
//   - MAZE_PRESET picks a size preset (default "medium")
//   - MAZE_WIDTH and MAZE_HEIGHT override the preset dimensions
//   - MAZE_THEME picks a theme (default "classic")
func LoadConfig(lookup LookupFunc) (Config, error) {
	presets, err := gamedata.LoadPresets()
	if err != nil {
		return Config{}, err
	}
	themes, err := gamedata.LoadThemes()
	if err != nil {
		return Config{}, err
	}

	presetID := getWithDefault(lookup, "MAZE_PRESET", DefaultPreset)
	preset, ok := presets.Get(presetID)
	if !ok {
		return Config{}, fmt.Errorf("unknown MAZE_PRESET %q (have %v)", presetID, presets.IDs())
	}

	themeID := getWithDefault(lookup, "MAZE_THEME", DefaultTheme)
	theme, ok := themes.Get(themeID)
	if !ok {
		return Config{}, fmt.Errorf("unknown MAZE_THEME %q (have %v)", themeID, themes.IDs())
	}

	cfg := Config{
		Preset: preset.ID,
		Width:  preset.Width,
		Height: preset.Height,
		Theme:  theme,
	}
	if cfg.Width, err = dimension(lookup, "MAZE_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = dimension(lookup, "MAZE_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getWithDefault(lookup LookupFunc, key, fallback string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return fallback
}

// dimension reads a positive integer, keeping fallback when the key is unset.
func dimension(lookup LookupFunc, key string, fallback uint) (uint, error) {
	raw, ok := lookup(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return uint(n), nil
}
