package gamedata

// Preset is a named maze size.
type Preset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  uint   `json:"width"`
	Height uint   `json:"height"`
}

// Key implements Identified.
func (p Preset) Key() string { return p.ID }

// presetsFile mirrors presets.json.
type presetsFile struct {
	Presets []Preset `json:"presets"`
}

// LoadPresets indexes the embedded presets.json.
func LoadPresets() (*Registry[Preset], error) {
	return loadRegistry("presets.json", func(f presetsFile) []Preset { return f.Presets })
}

// MustLoadPresets is LoadPresets that panics on error.
func MustLoadPresets() *Registry[Preset] {
	r, err := LoadPresets()
	if err != nil {
		panic(err)
	}
	return r
}
