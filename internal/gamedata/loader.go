package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load decodes the named embedded JSON file into a T.
func Load[T any](filename string) (T, error) {
	var out T

	raw, err := dataFS.ReadFile(filename)
	if err != nil {
		return out, fmt.Errorf("gamedata: read %s: %w", filename, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("gamedata: decode %s: %w", filename, err)
	}

	return out, nil
}

// loadRegistry decodes a file, extracts its entries and indexes them by ID.
func loadRegistry[F any, T Identified](filename string, entries func(F) []T) (*Registry[T], error) {
	file, err := Load[F](filename)
	if err != nil {
		return nil, err
	}
	list := entries(file)
	if len(list) == 0 {
		return nil, fmt.Errorf("gamedata: %s has no entries", filename)
	}
	return NewRegistry(list)
}
