// Package gamedata provides the embedded size presets and visual themes.
package gamedata

import "embed"

// dataFS holds every JSON file in this directory.
//
//go:embed *.json
var dataFS embed.FS
