package config

import "sort"

var Presets = map[string]map[string]*Config{
	"textured": {
		"wallpaper": {
			Style: "textured", Width: 200, Height: 50, Seed: 1, Output: "bliss_ascii.txt", Theme: "meadow",
		},
		"classic": {
			Style: "textured", Width: 120, Height: 40, Seed: 1, Output: "bliss_ascii.txt", Theme: "meadow",
		},
		"banner": {
			Style: "textured", Width: 200, Height: 16, Seed: 1, Output: "bliss_banner.txt", Theme: "dusk",
		},
	},
	"simple": {
		"wallpaper": {
			Style: "simple", Width: 160, Height: 40, Output: "bliss_simple.txt", Theme: "meadow",
		},
		"wide": {
			Style: "simple", Width: 240, Height: 40, Output: "bliss_simple.txt", Theme: "meadow",
		},
		"tall": {
			Style: "simple", Width: 100, Height: 60, Output: "bliss_simple.txt", Theme: "mono",
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(style, preset string) *Config {
	stylePresets, ok := Presets[style]
	if !ok {
		return nil
	}
	cfg, ok := stylePresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(style string) []string {
	stylePresets, ok := Presets[style]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(stylePresets))
	for name := range stylePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
