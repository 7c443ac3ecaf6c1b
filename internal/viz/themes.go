package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/blissart/internal/paint"
)

// Theme defines the foreground colour of every band.
type Theme struct {
	Name      string
	Sky       lipgloss.Color
	Cloud     lipgloss.Color
	UpperHill lipgloss.Color
	LowerHill lipgloss.Color
	Hill      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
}

var (
	ThemeMeadow = Theme{
		Name:      "meadow",
		Sky:       lipgloss.Color("#7ec8ff"), // Clear blue
		Cloud:     lipgloss.Color("#f4f8ff"),
		UpperHill: lipgloss.Color("#7bd148"), // Sunlit grass
		LowerHill: lipgloss.Color("#2e8b2e"),
		Hill:      lipgloss.Color("#4caf32"),
		Muted:     lipgloss.Color("#666688"),
		Accent:    lipgloss.Color("#00ffff"),
	}

	ThemeDusk = Theme{
		Name:      "dusk",
		Sky:       lipgloss.Color("#ff9ff3"),
		Cloud:     lipgloss.Color("#feca57"),
		UpperHill: lipgloss.Color("#5f8f68"),
		LowerHill: lipgloss.Color("#2d4b36"),
		Hill:      lipgloss.Color("#3f6b48"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Accent:    lipgloss.Color("#ff6b6b"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Sky:       lipgloss.Color("#cccccc"),
		Cloud:     lipgloss.Color("#ffffff"),
		UpperHill: lipgloss.Color("#aaaaaa"),
		LowerHill: lipgloss.Color("#888888"),
		Hill:      lipgloss.Color("#999999"),
		Muted:     lipgloss.Color("#666666"),
		Accent:    lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{
		ThemeMeadow,
		ThemeDusk,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, defaulting to meadow.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMeadow
}

// LookupTheme returns the theme registered under name.
func LookupTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: unknown theme %q (available: %v)", paint.ErrInvalidArgument, name, ThemeNames())
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// BandColor returns the foreground for b.
func (t Theme) BandColor(b paint.Band) lipgloss.Color {
	switch b {
	case paint.BandSky:
		return t.Sky
	case paint.BandCloud:
		return t.Cloud
	case paint.BandUpperHill:
		return t.UpperHill
	case paint.BandLowerHill:
		return t.LowerHill
	case paint.BandHill:
		return t.Hill
	}
	return t.Muted
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
