package paint

// Palette is an ordered rune set, lightest first.
type Palette []rune

// Index scales intensity onto the palette and clamps the result to
// [0, len-1]. Scaling truncates toward zero.
func (p Palette) Index(intensity float64) int {
	idx := int(intensity * float64(len(p)-1))
	if idx < 0 {
		idx = 0
	}
	if idx > len(p)-1 {
		idx = len(p) - 1
	}
	return idx
}

// Pick returns the palette rune for intensity.
func (p Palette) Pick(intensity float64) rune {
	return p[p.Index(intensity)]
}

var (
	starGlyphs  = []rune{'.', '˚', '*'}
	cloudGlyphs = []rune{'~', '∼', '≈'}

	hillPalette  = Palette{' ', '.', ':', ';', '/', '\\', '|', '#'}
	grassPalette = Palette{'/', '\\', '|', ';', ',', '\'', '"', '#'}
)

func withBlank(glyphs []rune) []rune {
	out := make([]rune, 0, len(glyphs)+1)
	out = append(out, ' ')
	return append(out, glyphs...)
}
