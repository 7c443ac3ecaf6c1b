package paint

import "math"

const (
	starChance  = 0.05
	cloudChance = 0.08
)

// Textured layers two truncated sine terms per hill band and scales the
// sum onto a palette. Sky and cloud cells are sampled from the Source.
type Textured struct{}

func (Textured) Name() string   { return "textured" }
func (Textured) Output() string { return "bliss_ascii.txt" }

func (Textured) DefaultSize() (int, int) { return 200, 50 }

func (Textured) Deterministic() bool { return false }

func (Textured) Bounds() []Boundary {
	return []Boundary{
		{Band: BandSky, Until: 0.3},
		{Band: BandCloud, Until: 0.4},
		{Band: BandUpperHill, Until: 0.6},
		{Band: BandLowerHill, Until: 1.0},
	}
}

func (Textured) Charset(b Band) []rune {
	switch b {
	case BandSky:
		return withBlank(starGlyphs)
	case BandCloud:
		return withBlank(cloudGlyphs)
	case BandUpperHill:
		return hillPalette
	case BandLowerHill:
		return grassPalette
	}
	return nil
}

func (Textured) Cell(b Band, x, y, height int, src Source) rune {
	switch b {
	case BandSky:
		return sample(src, starChance, starGlyphs)
	case BandCloud:
		return sample(src, cloudChance, cloudGlyphs)
	case BandUpperHill:
		return hillPalette.Pick(upperIntensity(x, y, height))
	default:
		return grassPalette.Pick(lowerIntensity(x, y, height))
	}
}

// sample draws the chance first and only picks a glyph on a hit, so the
// source advances one or two steps per cell.
func sample(src Source, chance float64, glyphs []rune) rune {
	if src.Float64() < chance {
		return glyphs[src.Intn(len(glyphs))]
	}
	return ' '
}

func upperIntensity(x, y, height int) float64 {
	fx, fy, h := float64(x), float64(y), float64(height)
	w1 := math.Trunc(3 * math.Sin(fx*0.3+fy*0.2))
	w2 := math.Trunc(2 * math.Sin(fx*0.5-fy*0.1))
	return (fy-h*0.4)/(h*0.2) + (w1+w2)*0.1
}

func lowerIntensity(x, y, height int) float64 {
	fx, fy, h := float64(x), float64(y), float64(height)
	w1 := math.Trunc(4 * math.Sin(fx*0.2+fy*0.3))
	w2 := math.Trunc(3 * math.Sin(fx*0.4-fy*0.15))
	return (fy-h*0.6)/(h*0.4) + (w1+w2)*0.15
}
