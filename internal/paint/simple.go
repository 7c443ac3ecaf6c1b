package paint

import "math"

const (
	skyEnd       = 0.25
	horizonStart = 0.4
	hillPeak     = 0.7
)

// Simple derives a per-column horizon from a sum of two sine waves and
// shades rows below it in fixed sub-bands. It uses no randomness.
type Simple struct{}

func (Simple) Name() string   { return "simple" }
func (Simple) Output() string { return "bliss_simple.txt" }

func (Simple) DefaultSize() (int, int) { return 160, 40 }

func (Simple) Deterministic() bool { return true }

func (Simple) Bounds() []Boundary {
	return []Boundary{
		{Band: BandSky, Until: skyEnd},
		{Band: BandCloud, Until: horizonStart},
		{Band: BandHill, Until: 1.0},
	}
}

func (Simple) Charset(b Band) []rune {
	switch b {
	case BandSky:
		return []rune{' ', '.'}
	case BandCloud:
		return []rune{' ', '~'}
	case BandHill:
		return []rune{' ', '.', ':', ';', '#'}
	}
	return nil
}

func (Simple) Cell(b Band, x, y, height int, _ Source) rune {
	switch b {
	case BandSky:
		if (x+y*7)%23 == 0 {
			return '.'
		}
		return ' '
	case BandCloud:
		if (x*3+y*5)%31 == 0 {
			return '~'
		}
		return ' '
	}

	horizon := Horizon(x, height)
	depth := float64(y)
	switch {
	case depth < horizon:
		return ' '
	case depth < horizon+3:
		return '.'
	case depth < horizon+8:
		return ':'
	case depth < horizon+15:
		return ';'
	default:
		return '#'
	}
}

// Horizon is the row (as a fraction) where the hill crest starts in column x.
func Horizon(x, height int) float64 {
	h := float64(height)
	fx := float64(x)
	wave := math.Sin(fx*0.15)*4 + math.Sin(fx*0.08+2)*6
	start := h * horizonStart
	return start + (h*hillPeak-start)*0.5 + wave
}

// HorizonProfile returns the hill height above the bottom edge for every
// column, clipped to [0, height].
func HorizonProfile(width, height int) ([]float64, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	profile := make([]float64, width)
	for x := range profile {
		v := float64(height) - Horizon(x, height)
		profile[x] = math.Max(0, math.Min(float64(height), v))
	}
	return profile, nil
}
