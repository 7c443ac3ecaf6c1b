package paint

import (
	"strings"
)

// Band is a horizontal region of the canvas sharing one rendering rule.
type Band int

const (
	BandSky Band = iota
	BandCloud
	BandUpperHill
	BandLowerHill
	BandHill
)

var bandNames = map[Band]string{
	BandSky:       "sky",
	BandCloud:     "cloud",
	BandUpperHill: "upper_hill",
	BandLowerHill: "lower_hill",
	BandHill:      "hill",
}

func (b Band) String() string {
	if name, ok := bandNames[b]; ok {
		return name
	}
	return "unknown"
}

// Boundary closes a band at Until*height. The last boundary of a style is
// open-ended regardless of its Until value.
type Boundary struct {
	Band  Band
	Until float64
}

// Classify maps row y of a canvas with the given height onto a band. The
// first boundary with y < Until*height wins; rows past every threshold fall
// into the last band.
func Classify(bounds []Boundary, y, height int) Band {
	for i, b := range bounds {
		if i == len(bounds)-1 || float64(y) < float64(height)*b.Until {
			return b.Band
		}
	}
	return BandSky
}

// Source is the entropy a style samples from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Style paints a single cell. The painter classifies the row first and
// passes its band; Cell must return a rune from Charset(b).
type Style interface {
	Name() string
	// Output is the file name the style writes to by default.
	Output() string
	// DefaultSize is the width and height the style is painted at when
	// nothing else is requested.
	DefaultSize() (width, height int)
	Bounds() []Boundary
	Charset(b Band) []rune
	// Deterministic reports whether Cell ignores its Source.
	Deterministic() bool
	Cell(b Band, x, y, height int, src Source) rune
}

// Canvas is a painted grid. Rows and Bands are shared with every reader,
// so callers must not modify them; Lines returns independent copies.
type Canvas struct {
	Style  string
	Width  int
	Height int
	Rows   [][]rune
	Bands  []Band
}

// Lines returns every row as a string.
func (c *Canvas) Lines() []string {
	lines := make([]string, len(c.Rows))
	for i, row := range c.Rows {
		lines[i] = string(row)
	}
	return lines
}

// String joins the rows with newlines, without a trailing newline.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
