package paint

import (
	"math/rand"
)

// DefaultSeed seeds the painter when no Source is supplied.
const DefaultSeed int64 = 1

// parallelMinRows keeps small canvases on a single goroutine.
const parallelMinRows = 16

// Painter drives a Style over a grid. A Painter is not safe for concurrent
// use because its Source is stateful.
type Painter struct {
	style Style
	src   Source
}

// New returns a painter for style drawing entropy from src. A nil src is
// replaced by a generator seeded with DefaultSeed.
func New(style Style, src Source) *Painter {
	if src == nil {
		src = rand.New(rand.NewSource(DefaultSeed))
	}
	return &Painter{style: style, src: src}
}

// Paint produces a canvas of exactly height rows of width runes each.
func (p *Painter) Paint(width, height int) (*Canvas, error) {
	if p.style == nil {
		return nil, ErrInvalidArgument
	}
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	c := &Canvas{
		Style:  p.style.Name(),
		Width:  width,
		Height: height,
		Rows:   make([][]rune, height),
		Bands:  make([]Band, height),
	}
	bounds := p.style.Bounds()
	for y := range c.Bands {
		c.Bands[y] = Classify(bounds, y, height)
	}

	paintRows := func(start, end int) {
		for y := start; y < end; y++ {
			row := make([]rune, width)
			for x := range row {
				row[x] = p.style.Cell(c.Bands[y], x, y, height, p.src)
			}
			c.Rows[y] = row
		}
	}

	// Sampling styles must visit cells in row-major order to stay
	// reproducible for a given seed.
	if p.style.Deterministic() {
		ParallelFor(height, parallelMinRows, paintRows)
	} else {
		paintRows(0, height)
	}

	return c, nil
}

// FromLines rebuilds a canvas from previously written rows. Rows shorter
// than the widest one are padded with blanks.
func FromLines(style Style, lines []string) (*Canvas, error) {
	if style == nil || len(lines) == 0 {
		return nil, ErrInvalidArgument
	}
	width := 0
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	if width == 0 {
		return nil, &DimensionError{Width: 0, Height: len(lines)}
	}

	c := &Canvas{
		Style:  style.Name(),
		Width:  width,
		Height: len(lines),
		Rows:   rows,
		Bands:  make([]Band, len(lines)),
	}
	bounds := style.Bounds()
	for y, row := range rows {
		for len(row) < width {
			row = append(row, ' ')
		}
		c.Rows[y] = row
		c.Bands[y] = Classify(bounds, y, c.Height)
	}
	return c, nil
}
