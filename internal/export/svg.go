package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/blissart/internal/paint"
	"github.com/san-kum/blissart/internal/viz"
)

// CanvasToSVG lays the canvas out as monospace text, one <text> element per
// non-blank cell, filled with the band colour from theme.
func CanvasToSVG(canvas *paint.Canvas, theme viz.Theme, cellW, cellH float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * cellW
	height := float64(canvas.Height) * cellH

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g font-family="monospace" font-size="%.1f" text-anchor="middle">
`, width, height, width, height, cellH*0.9))

	for y, row := range canvas.Rows {
		fill := string(theme.BandColor(canvas.Bands[y]))
		baseY := float64(y)*cellH + cellH*0.8

		for x, r := range row {
			if r == ' ' {
				continue
			}
			cx := float64(x)*cellW + cellW/2
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, cx, baseY, fill, html.EscapeString(string(r))))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
