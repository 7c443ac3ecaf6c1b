package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/blissart/internal/paint"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)
)

// Colorize renders every row in its band colour. Rows are joined by
// newlines without a trailing newline.
func Colorize(canvas *paint.Canvas, theme Theme) string {
	styles := make(map[paint.Band]lipgloss.Style)
	lines := canvas.Lines()
	for y, line := range lines {
		band := canvas.Bands[y]
		st, ok := styles[band]
		if !ok {
			st = lipgloss.NewStyle().Foreground(theme.BandColor(band))
			styles[band] = st
		}
		lines[y] = st.Render(line)
	}
	return strings.Join(lines, "\n")
}

// PlotProfile draws values as an asciigraph line chart.
func PlotProfile(values []float64, width, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Stat renders a "label: value" pair for status lines.
func Stat(label, value string) string {
	return MetricLabel.Render(label+": ") + MetricValue.Render(value)
}
