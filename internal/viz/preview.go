package viz

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/blissart/internal/paint"
	"github.com/san-kum/blissart/internal/storage"
)

// statusLines is the height reserved below the canvas.
const statusLines = 2

type PreviewOptions struct {
	Style  string
	Theme  string
	Seed   int64
	OutDir string
	Width  int
	Height int
}

// Preview is a Bubble Tea model that repaints the canvas to fit the window.
type Preview struct {
	styles        []string
	styleIdx      int
	theme         Theme
	seed          int64
	outDir        string
	width, height int
	canvas        *paint.Canvas
	status        string
	err           error
}

func NewPreview(opts PreviewOptions) (Preview, error) {
	style, err := paint.Lookup(opts.Style)
	if err != nil {
		return Preview{}, err
	}

	m := Preview{
		styles: paint.StyleNames(),
		theme:  GetTheme(opts.Theme),
		seed:   opts.Seed,
		outDir: opts.OutDir,
		width:  opts.Width,
		height: opts.Height,
	}
	for i, name := range m.styles {
		if name == style.Name() {
			m.styleIdx = i
		}
	}
	if m.width <= 0 || m.height <= 0 {
		m.width, m.height = style.DefaultSize()
	}
	m.repaint()
	return m, m.err
}

func (m Preview) Init() tea.Cmd { return nil }

func (m Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - statusLines
		m.repaint()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.seed++
			m.repaint()
		case "s":
			m.styleIdx = (m.styleIdx + 1) % len(m.styles)
			m.repaint()
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "w":
			m.write()
		}
	}
	return m, nil
}

func (m *Preview) repaint() {
	style, err := paint.Lookup(m.styles[m.styleIdx])
	if err != nil {
		m.err = err
		return
	}
	canvas, err := paint.New(style, rand.New(rand.NewSource(m.seed))).Paint(m.width, m.height)
	if err != nil {
		m.err = err
		return
	}
	m.canvas, m.err = canvas, nil
}

func (m *Preview) write() {
	if m.canvas == nil {
		return
	}
	style, err := paint.Lookup(m.canvas.Style)
	if err != nil {
		m.err = err
		return
	}
	path := filepath.Join(m.outDir, style.Output())
	if err := storage.WriteText(path, m.canvas); err != nil {
		m.err = err
		return
	}
	m.status = "saved " + path
}

func (m Preview) View() string {
	var b strings.Builder
	if m.canvas != nil {
		b.WriteString(Colorize(m.canvas, m.theme))
		b.WriteString("\n")
	}

	b.WriteString(HeaderStyle.Render(strings.Join([]string{
		Stat("style", m.styles[m.styleIdx]),
		Stat("theme", m.theme.Name),
		Stat("seed", fmt.Sprint(m.seed)),
		Stat("size", fmt.Sprintf("%dx%d", m.width, m.height)),
	}, "  ")))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(KeyHint.Render("error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Accent).Render(m.status))
	default:
		b.WriteString(KeyHint.Render("r reseed  s style  t theme  w write  q quit"))
	}
	return b.String()
}

// Canvas returns the canvas currently on screen.
func (m Preview) Canvas() *paint.Canvas { return m.canvas }

// RunPreview starts the viewer on the alternate screen.
func RunPreview(opts PreviewOptions) error {
	m, err := NewPreview(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
