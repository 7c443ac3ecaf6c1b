package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/san-kum/blissart/internal/config"
	"github.com/san-kum/blissart/internal/export"
	"github.com/san-kum/blissart/internal/paint"
	"github.com/san-kum/blissart/internal/storage"
	"github.com/san-kum/blissart/internal/viz"
)

var (
	dataDir string
	verbose bool
	width   int
	height  int
	seed    int64
	output  string
	theme   string
	color   bool
	fit     bool
	save    bool
	// Config file
	configFile string
	// Preset name
	preset string
	// Export format
	format string
	outDir string

	logger = log.New(io.Discard, "[blissart] ", 0)
)

// defaultStyles is the order the bare command paints in.
var defaultStyles = []string{"textured", "simple"}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blissart",
		Short: "paint the rolling-hills wallpaper as ascii art",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetOutput(os.Stderr)
				logger.SetFlags(log.LstdFlags)
			}
		},
		RunE: paintDefaults,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".blissart", "gallery directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	renderCmd := &cobra.Command{
		Use:   "render [style]",
		Short: "paint one style",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderStyle,
	}
	renderCmd.Flags().IntVar(&width, "width", 0, "canvas width (default: style default)")
	renderCmd.Flags().IntVar(&height, "height", 0, "canvas height (default: style default)")
	renderCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: style default)")
	renderCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	renderCmd.Flags().BoolVar(&color, "color", false, "colour the terminal output")
	renderCmd.Flags().BoolVar(&fit, "fit", false, "size the canvas to the terminal")
	renderCmd.Flags().BoolVar(&save, "save", false, "also store the render in the gallery")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored renders",
		Args:  cobra.NoArgs,
		RunE:  listRenders,
	}

	showCmd := &cobra.Command{
		Use:   "show [render_id]",
		Short: "print a stored render",
		Args:  cobra.ExactArgs(1),
		RunE:  showRender,
	}
	showCmd.Flags().BoolVar(&color, "color", false, "colour the terminal output")
	showCmd.Flags().StringVar(&theme, "theme", "", "colour theme (default: the render's theme)")

	exportCmd := &cobra.Command{
		Use:   "export [render_id]",
		Short: "export a stored render as json or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRender,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "export format (json|svg)")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&theme, "theme", "", "svg colour theme (default: the render's theme)")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the hill profile of the simple style",
		Args:  cobra.NoArgs,
		RunE:  plotProfile,
	}
	profileCmd.Flags().IntVar(&width, "width", 160, "canvas width")
	profileCmd.Flags().IntVar(&height, "height", 40, "canvas height")

	previewCmd := &cobra.Command{
		Use:   "preview [style]",
		Short: "interactive terminal preview",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	previewCmd.Flags().StringVar(&outDir, "out-dir", ".", "directory the w key writes to")

	presetsCmd := &cobra.Command{
		Use:   "presets [style]",
		Short: "list available presets for a style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for style: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, p := range presets {
				cfg := config.GetPreset(args[0], p)
				fmt.Fprintf(out, "  %-10s %dx%d -> %s\n", p, cfg.Width, cfg.Height, cfg.Output)
			}
			return nil
		},
	}

	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "list painting styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STYLE\tSIZE\tOUTPUT\tDETERMINISTIC")
			for _, name := range paint.StyleNames() {
				s, _ := paint.Lookup(name)
				sw, sh := s.DefaultSize()
				fmt.Fprintf(w, "%s\t%dx%d\t%s\t%v\n", name, sw, sh, s.Output(), s.Deterministic())
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(renderCmd, listCmd, showCmd, exportCmd, profileCmd, previewCmd, presetsCmd, stylesCmd)
	return rootCmd
}

// paintDefaults paints every style at its default size, printing each row
// and writing the style's output file.
func paintDefaults(cmd *cobra.Command, args []string) error {
	for i, name := range defaultStyles {
		cfg := config.DefaultConfig(name)
		cfg.Seed = seed + int64(i)
		if _, err := paintAndWrite(cmd.OutOrStdout(), cfg); err != nil {
			return err
		}
	}
	return nil
}

func renderStyle(cmd *cobra.Command, args []string) error {
	style := config.DefaultStyle
	if len(args) > 0 {
		style = args[0]
	}

	cfg, err := resolveConfig(cmd, style)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	canvas, err := paintAndWrite(out, cfg)
	if err != nil {
		return err
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		renderID, err := st.Save(canvas, cfg.Seed, cfg.Theme)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "render id: %s\n", renderID)
	}
	return nil
}

// resolveConfig layers style defaults, a preset, a config file and explicit
// flags, in increasing precedence.
func resolveConfig(cmd *cobra.Command, style string) (*config.Config, error) {
	if _, err := paint.Lookup(style); err != nil {
		return nil, err
	}
	cfg := config.DefaultConfig(style)

	if preset != "" {
		p := config.GetPreset(style, preset)
		if p == nil {
			return nil, fmt.Errorf("%w: unknown preset: %s (available: %v)", paint.ErrInvalidArgument, preset, config.ListPresets(style))
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if fileCfg.Style != style {
			logger.Printf("config style %s overrides %s", fileCfg.Style, style)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("seed") || (preset == "" && configFile == "") {
		cfg.Seed = seed
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("color") {
		cfg.Color = color
	}

	if _, err := viz.LookupTheme(cfg.Theme); err != nil {
		return nil, err
	}

	if fit {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			logger.Printf("terminal size unavailable, keeping %dx%d: %v", cfg.Width, cfg.Height, err)
		} else {
			// Leave room for the summary lines.
			cfg.Width, cfg.Height = w, h-3
		}
	}

	return cfg, cfg.Validate()
}

func paintConfig(cfg *config.Config) (*paint.Canvas, error) {
	style, err := paint.Lookup(cfg.Style)
	if err != nil {
		return nil, err
	}
	logger.Printf("painting %s %dx%d seed=%d", cfg.Style, cfg.Width, cfg.Height, cfg.Seed)

	start := time.Now()
	canvas, err := paint.New(style, rand.New(rand.NewSource(cfg.Seed))).Paint(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	logger.Printf("painted %d cells in %v", cfg.Width*cfg.Height, time.Since(start))
	return canvas, nil
}

// paintAndWrite prints the canvas for cfg row by row, then writes it to
// cfg.Output.
func paintAndWrite(out io.Writer, cfg *config.Config) (*paint.Canvas, error) {
	canvas, err := paintConfig(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Color {
		fmt.Fprintln(out, viz.Colorize(canvas, viz.GetTheme(cfg.Theme)))
	} else {
		printRows(out, canvas)
	}

	if err := storage.WriteText(cfg.Output, canvas); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "\nGenerated %d lines of ASCII art\n", canvas.Height)
	fmt.Fprintf(out, "Saved to %s\n", cfg.Output)
	return canvas, nil
}

func printRows(out io.Writer, canvas *paint.Canvas) {
	for _, line := range canvas.Lines() {
		fmt.Fprintln(out, line)
	}
}

func listRenders(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	renders, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(renders) == 0 {
		fmt.Fprintln(out, "no renders found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTYLE\tTIME\tSIZE\tSEED\tTHEME")

	for _, r := range renders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\n",
			r.ID,
			r.Style,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Width,
			r.Height,
			r.Seed,
			r.Theme,
		)
	}

	return w.Flush()
}

func showRender(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, canvas, err := st.LoadCanvas(args[0])
	if err != nil {
		return err
	}

	th, err := themeFor(cmd, meta)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if color {
		fmt.Fprintln(out, viz.Colorize(canvas, th))
		return nil
	}
	printRows(out, canvas)
	return nil
}

func exportRender(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, canvas, err := st.LoadCanvas(args[0])
	if err != nil {
		return err
	}

	th, err := themeFor(cmd, meta)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(filepath.Clean(output))
		if err != nil {
			return fmt.Errorf("%w: %v", paint.ErrIOFailure, err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		return storage.ExportJSON(out, meta, canvas)
	case "svg":
		_, err := io.WriteString(out, export.CanvasToSVG(canvas, th, 8, 16))
		return err
	default:
		return fmt.Errorf("%w: unknown format: %s (available: json, svg)", paint.ErrInvalidArgument, format)
	}
}

// themeFor picks the --theme override or the theme the render was saved
// with. Renders from before theme validation fall back to the default.
func themeFor(cmd *cobra.Command, meta *storage.RenderMetadata) (viz.Theme, error) {
	if cmd.Flags().Changed("theme") {
		return viz.LookupTheme(theme)
	}
	return viz.GetTheme(meta.Theme), nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	profile, err := paint.HorizonProfile(width, height)
	if err != nil {
		return err
	}

	graph := viz.PlotProfile(profile, 80, 12, fmt.Sprintf("hill height by column (%dx%d)", width, height))
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	style := config.DefaultStyle
	if len(args) > 0 {
		style = args[0]
	}
	if _, err := viz.LookupTheme(theme); err != nil {
		return err
	}
	return viz.RunPreview(viz.PreviewOptions{
		Style:  style,
		Theme:  theme,
		Seed:   seed,
		OutDir: outDir,
	})
}
