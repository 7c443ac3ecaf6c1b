// Package viz renders painted canvases for the terminal.
//
//   - [Theme]: per-band colour scheme (meadow, dusk, mono)
//   - [Colorize]: lipgloss-styled canvas rows
//   - [PlotProfile]: asciigraph line plot of a hill profile
//   - [Preview]: Bubble Tea viewer
//
// # Key Bindings
//
//	r     - Repaint with a fresh seed
//	s     - Cycle styles
//	t     - Cycle themes
//	w     - Write the canvas to its output file
//	q     - Quit
package viz
