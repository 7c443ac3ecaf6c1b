// Package paint renders the hills-and-sky landscape as a character grid.
//
// The package defines the painting primitives:
//
//   - [Canvas]: immutable grid of runes with the band of every row
//   - [Band]: horizontal region of the canvas sharing one rendering rule
//   - [Style]: per-cell rule set (see [Textured] and [Simple])
//   - [Painter]: drives a style over a width x height grid
//
// # Example
//
//	style, _ := paint.Lookup("simple")
//	p := paint.New(style, rand.New(rand.NewSource(42)))
//	canvas, err := p.Paint(160, 40)
//
// # Entropy
//
// Styles that sample randomness draw from the [Source] handed to [New], so
// a fixed seed reproduces the same canvas. Deterministic styles ignore it.
package paint
