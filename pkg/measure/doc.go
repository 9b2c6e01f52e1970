// Package measure computes the pixel width of badge segment text.
//
// Two [Measurer] implementations are provided:
//
//   - [Shaped] shapes the text with HarfBuzz (github.com/go-text/typesetting)
//     against the embedded DejaVu Sans font at 11px, sums the glyph advances,
//     scales them from design units to pixels and adds 24px of padding.
//   - [Heuristic] assumes 8px per rune plus 16px of padding. It is useful
//     where exact output is pinned by golden files, or when shaping is turned
//     off in configuration.
//
// Both truncate toward zero and clamp to 65535, so a renderer never needs to
// know which one it was given.
//
//	m := measure.New(measure.ModeShape)
//	w := m.Measure("passing")
package measure
