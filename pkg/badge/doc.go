// Package badge renders two-segment status badges ("build | passing") as SVG.
//
// # Overview
//
// A [Badge] holds a [Style], a label and a message, and a background [Color]
// for each. A [Renderer] measures both texts with a [measure.Measurer],
// lays out the two segments side by side and writes the markup through a
// fixed template per style:
//
//   - [Flat]: rounded corners (rx=3) through a mask, a light gloss gradient,
//     and each text drawn twice, a dark translucent shadow one pixel lower
//     and the white text on top.
//   - [FlatSquare]: square segments with shape-rendering="crispEdges" and a
//     single text layer.
//
// The markup matches the widely used flat badge convention byte for byte, so
// output can be compared against golden files.
//
// # Colors
//
// [ParseColor] accepts palette names (green, light-green, yellow, red,
// grey/gray, light-grey/light-gray) and '#' hex colors with 3 or 6 digits.
// Invalid input returns an [*InvalidColorError] carrying the input verbatim.
//
// # Usage
//
//	svg, err := badge.New().
//	    WithLabel("build").
//	    WithMessage("passing").
//	    WithMessageColor(badge.Green).
//	    Render()
//
// [Badge.Render] uses the shaping measurer. Use [NewRenderer] to choose
// another one:
//
//	r := badge.NewRenderer(measure.Heuristic{})
//	svg, err := r.Render(b)
package badge
