package badge

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/badges/pkg/measure"
	"github.com/matzehuels/badges/pkg/observability"
)

// Height is the fixed badge height in pixels.
const Height = 20

var defaultRenderer = NewRenderer(nil)

// Segment is one half of a rendered badge.
type Segment struct {
	Text  string
	Color Color
	X     int // left edge
	Width int
}

// TextX returns the horizontal center of the segment, where its text is
// anchored.
func (s Segment) TextX() int {
	return s.X + s.Width/2
}

// Layout is the geometry of a badge, computed fresh for every render.
type Layout struct {
	Style  Style
	Left   Segment
	Right  Segment
	Width  int
	Height int
}

// Renderer turns badges into SVG documents. It holds no mutable state and is
// safe for concurrent use.
type Renderer struct {
	measurer measure.Measurer
}

// NewRenderer returns a Renderer that sizes segments with m. A nil m selects
// measure.Default.
func NewRenderer(m measure.Measurer) *Renderer {
	if m == nil {
		m = measure.Default()
	}
	return &Renderer{measurer: m}
}

// Layout computes segment widths and positions for b.
func (r *Renderer) Layout(b Badge) Layout {
	leftWidth := int(r.measurer.Measure(b.Label))
	rightWidth := int(r.measurer.Measure(b.Message))

	return Layout{
		Style:  b.Style,
		Left:   Segment{Text: b.Label, Color: b.LabelColor, X: 0, Width: leftWidth},
		Right:  Segment{Text: b.Message, Color: b.MessageColor, X: leftWidth, Width: rightWidth},
		Width:  leftWidth + rightWidth,
		Height: Height,
	}
}

// Render renders b to SVG markup. Template failures are returned as
// *RenderError.
func (r *Renderer) Render(b Badge) (string, error) {
	return r.RenderContext(context.Background(), b)
}

// RenderContext is like Render and additionally reports the render to the
// registered observability hooks.
func (r *Renderer) RenderContext(ctx context.Context, b Badge) (string, error) {
	start := time.Now()
	l := r.Layout(b)

	svg, err := execute(l)
	observability.Render().OnRender(ctx, b.Style.String(), l.Width, time.Since(start), err)
	return svg, err
}

func execute(l Layout) (string, error) {
	tmpl, ok := templates[l.Style]
	if !ok {
		return "", &RenderError{Err: fmt.Errorf("unknown style %d", int(l.Style))}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, l); err != nil {
		return "", &RenderError{Err: err}
	}
	return buf.String(), nil
}
