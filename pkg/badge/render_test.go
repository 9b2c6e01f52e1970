package badge

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/badges/pkg/errors"
	"github.com/matzehuels/badges/pkg/measure"
	"github.com/matzehuels/badges/pkg/observability"
)

func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read golden file: %v", err)
	}
	return string(data)
}

func renderedBadge(style Style) Badge {
	return New().
		WithStyle(style).
		WithLabel("badge").
		WithLabelColor(Grey).
		WithMessage("rendered").
		WithMessageColor(Green)
}

func TestRenderGolden(t *testing.T) {
	tests := []struct {
		name   string
		style  Style
		golden string
	}{
		{"flat", Flat, "flat.golden.svg"},
		{"flat-square", FlatSquare, "flat_square.golden.svg"},
	}

	r := NewRenderer(measure.Heuristic{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(renderedBadge(tt.style))
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if want := readGolden(t, tt.golden); got != want {
				t.Errorf("Render() mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
			}
		})
	}
}

func TestRenderFlatStructure(t *testing.T) {
	got, err := renderedBadge(Flat).Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	counts := map[string]int{
		"<linearGradient":   1,
		"<mask":             1,
		"<rect":             4, // mask, two backgrounds, gradient overlay
		"<text":             4,
		`fill-opacity=".3"`: 2,
	}
	for needle, want := range counts {
		if n := strings.Count(got, needle); n != want {
			t.Errorf("count(%q) = %d, want %d", needle, n, want)
		}
	}
}

func TestRenderFlatSquareStructure(t *testing.T) {
	got, err := renderedBadge(FlatSquare).Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, absent := range []string{"<mask", "<linearGradient", "fill-opacity"} {
		if strings.Contains(got, absent) {
			t.Errorf("flat-square output should not contain %q", absent)
		}
	}
	if n := strings.Count(got, "<text"); n != 2 {
		t.Errorf("count(<text) = %d, want 2", n)
	}
	if !strings.Contains(got, `<g shape-rendering="crispEdges">`) {
		t.Error("flat-square output should use crispEdges on the background group")
	}
}

func TestRenderWidthIsSumOfSegments(t *testing.T) {
	m := measure.Default()
	b := renderedBadge(Flat)
	l := NewRenderer(m).Layout(b)

	left, right := int(m.Measure("badge")), int(m.Measure("rendered"))
	if l.Left.Width != left || l.Right.Width != right {
		t.Errorf("segment widths = (%d, %d), want (%d, %d)", l.Left.Width, l.Right.Width, left, right)
	}
	if l.Width != left+right {
		t.Errorf("Width = %d, want %d", l.Width, left+right)
	}
	if l.Height != Height {
		t.Errorf("Height = %d, want %d", l.Height, Height)
	}

	svg, err := b.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	header := `<svg xmlns="http://www.w3.org/2000/svg" width="` + strconv.Itoa(left+right) + `" height="20">`
	if !strings.HasPrefix(svg, header) {
		t.Errorf("Render() should start with %q, got %q", header, strings.SplitN(svg, "\n", 2)[0])
	}
}

func TestLayoutTextCenters(t *testing.T) {
	l := NewRenderer(measure.Heuristic{}).Layout(New().WithLabel("abc").WithMessage("de"))

	// 3*8+16 = 40, 2*8+16 = 32
	if l.Left.TextX() != 20 {
		t.Errorf("Left.TextX() = %d, want 20", l.Left.TextX())
	}
	if l.Right.X != 40 || l.Right.TextX() != 56 {
		t.Errorf("Right = (x=%d, center=%d), want (40, 56)", l.Right.X, l.Right.TextX())
	}
}

func TestLayoutOddWidthTruncates(t *testing.T) {
	l := NewRenderer(fixedMeasurer(25)).Layout(New())
	if got := l.Left.TextX(); got != 12 {
		t.Errorf("Left.TextX() = %d, want 12", got)
	}
	if got := l.Right.TextX(); got != 37 {
		t.Errorf("Right.TextX() = %d, want 37", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	b := New().WithLabel("coverage").WithMessage("97%").WithMessageColor(Yellow)
	first, err := b.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	second, err := b.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if first != second {
		t.Error("rendering the same badge twice should produce identical output")
	}
}

func TestRenderEscapesText(t *testing.T) {
	r := NewRenderer(measure.Heuristic{})
	got, err := r.Render(New().WithLabel("a<b").WithMessage("x & y"))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(got, ">a&lt;b</text>") {
		t.Error("label should be XML-escaped")
	}
	if !strings.Contains(got, ">x &amp; y</text>") {
		t.Error("message should be XML-escaped")
	}
	if strings.Contains(got, "a<b") {
		t.Error("raw '<' leaked into markup")
	}
}

func TestRenderEscapesQuotes(t *testing.T) {
	r := NewRenderer(measure.Heuristic{})
	got, err := r.Render(New().
		WithStyle(FlatSquare).
		WithLabel("it's").
		WithMessage(`"ok" & <b>`))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, want := range []string{
		`<text x="24" y="14">it&#x27;s</text>`,
		`<text x="96" y="14">&quot;ok&quot; &amp; &lt;b&gt;</text>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() should contain %q\n%s", want, got)
		}
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a&b", "a&amp;b"},
		{"<tag>", "&lt;tag&gt;"},
		{`"q"`, "&quot;q&quot;"},
		{"it's", "it&#x27;s"},
		{"&amp;", "&amp;amp;"},
		{"tab\there", "tab\there"},
		{"日本語", "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := escapeXML(tt.in); got != tt.want {
				t.Errorf("escapeXML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderEmptyText(t *testing.T) {
	r := NewRenderer(measure.Heuristic{})
	got, err := r.Render(New().WithLabel("").WithMessage(""))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(got, `width="32" height="20"`) {
		t.Errorf("empty badge should be 32px wide, got %q", strings.SplitN(got, "\n", 2)[0])
	}
}

func TestRenderUnknownStyle(t *testing.T) {
	_, err := NewRenderer(measure.Heuristic{}).Render(New().WithStyle(Style(42)))
	if err == nil {
		t.Fatal("Render() with unknown style should fail")
	}

	var re *RenderError
	if !stderrors.As(err, &re) {
		t.Fatalf("error = %T, want *RenderError", err)
	}
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeRender)
	}
	if !strings.HasPrefix(err.Error(), "failed to render SVG: ") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRenderConcurrent(t *testing.T) {
	b := renderedBadge(Flat)
	want, err := b.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = b.Render()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("goroutine %d rendered different output", i)
		}
	}
}

func TestRenderContextReportsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetRenderHooks(hooks)
	defer observability.Reset()

	r := NewRenderer(measure.Heuristic{})
	if _, err := r.RenderContext(context.Background(), renderedBadge(FlatSquare)); err != nil {
		t.Fatalf("RenderContext() error: %v", err)
	}

	if hooks.calls != 1 {
		t.Fatalf("OnRender called %d times, want 1", hooks.calls)
	}
	if hooks.style != "flat-square" || hooks.width != 136 || hooks.err != nil {
		t.Errorf("OnRender(style=%q, width=%d, err=%v), want (flat-square, 136, nil)", hooks.style, hooks.width, hooks.err)
	}
}

type recordingHooks struct {
	calls int
	style string
	width int
	err   error
}

func (h *recordingHooks) OnRender(_ context.Context, style string, width int, _ time.Duration, err error) {
	h.calls++
	h.style, h.width, h.err = style, width, err
}

type fixedMeasurer uint16

func (f fixedMeasurer) Measure(string) uint16 { return uint16(f) }
