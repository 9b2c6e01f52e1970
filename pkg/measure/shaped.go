package measure

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/badges/pkg/fonts"
)

// shapedPadding keeps the segment edge clear of the text.
const shapedPadding = 24

var defaultShaped = NewShaped(fonts.DejaVuSans, fonts.Size)

// Shaped measures text by shaping it with HarfBuzz against a font and summing
// glyph advances. The font is loaded lazily through its loader on the first
// Measure call. Shaped is safe for concurrent use.
type Shaped struct {
	load func() *font.Font
	size float64

	pool sync.Pool
}

// shaper bundles the per-goroutine shaping state. Faces cache glyph extents
// and HarfbuzzShaper reuses its buffer, so neither may be shared.
type shaper struct {
	face *font.Face
	hb   shaping.HarfbuzzShaper
	text []rune
}

// NewShaped returns a Shaped measurer for the font returned by load, at size
// pixels. load is called at most once per pooled shaper and should return a
// cached font.
func NewShaped(load func() *font.Font, size float64) *Shaped {
	s := &Shaped{load: load, size: size}
	s.pool.New = func() any {
		sh := &shaper{face: font.NewFace(s.load())}
		sh.hb.SetFontCacheSize(1)
		return sh
	}
	return s
}

// Measure implements Measurer.
func (s *Shaped) Measure(text string) uint16 {
	sh := s.pool.Get().(*shaper)
	defer s.pool.Put(sh)

	sh.text = append(sh.text[:0], []rune(text)...)
	upem := sh.face.Upem()

	// Shaping at a size of one em per pixel yields advances in design units.
	out := sh.hb.Shape(shaping.Input{
		Text:      sh.text,
		RunStart:  0,
		RunEnd:    len(sh.text),
		Direction: di.DirectionLTR,
		Face:      sh.face,
		Size:      fixed.I(int(upem)),
		Script:    scriptOf(sh.text),
		Language:  language.NewLanguage("en"),
	})

	var advance int64
	for _, g := range out.Glyphs {
		advance += int64(g.XAdvance)
	}

	units := float64(advance) / 64
	px := units / float64(upem) * s.size
	if px >= math.MaxUint16 {
		return math.MaxUint16
	}
	return clamp(int(px) + shapedPadding)
}

// scriptOf returns the script of the first rune that has one, Latin otherwise.
func scriptOf(text []rune) language.Script {
	for _, r := range text {
		switch sc := language.LookupScript(r); sc {
		case language.Common, language.Inherited, language.Unknown:
			continue
		default:
			return sc
		}
	}
	return language.Latin
}
