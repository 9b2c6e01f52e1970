package measure

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/badges/pkg/errors"
)

// Measurer returns the rendered width of a badge segment's text in whole
// pixels, padding included. Implementations never fail and always return a
// value in [0, 65535].
type Measurer interface {
	Measure(text string) uint16
}

// Mode selects a Measurer implementation.
type Mode string

const (
	// ModeShape shapes text against the embedded font.
	ModeShape Mode = "shape"
	// ModeHeuristic approximates width from the rune count.
	ModeHeuristic Mode = "heuristic"
)

const (
	heuristicCharWidth = 8
	heuristicPadding   = 16
)

// ParseMode parses a measurer mode name. It is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeShape, ModeHeuristic:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid measure mode: %s (must be 'shape' or 'heuristic')", s)
}

// New returns the Measurer for mode. Unknown modes fall back to [Default].
func New(mode Mode) Measurer {
	if mode == ModeHeuristic {
		return Heuristic{}
	}
	return Default()
}

// Default returns the precise, shaping-based measurer.
func Default() Measurer {
	return defaultShaped
}

// Heuristic estimates text width as eight pixels per rune plus sixteen pixels
// of padding. It needs no font data and is close to, but not identical to,
// the shaped width.
type Heuristic struct{}

// Measure implements Measurer.
func (Heuristic) Measure(text string) uint16 {
	n := utf8.RuneCountInString(text)
	if n > (math.MaxUint16-heuristicPadding)/heuristicCharWidth {
		return math.MaxUint16
	}
	return clamp(n*heuristicCharWidth + heuristicPadding)
}

// clamp truncates a pixel width into the uint16 range.
func clamp(px int) uint16 {
	if px < 0 {
		return 0
	}
	if px > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(px)
}
