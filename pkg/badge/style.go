package badge

import (
	"strings"

	"github.com/matzehuels/badges/pkg/errors"
)

// Style selects the badge template.
type Style int

const (
	// Flat draws rounded corners, a gloss gradient and shadowed text.
	Flat Style = iota
	// FlatSquare draws square, crisp-edged segments with plain text.
	FlatSquare
)

// Styles returns all supported styles.
func Styles() []Style {
	return []Style{Flat, FlatSquare}
}

// String returns the style name used on the command line and in config files.
func (s Style) String() string {
	switch s {
	case Flat:
		return "flat"
	case FlatSquare:
		return "flat-square"
	}
	return "unknown"
}

// ParseStyle parses a style name: "flat" or "flat-square" ("flat_square" is
// accepted too).
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat":
		return Flat, nil
	case "flat-square", "flat_square":
		return FlatSquare, nil
	}
	return Flat, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %s (must be 'flat' or 'flat-square')", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using [ParseStyle].
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
