package badge

import "fmt"

// Color is a badge segment background: either a named palette entry or an
// arbitrary RGB value. Colors are immutable values and compare with ==.
// The zero Color renders as Grey.
type Color struct {
	name string
	hex  string
}

// Palette entries. The hex forms follow the reference badge format and are
// written to markup verbatim.
var (
	Green      = Color{name: "green", hex: "#4c1"}
	LightGreen = Color{name: "light-green", hex: "#a3c51c"}
	Yellow     = Color{name: "yellow", hex: "#dfb317"}
	Red        = Color{name: "red", hex: "#e05d44"}
	Grey       = Color{name: "grey", hex: "#555"}
	LightGrey  = Color{name: "light-grey", hex: "#9f9f9f"}
)

// Palette returns the named colors in display order.
func Palette() []Color {
	return []Color{Green, LightGreen, Yellow, Red, Grey, LightGrey}
}

// RGB returns a custom color.
func RGB(r, g, b uint8) Color {
	return Color{hex: fmt.Sprintf("#%02x%02x%02x", r, g, b)}
}

// Hex returns the color as written into SVG fill attributes.
func (c Color) Hex() string {
	if c.hex == "" {
		return Grey.hex
	}
	return c.hex
}

// Canonical returns the color in six-digit lowercase form, #rrggbb.
func (c Color) Canonical() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGB returns the red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	digits := c.Hex()[1:]
	if len(digits) == 3 {
		r, g, b = expand(digits[0]), expand(digits[1]), expand(digits[2])
		return r, g, b
	}
	return pair(digits[0:2]), pair(digits[2:4]), pair(digits[4:6])
}

// Name returns the palette name, or "" for custom colors.
func (c Color) Name() string {
	return c.name
}

// String returns the palette name for named colors and the hex form otherwise.
func (c Color) String() string {
	if c.name != "" {
		return c.name
	}
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using [ParseColor].
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses a palette name or a hex color.
//
// Accepted names are grey, gray, light-grey, light-gray, red, yellow, green
// and light-green; matching is case-sensitive. Hex colors are '#' followed by
// exactly 3 or 6 hex digits in either case; each digit d of the 3-digit form
// expands to the byte d*16+d. Any other input yields an *InvalidColorError.
func ParseColor(s string) (Color, error) {
	switch s {
	case "grey", "gray":
		return Grey, nil
	case "light-grey", "light-gray":
		return LightGrey, nil
	case "red":
		return Red, nil
	case "yellow":
		return Yellow, nil
	case "green":
		return Green, nil
	case "light-green":
		return LightGreen, nil
	}

	if len(s) == 0 || s[0] != '#' {
		return Color{}, &InvalidColorError{Input: s}
	}
	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if _, ok := hexValue(digits[i]); !ok {
			return Color{}, &InvalidColorError{Input: s}
		}
	}

	switch len(digits) {
	case 3:
		return RGB(expand(digits[0]), expand(digits[1]), expand(digits[2])), nil
	case 6:
		return RGB(pair(digits[0:2]), pair(digits[2:4]), pair(digits[4:6])), nil
	}
	return Color{}, &InvalidColorError{Input: s}
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// expand turns the shorthand digit d into the byte d*16+d.
func expand(c byte) uint8 {
	v, _ := hexValue(c)
	return v*16 + v
}

func pair(s string) uint8 {
	hi, _ := hexValue(s[0])
	lo, _ := hexValue(s[1])
	return hi*16 + lo
}
