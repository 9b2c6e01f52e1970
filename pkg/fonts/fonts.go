// Package fonts provides the embedded font used to measure badge text.
//
// Badges are drawn with the font-family list [FamilyList], whose first entry
// is DejaVu Sans. The DejaVu Sans TrueType data ships inside the binary (via
// github.com/go-fonts/dejavu), so measurement never depends on fonts
// installed on the host.
//
// The font is parsed on first use and cached for the lifetime of the process.
// The parsed [*font.Font] is read-only and safe for concurrent use; callers
// that shape text wrap it in their own [font.Face] (faces carry glyph caches
// and are not safe to share between goroutines).
package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-fonts/dejavu/dejavusans"
	"github.com/go-text/typesetting/font"
)

// FamilyList is the CSS font-family list written into badge text elements.
const FamilyList = "DejaVu Sans,Verdana,Geneva,sans-serif"

// Size is the font size of badge text, in pixels.
const Size = 11

var (
	dejavuOnce sync.Once
	dejavu     *font.Font
)

// DejaVuSansTTF returns the raw TrueType data for DejaVu Sans.
func DejaVuSansTTF() []byte {
	return dejavusans.TTF
}

// DejaVuSans returns the parsed DejaVu Sans font.
//
// The first call parses the embedded data; later calls return the cached
// value. A parse failure means the binary was built with corrupt font data
// and panics.
func DejaVuSans() *font.Font {
	dejavuOnce.Do(func() {
		face, err := font.ParseTTF(bytes.NewReader(dejavusans.TTF))
		if err != nil {
			panic(fmt.Errorf("fonts: failed to parse embedded DejaVu Sans: %w", err))
		}
		dejavu = face.Font
	})
	return dejavu
}
