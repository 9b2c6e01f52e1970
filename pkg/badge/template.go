package badge

import (
	"strings"
	"text/template"

	"github.com/matzehuels/badges/pkg/fonts"
)

// Badge markup follows the reference flat and flat-square badge formats byte
// for byte, whitespace included. Consumers compare output against golden
// files, so edits here are breaking changes.
const (
	// flatTemplate clips both segments to a rounded mask, adds a gloss
	// gradient and draws each text twice: a shadow at y=15, then the text.
	flatTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}">
<linearGradient id="b" x2="0" y2="100%"><stop offset="0" stop-color="#bbb" stop-opacity=".1"/><stop offset="1" stop-opacity=".1"/></linearGradient>
<mask id="a"><rect width="{{.Width}}" height="{{.Height}}" rx="3" fill="#fff"/></mask>
<g mask="url(#a)">
	<rect width="{{.Left.Width}}" height="{{.Height}}" fill="{{.Left.Color.Hex}}"/>
	<rect x="{{.Right.X}}" width="{{.Right.Width}}" height="{{.Height}}" fill="{{.Right.Color.Hex}}"/>
	<rect width="{{.Width}}" height="{{.Height}}" fill="url(#b)"/>
</g>

<g fill="#fff" text-anchor="middle" font-family="{{fontFamily}}" font-size="{{fontSize}}">
	<text x="{{.Left.TextX}}" y="15" fill="#010101" fill-opacity=".3">{{xml .Left.Text}}</text>
	<text x="{{.Right.TextX}}" y="15" fill="#010101" fill-opacity=".3">{{xml .Right.Text}}</text>
	<text x="{{.Left.TextX}}" y="14">{{xml .Left.Text}}</text>
	<text x="{{.Right.TextX}}" y="14">{{xml .Right.Text}}</text>
</g>
</svg>`

	// flatSquareTemplate draws square segments with crisp edges and a single
	// text layer.
	flatSquareTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}">
<g shape-rendering="crispEdges">
	<rect width="{{.Left.Width}}" height="{{.Height}}" fill="{{.Left.Color.Hex}}"/>
	<rect x="{{.Right.X}}" width="{{.Right.Width}}" height="{{.Height}}" fill="{{.Right.Color.Hex}}"/>
</g>

<g fill="#fff" text-anchor="middle" font-family="{{fontFamily}}" font-size="{{fontSize}}">
	<text x="{{.Left.TextX}}" y="14">{{xml .Left.Text}}</text>
	<text x="{{.Right.TextX}}" y="14">{{xml .Right.Text}}</text>
</g>
</svg>`
)

var templateFuncs = template.FuncMap{
	"xml":        escapeXML,
	"fontFamily": func() string { return fonts.FamilyList },
	"fontSize":   func() int { return fonts.Size },
}

var templates = map[Style]*template.Template{
	Flat:       template.Must(template.New("flat").Funcs(templateFuncs).Parse(flatTemplate)),
	FlatSquare: template.Must(template.New("flat-square").Funcs(templateFuncs).Parse(flatSquareTemplate)),
}

// xmlEscaper escapes the five markup-significant characters. Quotes use the
// named and hex forms of the reference badges; other characters pass through.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&#x27;",
)

// escapeXML escapes text for use as XML character data.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
