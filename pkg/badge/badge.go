package badge

// Default badge content used by New.
const (
	DefaultLabel   = "badge"
	DefaultMessage = "example"
)

// Badge describes one badge: a style plus a label and a message segment, each
// with its own background color.
//
// Badge is a plain value. The With methods return modified copies and never
// change the receiver, so a Badge can be shared and used as a template for
// others:
//
//	base := badge.New().WithLabel("build")
//	ok := base.WithMessage("passing").WithMessageColor(badge.Green)
//	ko := base.WithMessage("failing").WithMessageColor(badge.Red)
type Badge struct {
	Style        Style
	Label        string
	LabelColor   Color
	Message      string
	MessageColor Color
}

// New returns a flat "badge | example" badge with a grey label and a
// light-grey message.
func New() Badge {
	return Badge{
		Style:        Flat,
		Label:        DefaultLabel,
		LabelColor:   Grey,
		Message:      DefaultMessage,
		MessageColor: LightGrey,
	}
}

// WithStyle returns a copy of b using style s.
func (b Badge) WithStyle(s Style) Badge {
	b.Style = s
	return b
}

// WithLabel returns a copy of b with the left-hand text set to text.
func (b Badge) WithLabel(text string) Badge {
	b.Label = text
	return b
}

// WithMessage returns a copy of b with the right-hand text set to text.
func (b Badge) WithMessage(text string) Badge {
	b.Message = text
	return b
}

// WithLabelColor returns a copy of b with the label background set to c.
func (b Badge) WithLabelColor(c Color) Badge {
	b.LabelColor = c
	return b
}

// WithMessageColor returns a copy of b with the message background set to c.
func (b Badge) WithMessageColor(c Color) Badge {
	b.MessageColor = c
	return b
}

// Render renders b with the default, font-shaping renderer.
func (b Badge) Render() (string, error) {
	return defaultRenderer.Render(b)
}
