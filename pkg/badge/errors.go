package badge

import (
	"fmt"

	"github.com/matzehuels/badges/pkg/errors"
)

// InvalidColorError is returned by ParseColor for input that is neither a
// palette name nor a 3- or 6-digit hex color.
type InvalidColorError struct {
	Input string // the rejected input, verbatim
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color value: %s", e.Input)
}

// Code implements errors.Coder.
func (e *InvalidColorError) Code() errors.Code {
	return errors.ErrCodeInvalidColor
}

// RenderError wraps a failure while executing the SVG template.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render SVG: %v", e.Err)
}

// Unwrap returns the template error.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Code implements errors.Coder.
func (e *RenderError) Code() errors.Code {
	return errors.ErrCodeRender
}
