package errors

import (
	"unicode"
	"unicode/utf8"
)

// MaxTextLength is the longest badge text, in bytes, accepted from untrusted
// input such as URL paths.
const MaxTextLength = 256

// ValidateText checks a badge label or message taken from untrusted input.
//
// The validation rules are intentionally conservative:
//   - Must be valid UTF-8
//   - No control characters (including newlines and tabs)
//   - Maximum length of MaxTextLength bytes
//
// Empty text is allowed; it renders as a padding-only segment.
func ValidateText(text string) error {
	if len(text) > MaxTextLength {
		return New(ErrCodeInvalidText, "text too long (max %d bytes)", MaxTextLength)
	}

	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidText, "text is not valid UTF-8")
	}

	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidText, "text contains invalid control characters")
		}
	}

	return nil
}
