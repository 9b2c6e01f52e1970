package badge

import (
	"testing"

	"github.com/matzehuels/badges/pkg/errors"
)

func TestNewDefaults(t *testing.T) {
	b := New()
	want := Badge{
		Style:        Flat,
		Label:        "badge",
		LabelColor:   Grey,
		Message:      "example",
		MessageColor: LightGrey,
	}
	if b != want {
		t.Errorf("New() = %+v, want %+v", b, want)
	}
}

func TestWithMethodsReturnCopies(t *testing.T) {
	base := New()
	orig := base

	b := base.
		WithStyle(FlatSquare).
		WithLabel("build").
		WithLabelColor(Red).
		WithMessage("passing").
		WithMessageColor(Green)

	if base != orig {
		t.Errorf("With* mutated the receiver: %+v", base)
	}

	want := Badge{
		Style:        FlatSquare,
		Label:        "build",
		LabelColor:   Red,
		Message:      "passing",
		MessageColor: Green,
	}
	if b != want {
		t.Errorf("builder result = %+v, want %+v", b, want)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    Style
		wantErr bool
	}{
		{"flat", Flat, false},
		{"flat-square", FlatSquare, false},
		{"flat_square", FlatSquare, false},
		{"FLAT", Flat, false},
		{"", Flat, true},
		{"plastic", Flat, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidStyle) {
				t.Errorf("ParseStyle(%q) code = %q, want %q", tt.input, errors.GetCode(err), errors.ErrCodeInvalidStyle)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStyleString(t *testing.T) {
	for _, s := range Styles() {
		parsed, err := ParseStyle(s.String())
		if err != nil {
			t.Fatalf("ParseStyle(%q) error: %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("ParseStyle(%q) = %v, want %v", s.String(), parsed, s)
		}
	}
	if got := Style(9).String(); got != "unknown" {
		t.Errorf("Style(9).String() = %q, want %q", got, "unknown")
	}
}

func TestStyleUnmarshalText(t *testing.T) {
	var s Style
	if err := s.UnmarshalText([]byte("flat-square")); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if s != FlatSquare {
		t.Errorf("UnmarshalText() = %v, want %v", s, FlatSquare)
	}
	if err := s.UnmarshalText([]byte("round")); err == nil {
		t.Error("UnmarshalText(round) should fail")
	}
}
