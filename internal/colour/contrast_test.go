package colour

import (
	"errors"
	"math"
	"testing"
)

const luminanceTolerance = 1e-6

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "white", input: "#ffffff", want: 1.0},
		{name: "black", input: "#000000", want: 0.0},
		{name: "near black", input: "#010101", want: 0.000303527},
		{name: "pure red", input: "#ff0000", want: 0.2126},
		{name: "pure green", input: "#00ff00", want: 0.7152},
		{name: "pure blue", input: "#0000ff", want: 0.0722},
		{name: "indigo", input: "#6366f1", want: 0.185062649},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativeLuminance(tt.input)
			if err != nil {
				t.Fatalf("RelativeLuminance(%q) returned error: %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > luminanceTolerance {
				t.Errorf("RelativeLuminance(%q) = %f, want %f", tt.input, got, tt.want)
			}
		})
	}
}

func TestRelativeLuminanceInvalid(t *testing.T) {
	_, err := RelativeLuminance("#f00")
	if err == nil {
		t.Fatal("RelativeLuminance(\"#f00\") expected error, got nil")
	}
	var invalid *InvalidColourError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %T, want *InvalidColourError", err)
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "white on white", a: "#ffffff", b: "#ffffff", want: 1.0},
		{name: "black on white", a: "#000000", b: "#ffffff", want: 21.0},
		{name: "near black on white", a: "#010101", b: "#ffffff", want: 20.873288},
		{name: "indigo on white", a: "#6366f1", b: "#ffffff", want: 4.466894},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastRatio(tt.a, tt.b)
			if err != nil {
				t.Fatalf("ContrastRatio(%q, %q) returned error: %v", tt.a, tt.b, err)
			}
			if math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("ContrastRatio(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// The ratio is symmetric and always within [1, 21].
func TestContrastRatioSymmetryAndBounds(t *testing.T) {
	colours := []string{"#000000", "#ffffff", "#6366f1", "#ff0000", "#1a2b3c", "#808080"}

	for _, a := range colours {
		for _, b := range colours {
			ab, err := ContrastRatio(a, b)
			if err != nil {
				t.Fatalf("ContrastRatio(%q, %q) returned error: %v", a, b, err)
			}
			ba, err := ContrastRatio(b, a)
			if err != nil {
				t.Fatalf("ContrastRatio(%q, %q) returned error: %v", b, a, err)
			}
			if ab != ba {
				t.Errorf("ContrastRatio(%q, %q) = %f, but reversed = %f", a, b, ab, ba)
			}
			if ab < 1.0 || ab > 21.0 {
				t.Errorf("ContrastRatio(%q, %q) = %f, outside [1, 21]", a, b, ab)
			}
		}
	}
}

func TestContrastRatioInvalid(t *testing.T) {
	if _, err := ContrastRatio("#f00", "#ffffff"); err == nil {
		t.Error("expected error for invalid first colour")
	}
	if _, err := ContrastRatio("#ffffff", "#f00"); err == nil {
		t.Error("expected error for invalid second colour")
	}
}

func TestContrastTextColour(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// White on white has ratio 1, black wins.
		{name: "white background", input: "#FFFFFF", want: TextColourBlack},
		{name: "near black background", input: "#010101", want: TextColourWhite},
		// Only black passes 4.5:1 (4.66 vs 4.48).
		{name: "grey where only black passes", input: "#777777", want: TextColourBlack},
		// Only white passes 4.5:1 (4.67 vs 4.47).
		{name: "grey where only white passes", input: "#747474", want: TextColourWhite},
		// Both pass (4.53 vs 4.61); the higher ratio wins.
		{name: "grey where both pass", input: "#757575", want: TextColourWhite},
		{name: "light shade", input: "#d9dafc", want: TextColourBlack},
		{name: "dark shade", input: "#0f11a9", want: TextColourWhite},
		// Black 4.06, white 5.14: only white passes.
		{name: "mid indigo shade", input: "#5659f0", want: TextColourWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastTextColour(tt.input)
			if err != nil {
				t.Fatalf("ContrastTextColour(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ContrastTextColour(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// The selector's codomain is exactly two values.
func TestContrastTextColourCodomain(t *testing.T) {
	inputs := []string{
		"#000000", "#111111", "#333333", "#555555", "#777777",
		"#999999", "#bbbbbb", "#dddddd", "#ffffff",
		"#6366f1", "#ff0000", "#00ff00", "#0000ff", "#f1e2d3",
	}

	for _, input := range inputs {
		got, err := ContrastTextColour(input)
		if err != nil {
			t.Fatalf("ContrastTextColour(%q) returned error: %v", input, err)
		}
		if got != TextColourBlack && got != TextColourWhite {
			t.Errorf("ContrastTextColour(%q) = %q, want %q or %q", input, got, TextColourBlack, TextColourWhite)
		}
	}
}

func TestContrastTextColourInvalid(t *testing.T) {
	_, err := ContrastTextColour("#f00")
	if err == nil {
		t.Fatal("ContrastTextColour(\"#f00\") expected error, got nil")
	}
	var invalid *InvalidColourError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %T, want *InvalidColourError", err)
	}
}
