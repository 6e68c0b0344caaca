package colour

import (
	"strings"
	"testing"
)

func TestSwatch(t *testing.T) {
	got := Swatch("#ff0000", 4)
	if !strings.HasPrefix(got, "\033[48;2;255;0;0m") {
		t.Errorf("Swatch missing background escape: %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("Swatch missing reset: %q", got)
	}
	if !strings.Contains(got, "    ") {
		t.Errorf("Swatch missing 4-wide block: %q", got)
	}
}

func TestSwatchInvalidPassthrough(t *testing.T) {
	if got := Swatch("#zzz", 4); got != "#zzz" {
		t.Errorf("Swatch on invalid input = %q, want passthrough", got)
	}
}

func TestSwatchWithText(t *testing.T) {
	got := SwatchWithText("#0f11a9", "#0f11a9", 9)
	// Dark background gets white text.
	if !strings.Contains(got, ansiFgPrefix+"255;255;255"+ansiSuffix) {
		t.Errorf("expected white foreground escape: %q", got)
	}
	if !strings.Contains(got, "#0f11a9") {
		t.Errorf("expected label in output: %q", got)
	}
}
