// Package colour provides the colour conversion and WCAG contrast core.
package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// InvalidColourError reports a string that is not a well-formed 6-digit hex
// colour. It is the only error kind returned by the conversion entry points.
type InvalidColourError struct {
	Value string
}

func (e *InvalidColourError) Error() string {
	return fmt.Sprintf("invalid hex colour: %q", e.Value)
}

// hexPattern matches "#RRGGBB" or "RRGGBB", case-insensitive. Shorthand
// 3-digit forms are deliberately not matched; callers expand those before
// reaching the core.
var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// IsValidHex reports whether s is a 6-digit hex colour, with or without a
// leading '#'.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// RGB represents a colour in 8-bit RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a 6-digit hex colour into RGB. Returns an
// *InvalidColourError when the input does not match the hex pattern.
func ParseHex(s string) (RGB, error) {
	if !IsValidHex(s) {
		return RGB{}, &InvalidColourError{Value: s}
	}
	digits := strings.TrimPrefix(s, "#")
	r, _ := strconv.ParseUint(digits[0:2], 16, 8)
	g, _ := strconv.ParseUint(digits[2:4], 16, 8)
	b, _ := strconv.ParseUint(digits[4:6], 16, 8)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Normalise returns the canonical lowercase "#rrggbb" form of a hex colour.
func Normalise(s string) (string, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}
