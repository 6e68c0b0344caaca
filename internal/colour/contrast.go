package colour

import "math"

// Text colours selectable for a shade background. No other value is ever
// returned by ContrastTextColour.
const (
	TextColourBlack = "#010101"
	TextColourWhite = "#ffffff"
)

// AAContrast is the WCAG AA minimum contrast ratio for normal text.
// AAAContrast is the stricter AAA minimum for normal text.
const (
	AAContrast  = 4.5
	AAAContrast = 7.0
)

// RelativeLuminance calculates the relative luminance of a colour according
// to WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest), or an
// *InvalidColourError when the input is not a valid hex colour.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(hex string) (float64, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}

	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). The ratio is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b string) (float64, error) {
	la, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}

	// Ensure la is the lighter colour.
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

// ContrastTextColour selects black or white text for the given background.
// Both candidates are scored against the WCAG AA threshold of 4.5:1: when
// only one passes it wins, otherwise the higher ratio wins and black wins
// exact ties. Returns an *InvalidColourError when the background is not a
// valid hex colour.
func ContrastTextColour(backgroundHex string) (string, error) {
	ratioBlack, err := ContrastRatio(TextColourBlack, backgroundHex)
	if err != nil {
		return "", err
	}
	ratioWhite, err := ContrastRatio(TextColourWhite, backgroundHex)
	if err != nil {
		return "", err
	}

	blackPasses := ratioBlack >= AAContrast
	whitePasses := ratioWhite >= AAContrast

	switch {
	case blackPasses && !whitePasses:
		return TextColourBlack, nil
	case whitePasses && !blackPasses:
		return TextColourWhite, nil
	case ratioBlack >= ratioWhite:
		return TextColourBlack, nil
	default:
		return TextColourWhite, nil
	}
}
