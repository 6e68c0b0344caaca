package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 9
)

// Swatch returns an ANSI-coloured block for a hex colour. Width specifies how
// many characters wide the block should be. Invalid input renders as the raw
// string without colour.
func Swatch(hex string, width int) string {
	rgb, err := ParseHex(hex)
	if err != nil {
		return hex
	}
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a colour block with text overlaid in the WCAG
// contrast text colour for that background.
func SwatchWithText(hex, text string, width int) string {
	rgb, err := ParseHex(hex)
	if err != nil {
		return text
	}
	if width <= 0 {
		width = defaultWidth
	}

	textColour, _ := ContrastTextColour(hex)
	fgRGB, _ := ParseHex(textColour)

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgRGB.R, fgRGB.G, fgRGB.B, ansiSuffix)

	// Pad or truncate text to fit width.
	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		display = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	return bg + fg + display + ansiReset
}
