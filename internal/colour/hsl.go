package colour

import "math"

// HSL is an integer hue/saturation/lightness triple: hue in degrees (0-360),
// saturation and lightness as percentages (0-100). Values are produced by
// HexToHSL; callers never construct them from raw components.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// HexToHSL converts a 6-digit hex colour to integer HSL. Returns an
// *InvalidColourError when the input is not a valid hex colour.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}

	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	l := (maxVal + minVal) / 2.0

	var h, s float64
	if maxVal != minVal {
		d := maxVal - minVal

		if l > 0.5 {
			s = d / (2.0 - maxVal - minVal)
		} else {
			s = d / (maxVal + minVal)
		}

		switch maxVal {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h = h / 6.0 * 360.0
	}

	return HSL{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}, nil
}

// HSLToHex converts hue (degrees), saturation and lightness (percentages) to
// a lowercase "#rrggbb" string using the closed-form chroma formula. The
// final 0-255 conversion rounds half up so outputs are stable across
// implementations.
func HSLToHex(h, s, l int) string {
	sf := float64(s) / 100.0
	lf := float64(l) / 100.0
	a := sf * math.Min(lf, 1.0-lf)

	channel := func(n float64) uint8 {
		k := math.Mod(n+float64(h)/30.0, 12.0)
		if k < 0 {
			k += 12
		}
		v := lf - a*math.Max(-1.0, math.Min(math.Min(k-3.0, 9.0-k), 1.0))
		return uint8(math.Round(v * 255.0))
	}

	rgb := RGB{R: channel(0), G: channel(8), B: channel(4)}
	return rgb.Hex()
}
