package colour

// NumShades is the number of tonal shades derived from a primary colour.
const NumShades = 5

// ShadeLightness holds the fixed lightness levels of the tonal scale,
// ordered light to dark.
var ShadeLightness = [NumShades]int{92, 78, 64, 50, 36}

// ShadeSet is an ordered set of NumShades hex colours, light to dark. All
// entries share the hue and saturation derived from the originating primary;
// only lightness varies.
type ShadeSet [NumShades]string

// ShadesFromPrimary derives the tonal scale for a primary colour. The
// primary's own lightness is discarded; every shade keeps the primary's
// rounded hue and saturation at the fixed lightness level for its index.
// Returns an *InvalidColourError when the primary is not a valid hex colour.
func ShadesFromPrimary(primaryHex string) (ShadeSet, error) {
	hsl, err := HexToHSL(primaryHex)
	if err != nil {
		return ShadeSet{}, err
	}

	var shades ShadeSet
	for i, l := range ShadeLightness {
		shades[i] = HSLToHex(hsl.H, hsl.S, l)
	}
	return shades, nil
}
