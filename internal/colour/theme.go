package colour

// Theme is an immutable theme input: one primary colour plus an optional
// override per shade index. An empty override string means "use the generated
// shade"; an invalid one is treated the same way, so clearing or mistyping an
// override reverts that slot to the auto-generated shade.
type Theme struct {
	Primary   string
	Overrides [NumShades]string
}

// Shade is one resolved entry of a scheme: the displayed colour, its HSL
// decomposition, the selected text colour and its contrast ratio against the
// shade.
type Shade struct {
	Hex        string  `json:"hex"`
	HSL        HSL     `json:"hsl"`
	Text       string  `json:"text"`
	Contrast   float64 `json:"contrast"`
	Overridden bool    `json:"overridden,omitempty"`
}

// Scheme is a fully resolved theme: the canonical primary and the five
// shades, light to dark.
type Scheme struct {
	Primary string           `json:"primary"`
	Shades  [NumShades]Shade `json:"shades"`
}

// Resolve derives the displayed colours for the theme. The tonal scale is
// generated from the primary, then each valid override substitutes at its
// index. Resolution is a pure function of the theme value; it fails only when
// the primary itself is invalid.
func (t Theme) Resolve() (*Scheme, error) {
	primary, err := Normalise(t.Primary)
	if err != nil {
		return nil, err
	}

	auto, err := ShadesFromPrimary(primary)
	if err != nil {
		return nil, err
	}

	scheme := &Scheme{Primary: primary}
	for i := range auto {
		hex := auto[i]
		overridden := false
		if o := t.Overrides[i]; IsValidHex(o) {
			hex, _ = Normalise(o)
			overridden = true
		}

		// hex is valid by construction from here on.
		hsl, _ := HexToHSL(hex)
		text, _ := ContrastTextColour(hex)
		ratio, _ := ContrastRatio(text, hex)

		scheme.Shades[i] = Shade{
			Hex:        hex,
			HSL:        hsl,
			Text:       text,
			Contrast:   ratio,
			Overridden: overridden,
		}
	}
	return scheme, nil
}

// ShadeSet returns the hex values of the resolved shades, light to dark.
func (s *Scheme) ShadeSet() ShadeSet {
	var set ShadeSet
	for i, shade := range s.Shades {
		set[i] = shade.Hex
	}
	return set
}
