// Package jsonout renders a resolved scheme as a machine-readable JSON
// document.
package jsonout

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/huetone/internal/colour"
	"github.com/spf13/pflag"
)

// Renderer implements the output.Renderer interface for JSON.
type Renderer struct {
	compact bool
}

// New creates a JSON renderer with default settings.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "json"
}

// Description returns the renderer description.
func (r *Renderer) Description() string {
	return "Generate a JSON document describing the scheme"
}

// RegisterFlags registers renderer-specific flags.
func (r *Renderer) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&r.compact, "json.compact", false, "emit compact JSON instead of indented")
}

// Validate checks if the renderer configuration is valid.
func (r *Renderer) Validate() error {
	return nil
}

// DefaultOutputDir returns the default output directory for this renderer.
func (r *Renderer) DefaultOutputDir() string {
	return "."
}

// shadeJSON is one shade entry in the document, keyed by its scale step.
type shadeJSON struct {
	Scale string `json:"scale"`
	colour.Shade
}

// document is the top-level JSON structure.
type document struct {
	Primary string      `json:"primary"`
	Count   int         `json:"count"`
	Shades  []shadeJSON `json:"shades"`
}

// scaleSteps labels shades light to dark; "500" in the CSS scale aliases the
// darkest entry and is omitted here.
var scaleSteps = [colour.NumShades]string{"50", "100", "200", "300", "400"}

// Generate creates the JSON document from the scheme.
func (r *Renderer) Generate(scheme *colour.Scheme) (map[string][]byte, error) {
	if scheme == nil {
		return nil, fmt.Errorf("scheme cannot be nil")
	}

	doc := document{
		Primary: scheme.Primary,
		Count:   colour.NumShades,
	}
	for i, shade := range scheme.Shades {
		doc.Shades = append(doc.Shades, shadeJSON{Scale: scaleSteps[i], Shade: shade})
	}

	var (
		content []byte
		err     error
	)
	if r.compact {
		content, err = json.Marshal(doc)
	} else {
		content, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scheme: %w", err)
	}

	return map[string][]byte{"theme.json": content}, nil
}
