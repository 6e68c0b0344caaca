// Package tailwind renders a resolved scheme as a Tailwind CSS colour scale.
package tailwind

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/jmylchreest/huetone/internal/colour"
	"github.com/spf13/pflag"
)

const configTemplate = `/** Tailwind colour scale generated by huetone */
module.exports = {
  theme: {
    extend: {
      colors: {
        '{{.ColourName}}': {
          DEFAULT: '{{.Primary}}',
{{- range .Steps}}
          {{.Name}}: '{{.Value}}',
{{- end}}
        },
      },
    },
  },
};
`

// Renderer implements the output.Renderer interface for Tailwind CSS.
type Renderer struct {
	colourName string
}

// New creates a Tailwind renderer with default settings.
func New() *Renderer {
	return &Renderer{
		colourName: "primary",
	}
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "tailwind"
}

// Description returns the renderer description.
func (r *Renderer) Description() string {
	return "Generate a tailwind.config.js colour scale"
}

// RegisterFlags registers renderer-specific flags.
func (r *Renderer) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&r.colourName, "tailwind.colour-name", "primary", "name of the generated colour scale")
}

// Validate checks if the renderer configuration is valid.
func (r *Renderer) Validate() error {
	if r.colourName == "" {
		return fmt.Errorf("tailwind colour name cannot be empty")
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this renderer.
func (r *Renderer) DefaultOutputDir() string {
	return "."
}

// scaleStep is one numbered entry of the colour scale.
type scaleStep struct {
	Name  string
	Value string
}

// configData holds data for the config template.
type configData struct {
	ColourName string
	Primary    string
	Steps      []scaleStep
}

// Generate creates the tailwind.config.js content from the scheme.
func (r *Renderer) Generate(scheme *colour.Scheme) (map[string][]byte, error) {
	if scheme == nil {
		return nil, fmt.Errorf("scheme cannot be nil")
	}

	tmpl, err := template.New("tailwind.config.js").Parse(configTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config template: %w", err)
	}

	steps := []string{"50", "100", "200", "300", "400"}
	data := configData{
		ColourName: r.colourName,
		Primary:    scheme.Primary,
	}
	for i, shade := range scheme.Shades {
		data.Steps = append(data.Steps, scaleStep{Name: steps[i], Value: shade.Hex})
	}
	data.Steps = append(data.Steps, scaleStep{Name: "500", Value: scheme.Shades[colour.NumShades-1].Hex})

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute config template: %w", err)
	}

	return map[string][]byte{"tailwind.config.js": buf.Bytes()}, nil
}
