// Package css renders a resolved scheme as a stylesheet of CSS custom
// properties.
package css

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/jmylchreest/huetone/internal/colour"
	"github.com/spf13/pflag"
)

// ScaleNames maps shade indices to the CSS scale steps, light to dark. The
// "500" step is an alias for the darkest generated shade.
var ScaleNames = [colour.NumShades]string{"50", "100", "200", "300", "400"}

const sheetTemplate = `{{.Selector}} {
  --color-primary: {{.Primary}};
{{- range .Vars}}
  --color-{{.Name}}: {{.Value}};
{{- end}}
}
`

// Renderer implements the output.Renderer interface for CSS custom
// properties.
type Renderer struct {
	selector string
	fileName string
}

// New creates a CSS renderer with default settings.
func New() *Renderer {
	return &Renderer{
		selector: ":root",
		fileName: "theme.css",
	}
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "css"
}

// Description returns the renderer description.
func (r *Renderer) Description() string {
	return "Generate a stylesheet of --color-* custom properties"
}

// RegisterFlags registers renderer-specific flags.
func (r *Renderer) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&r.selector, "css.selector", ":root", "CSS selector the variables are declared on")
	flags.StringVar(&r.fileName, "css.filename", "theme.css", "output file name")
}

// Validate checks if the renderer configuration is valid.
func (r *Renderer) Validate() error {
	if r.selector == "" {
		return fmt.Errorf("css selector cannot be empty")
	}
	if r.fileName == "" {
		return fmt.Errorf("css file name cannot be empty")
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this renderer.
func (r *Renderer) DefaultOutputDir() string {
	return "."
}

// cssVar is one custom property in the generated sheet.
type cssVar struct {
	Name  string
	Value string
}

// sheetData holds data for the stylesheet template.
type sheetData struct {
	Selector string
	Primary  string
	Vars     []cssVar
}

// Generate creates the stylesheet from the scheme.
func (r *Renderer) Generate(scheme *colour.Scheme) (map[string][]byte, error) {
	if scheme == nil {
		return nil, fmt.Errorf("scheme cannot be nil")
	}

	tmpl, err := template.New("theme.css").Parse(sheetTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	data := sheetData{
		Selector: r.selector,
		Primary:  scheme.Primary,
	}
	for i, shade := range scheme.Shades {
		data.Vars = append(data.Vars, cssVar{Name: ScaleNames[i], Value: shade.Hex})
	}
	// 500 aliases the darkest shade.
	data.Vars = append(data.Vars, cssVar{Name: "500", Value: scheme.Shades[colour.NumShades-1].Hex})
	for i, shade := range scheme.Shades {
		data.Vars = append(data.Vars, cssVar{Name: "text-" + ScaleNames[i], Value: shade.Text})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	return map[string][]byte{r.fileName: buf.Bytes()}, nil
}
