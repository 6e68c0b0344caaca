// Package output provides the interface and registry for scheme renderers.
package output

import (
	"sort"

	"github.com/jmylchreest/huetone/internal/colour"
	"github.com/spf13/pflag"
)

// Renderer renders a resolved colour scheme into one or more output files.
type Renderer interface {
	// Name returns the renderer's name (e.g., "css", "tailwind").
	Name() string

	// Description returns a human-readable description of the renderer.
	Description() string

	// Generate creates output file(s) from the given scheme.
	// Returns a map of filename -> content to support renderers that
	// generate multiple files.
	Generate(scheme *colour.Scheme) (map[string][]byte, error)

	// RegisterFlags registers renderer-specific flags.
	RegisterFlags(flags *pflag.FlagSet)

	// Validate checks if the renderer configuration is valid.
	Validate() error

	// DefaultOutputDir returns the default output directory for this renderer.
	DefaultOutputDir() string
}

// Registry holds all registered renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// Register adds a renderer to the registry.
func (r *Registry) Register(renderer Renderer) {
	r.renderers[renderer.Name()] = renderer
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, bool) {
	renderer, ok := r.renderers[name]
	return renderer, ok
}

// List returns all registered renderer names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered renderers.
func (r *Registry) All() map[string]Renderer {
	// Return a copy to prevent external modification.
	renderers := make(map[string]Renderer, len(r.renderers))
	for name, renderer := range r.renderers {
		renderers[name] = renderer
	}
	return renderers
}
