package output

import (
	"github.com/jmylchreest/huetone/internal/output/css"
	"github.com/jmylchreest/huetone/internal/output/jsonout"
	"github.com/jmylchreest/huetone/internal/output/tailwind"
)

// DefaultRegistry returns a registry with all built-in renderers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(css.New())
	r.Register(tailwind.New())
	r.Register(jsonout.New())
	return r
}
