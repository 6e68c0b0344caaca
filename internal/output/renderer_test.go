package output

import (
	"testing"

	"github.com/jmylchreest/huetone/internal/colour"
	"github.com/spf13/pflag"
)

type fakeRenderer struct {
	name string
}

func (f *fakeRenderer) Name() string        { return f.name }
func (f *fakeRenderer) Description() string { return "fake renderer" }
func (f *fakeRenderer) Generate(*colour.Scheme) (map[string][]byte, error) {
	return map[string][]byte{f.name + ".txt": []byte("ok")}, nil
}
func (f *fakeRenderer) RegisterFlags(*pflag.FlagSet) {}
func (f *fakeRenderer) Validate() error              { return nil }
func (f *fakeRenderer) DefaultOutputDir() string     { return "." }

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&fakeRenderer{name: "beta"})
	registry.Register(&fakeRenderer{name: "alpha"})

	if _, ok := registry.Get("alpha"); !ok {
		t.Error("Get(\"alpha\") not found after Register")
	}
	if _, ok := registry.Get("missing"); ok {
		t.Error("Get(\"missing\") unexpectedly found")
	}

	names := registry.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("List() = %v, want [alpha beta]", names)
	}

	all := registry.All()
	delete(all, "alpha")
	if _, ok := registry.Get("alpha"); !ok {
		t.Error("mutating All() result affected the registry")
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()

	for _, name := range []string{"css", "tailwind", "json"} {
		renderer, ok := registry.Get(name)
		if !ok {
			t.Errorf("default registry missing %q", name)
			continue
		}
		if err := renderer.Validate(); err != nil {
			t.Errorf("%s default configuration invalid: %v", name, err)
		}
	}
}
