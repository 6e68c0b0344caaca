package css

import (
	"strings"
	"testing"

	"github.com/jmylchreest/huetone/internal/colour"
)

func testScheme(t *testing.T) *colour.Scheme {
	t.Helper()
	scheme, err := colour.Theme{Primary: "#6366f1"}.Resolve()
	if err != nil {
		t.Fatalf("failed to resolve test theme: %v", err)
	}
	return scheme
}

func TestCSSRenderer_Name(t *testing.T) {
	if got := New().Name(); got != "css" {
		t.Errorf("Name() = %s, want css", got)
	}
}

func TestCSSRenderer_Generate(t *testing.T) {
	renderer := New()
	scheme := testScheme(t)

	files, err := renderer.Generate(scheme)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	content, ok := files["theme.css"]
	if !ok {
		t.Fatalf("Generate did not produce theme.css, got %v", files)
	}
	sheet := string(content)

	if !strings.HasPrefix(sheet, ":root {") {
		t.Errorf("sheet does not start with :root selector:\n%s", sheet)
	}
	if !strings.Contains(sheet, "--color-primary: "+scheme.Primary+";") {
		t.Errorf("sheet missing --color-primary:\n%s", sheet)
	}
	for i, name := range ScaleNames {
		want := "--color-" + name + ": " + scheme.Shades[i].Hex + ";"
		if !strings.Contains(sheet, want) {
			t.Errorf("sheet missing %q:\n%s", want, sheet)
		}
		wantText := "--color-text-" + name + ": " + scheme.Shades[i].Text + ";"
		if !strings.Contains(sheet, wantText) {
			t.Errorf("sheet missing %q:\n%s", wantText, sheet)
		}
	}

	// 500 aliases the darkest shade.
	want500 := "--color-500: " + scheme.Shades[colour.NumShades-1].Hex + ";"
	if !strings.Contains(sheet, want500) {
		t.Errorf("sheet missing %q:\n%s", want500, sheet)
	}
}

func TestCSSRenderer_GenerateNilScheme(t *testing.T) {
	if _, err := New().Generate(nil); err == nil {
		t.Error("Generate(nil) expected error, got nil")
	}
}

func TestCSSRenderer_CustomSelector(t *testing.T) {
	renderer := New()
	renderer.selector = ".theme-dark"

	files, err := renderer.Generate(testScheme(t))
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.HasPrefix(string(files["theme.css"]), ".theme-dark {") {
		t.Errorf("sheet does not use custom selector:\n%s", files["theme.css"])
	}
}

func TestCSSRenderer_Validate(t *testing.T) {
	renderer := New()
	if err := renderer.Validate(); err != nil {
		t.Errorf("Validate() on defaults returned error: %v", err)
	}

	renderer.selector = ""
	if err := renderer.Validate(); err == nil {
		t.Error("Validate() with empty selector expected error, got nil")
	}
}
