package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmylchreest/huetone/internal/colour"
	"golang.org/x/term"
)

// shorthandPattern matches a 3-digit CSS shorthand hex colour.
var shorthandPattern = regexp.MustCompile(`^#?([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])$`)

// scaleLabels names each shade index in CLI output, light to dark.
var scaleLabels = [colour.NumShades]string{"50", "100", "200", "300", "400"}

// normaliseInput canonicalises user-typed colour input. Shorthand "#RGB" is
// expanded to "#RRGGBB" before the core sees it; anything else must already
// be a 6-digit hex colour.
func normaliseInput(s string) (string, error) {
	if m := shorthandPattern.FindStringSubmatch(s); m != nil {
		s = "#" + m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}
	return colour.Normalise(s)
}

// applyOverrides parses "index=hex" specs onto the theme. Indices are 0-4;
// the hex side goes through the same shorthand expansion as the primary.
func applyOverrides(theme *colour.Theme, specs []string) error {
	for _, spec := range specs {
		idx, hex, err := parseOverride(spec)
		if err != nil {
			return err
		}
		theme.Overrides[idx] = hex
	}
	return nil
}

// parseOverride splits one "index=hex" spec.
func parseOverride(spec string) (int, string, error) {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid override %q: expected index=hex", spec)
	}

	idx, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || idx < 0 || idx >= colour.NumShades {
		return 0, "", fmt.Errorf("invalid override index %q: must be 0-%d", parts[0], colour.NumShades-1)
	}

	hex, err := normaliseInput(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, "", fmt.Errorf("invalid override colour in %q: %w", spec, err)
	}

	return idx, hex, nil
}

// printScheme writes a human-readable shade listing. Truecolor swatches are
// included when the writer is a terminal.
func printScheme(w io.Writer, scheme *colour.Scheme) {
	colourise := isTerminal(w)

	for i, shade := range scheme.Shades {
		label := scaleLabels[i]
		marker := ""
		if shade.Overridden {
			marker = " (override)"
		}

		if colourise {
			fmt.Fprintf(w, "  %s %s  %-4s %s  text %s  %.2f:1%s\n",
				colour.Swatch(shade.Hex, 4),
				colour.SwatchWithText(shade.Hex, shade.Hex, 9),
				label, shade.Hex, shade.Text, shade.Contrast, marker)
		} else {
			fmt.Fprintf(w, "  %-4s %s  text %s  %.2f:1%s\n",
				label, shade.Hex, shade.Text, shade.Contrast, marker)
		}
	}
}

// isTerminal reports whether w is backed by a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// writeFiles writes rendered files under dir, creating it when needed.
func writeFiles(dir string, files map[string][]byte) error {
	for filename, content := range files {
		path := filepath.Join(dir, filename)
		if parent := filepath.Dir(path); parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
