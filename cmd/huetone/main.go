// Huetone - a WCAG-aware tonal theme generator
//
// Huetone derives a five-step tonal scale from a single primary colour,
// computes accessible text colours for every shade, and renders the result
// as CSS custom properties, a Tailwind colour scale, or JSON.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/huetone/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
