package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetGenerateFlags restores the generate command's package state after a
// test drives it directly.
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	origImage, origOverrides := generateImage, generateOverrides
	origOutputs, origDir, origStdout := generateOutputs, generateOutputDir, generateStdout
	origQuiet := flagQuiet
	t.Cleanup(func() {
		generateImage, generateOverrides = origImage, origOverrides
		generateOutputs, generateOutputDir, generateStdout = origOutputs, origDir, origStdout
		flagQuiet = origQuiet
	})
}

func TestRunGenerateWritesCSS(t *testing.T) {
	resetGenerateFlags(t)

	dir := t.TempDir()
	generateImage = ""
	generateOverrides = nil
	generateOutputs = []string{"css"}
	generateOutputDir = dir
	generateStdout = false
	flagQuiet = true

	if err := runGenerate(generateCmd, []string{"#6366f1"}); err != nil {
		t.Fatalf("runGenerate returned error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "theme.css"))
	if err != nil {
		t.Fatalf("expected theme.css to be written: %v", err)
	}
	if !strings.Contains(string(content), "--color-primary: #6366f1;") {
		t.Errorf("theme.css missing primary variable:\n%s", content)
	}
}

func TestRunGenerateAllRenderers(t *testing.T) {
	resetGenerateFlags(t)

	dir := t.TempDir()
	generateImage = ""
	generateOverrides = []string{"2=#ff0000"}
	generateOutputs = []string{"css", "tailwind", "json"}
	generateOutputDir = dir
	generateStdout = false
	flagQuiet = true

	if err := runGenerate(generateCmd, []string{"6366f1"}); err != nil {
		t.Fatalf("runGenerate returned error: %v", err)
	}

	for _, name := range []string{"theme.css", "tailwind.config.js", "theme.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}

	content, _ := os.ReadFile(filepath.Join(dir, "theme.css"))
	if !strings.Contains(string(content), "--color-200: #ff0000;") {
		t.Errorf("override not applied to theme.css:\n%s", content)
	}
}

func TestRunGenerateUnknownRenderer(t *testing.T) {
	resetGenerateFlags(t)

	generateImage = ""
	generateOutputs = []string{"nope"}
	flagQuiet = true

	err := runGenerate(generateCmd, []string{"#6366f1"})
	if err == nil || !strings.Contains(err.Error(), "unknown output renderer") {
		t.Errorf("expected unknown renderer error, got %v", err)
	}
}

func TestRunGenerateInvalidPrimary(t *testing.T) {
	resetGenerateFlags(t)

	generateImage = ""
	generateOutputs = []string{"css"}
	flagQuiet = true

	if err := runGenerate(generateCmd, []string{"#zzzzzz"}); err == nil {
		t.Error("expected error for invalid primary, got nil")
	}
}

func TestRunGenerateRejectsArgAndImage(t *testing.T) {
	resetGenerateFlags(t)

	generateImage = "some.png"
	flagQuiet = true

	err := runGenerate(generateCmd, []string{"#6366f1"})
	if err == nil || !strings.Contains(err.Error(), "not both") {
		t.Errorf("expected conflict error, got %v", err)
	}
}
