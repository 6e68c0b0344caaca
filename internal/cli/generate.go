package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmylchreest/huetone/internal/colour"
	img "github.com/jmylchreest/huetone/internal/image"
	"github.com/spf13/cobra"
)

var (
	generateImage     string
	generateOverrides []string
	generateOutputs   []string
	generateOutputDir string
	generateStdout    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [primary]",
	Short: "Generate a theme from a primary colour",
	Long: `Generate derives the five-shade tonal scale from a primary colour and
renders it through one or more output renderers.

The primary is a 6-digit hex colour (shorthand #RGB is expanded), or is
picked from an image with --image. Individual shades can be pinned with
--override index=hex; clearing or mistyping an override falls back to the
generated shade.`,
	Example: `  huetone generate '#6366f1'
  huetone generate 6366f1 --output css,tailwind
  huetone generate --image wallpaper.png --output json --stdout
  huetone generate '#6366f1' --override '2=#5659f0'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateImage, "image", "", "derive the primary colour from an image file")
	generateCmd.Flags().StringArrayVar(&generateOverrides, "override", nil, "pin a shade: index=hex (repeatable)")
	generateCmd.Flags().StringSliceVarP(&generateOutputs, "output", "o", []string{"css"}, "output renderers to run")
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "", "directory to write output files to")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "write rendered output to stdout instead of files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger()

	primary, err := resolvePrimary(args)
	if err != nil {
		return err
	}
	log.Debug("resolved primary colour", "primary", primary)

	theme := colour.Theme{Primary: primary}
	if err := applyOverrides(&theme, generateOverrides); err != nil {
		return err
	}

	scheme, err := theme.Resolve()
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "✓ Primary: %s\n", scheme.Primary)
		printScheme(os.Stderr, scheme)
	}

	for _, name := range generateOutputs {
		renderer, ok := sharedRegistry.Get(name)
		if !ok {
			return fmt.Errorf("unknown output renderer %q (available: %v)", name, sharedRegistry.List())
		}
		if err := renderer.Validate(); err != nil {
			return fmt.Errorf("renderer %s: %w", name, err)
		}

		files, err := renderer.Generate(scheme)
		if err != nil {
			return fmt.Errorf("renderer %s: %w", name, err)
		}

		if generateStdout {
			for _, content := range files {
				if _, err := os.Stdout.Write(content); err != nil {
					return err
				}
			}
			continue
		}

		dir := generateOutputDir
		if dir == "" {
			dir = renderer.DefaultOutputDir()
		}
		if err := writeFiles(dir, files); err != nil {
			return fmt.Errorf("renderer %s: %w", name, err)
		}

		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "✓ Output renderer: %s\n", renderer.Name())
			for filename := range files {
				fmt.Fprintf(os.Stderr, "  └─ wrote %s\n", filepath.Join(dir, filename))
			}
		}
	}

	return nil
}

// resolvePrimary chooses the primary colour from the positional argument or
// the --image flag. Exactly one source must be given.
func resolvePrimary(args []string) (string, error) {
	hasArg := len(args) == 1
	hasImage := generateImage != ""

	switch {
	case hasArg && hasImage:
		return "", fmt.Errorf("give either a primary colour or --image, not both")
	case hasArg:
		return normaliseInput(args[0])
	case hasImage:
		if err := img.ValidateImagePath(generateImage); err != nil {
			return "", err
		}
		loaded, err := img.NewFileLoader().Load(generateImage)
		if err != nil {
			return "", err
		}
		return img.PrimaryFromImage(loaded)
	default:
		return "", fmt.Errorf("a primary colour or --image is required")
	}
}
