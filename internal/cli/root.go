// Package cli provides the command-line interface for huetone.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/huetone/internal/output"
	"github.com/jmylchreest/huetone/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagVerbose bool
	flagQuiet   bool

	// Shared renderer registry used by the generate command.
	sharedRegistry = output.DefaultRegistry()

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "huetone",
		Short: "A WCAG-aware tonal theme generator",
		Long: `Huetone derives a five-step tonal scale from a single primary colour and
computes a WCAG-compliant text colour for every shade.

Give it a hex colour (or an image to pick one from) and it renders the
scheme as CSS custom properties, a Tailwind colour scale, or JSON.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// logger returns the CLI logger at the level implied by the global flags.
func logger() hclog.Logger {
	level := hclog.Info
	if flagQuiet {
		level = hclog.Error
	}
	if flagVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huetone",
		Level:  level,
		Output: os.Stderr,
	})
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(shadesCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(convertCmd)

	// Renderer-specific flags all live on generate.
	for _, renderer := range sharedRegistry.All() {
		renderer.RegisterFlags(generateCmd.Flags())
	}
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
