package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/huetone/internal/colour"
	"github.com/spf13/cobra"
)

var shadesCmd = &cobra.Command{
	Use:   "shades <primary>",
	Short: "Print the tonal scale for a primary colour",
	Long: `Shades derives the five fixed-lightness shades from a primary colour and
prints each with its WCAG text colour and contrast ratio.`,
	Example: `  huetone shades '#6366f1'`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		primary, err := normaliseInput(args[0])
		if err != nil {
			return err
		}

		scheme, err := colour.Theme{Primary: primary}.Resolve()
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Primary %s\n", scheme.Primary)
		printScheme(os.Stdout, scheme)
		return nil
	},
}
