package cli

import (
	"fmt"

	"github.com/jmylchreest/huetone/internal/colour"
	"github.com/spf13/cobra"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <colour> [colour]",
	Short: "Check WCAG contrast",
	Long: `Contrast computes the WCAG contrast ratio between two colours and reports
whether it meets the AA (4.5:1) and AAA (7:1) thresholds for normal text.

With a single colour, it reports the ratios against black and white and the
text colour huetone would select for that background.`,
	Example: `  huetone contrast '#6366f1' '#ffffff'
  huetone contrast '#5659f0'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		background, err := normaliseInput(args[0])
		if err != nil {
			return err
		}

		if len(args) == 2 {
			other, err := normaliseInput(args[1])
			if err != nil {
				return err
			}
			ratio, err := colour.ContrastRatio(background, other)
			if err != nil {
				return err
			}

			fmt.Printf("%s on %s: %.2f:1\n", other, background, ratio)
			fmt.Printf("  AA  normal text (%.1f:1): %s\n", colour.AAContrast, verdict(ratio >= colour.AAContrast))
			fmt.Printf("  AAA normal text (%.1f:1): %s\n", colour.AAAContrast, verdict(ratio >= colour.AAAContrast))
			return nil
		}

		ratioBlack, err := colour.ContrastRatio(colour.TextColourBlack, background)
		if err != nil {
			return err
		}
		ratioWhite, err := colour.ContrastRatio(colour.TextColourWhite, background)
		if err != nil {
			return err
		}
		text, err := colour.ContrastTextColour(background)
		if err != nil {
			return err
		}

		fmt.Printf("Background %s\n", background)
		fmt.Printf("  vs black %s: %.2f:1\n", colour.TextColourBlack, ratioBlack)
		fmt.Printf("  vs white %s: %.2f:1\n", colour.TextColourWhite, ratioWhite)
		fmt.Printf("  selected text colour: %s\n", text)
		return nil
	},
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}
