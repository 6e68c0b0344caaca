package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/huetone/internal/colour"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <hex | h,s,l>",
	Short: "Convert between hex and HSL",
	Long: `Convert translates a hex colour to its integer HSL decomposition, or an
"h,s,l" triple (degrees, percent, percent) back to hex.`,
	Example: `  huetone convert '#6366f1'
  huetone convert 239,84,67`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		if strings.Contains(input, ",") {
			h, s, l, err := parseHSLTriple(input)
			if err != nil {
				return err
			}
			fmt.Println(colour.HSLToHex(h, s, l))
			return nil
		}

		hex, err := normaliseInput(input)
		if err != nil {
			return err
		}
		hsl, err := colour.HexToHSL(hex)
		if err != nil {
			return err
		}
		fmt.Printf("hsl(%d, %d%%, %d%%)\n", hsl.H, hsl.S, hsl.L)
		return nil
	},
}

// parseHSLTriple parses "h,s,l" with hue 0-360 and percentages 0-100.
func parseHSLTriple(input string) (h, s, l int, err error) {
	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid HSL triple %q: expected h,s,l", input)
	}

	values := make([]int, 3)
	for i, part := range parts {
		values[i], err = strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid HSL component %q: %w", part, err)
		}
	}

	h, s, l = values[0], values[1], values[2]
	if h < 0 || h > 360 {
		return 0, 0, 0, fmt.Errorf("hue %d out of range 0-360", h)
	}
	if s < 0 || s > 100 {
		return 0, 0, 0, fmt.Errorf("saturation %d out of range 0-100", s)
	}
	if l < 0 || l > 100 {
		return 0, 0, 0, fmt.Errorf("lightness %d out of range 0-100", l)
	}
	return h, s, l, nil
}
