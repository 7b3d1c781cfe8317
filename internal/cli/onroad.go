package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driveneutral/driveneutral/internal/pricing"
)

func newOnRoadCmd(app *App) *cobra.Command {
	var city string

	cmd := &cobra.Command{
		Use:   "onroad <base-price>",
		Short: "On-road price for an ex-showroom price",
		Long: `Break down the on-road price (insurance, RTO, handling) for an
ex-showroom price in a city. Unknown cities use the default city's
rates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			basePrice, err := strconv.Atoi(strings.ReplaceAll(args[0], ",", ""))
			if err != nil || basePrice <= 0 {
				return fmt.Errorf("base price must be a positive rupee amount, got %q", args[0])
			}

			if city == "" {
				city = app.Config.Pricing.City
			}
			breakdown := pricing.Breakdown(basePrice, city)

			if format == outputJSON {
				return renderJSON(cmd.OutOrStdout(), breakdown)
			}

			rows := [][]string{
				{"City", breakdown.City + " (" + breakdown.Rates.State + ")"},
				{"Ex-showroom", pricing.FormatINR(breakdown.BasePrice)},
				{"Insurance", pricing.FormatINR(breakdown.Insurance)},
				{"RTO", pricing.FormatINR(breakdown.RTO)},
				{"Handling", pricing.FormatINR(breakdown.Other)},
				{"On-road", pricing.FormatINR(breakdown.Total)},
			}
			return table(cmd.OutOrStdout(), nil, rows)
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "city for RTO and registration rates")

	return cmd
}
