package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driveneutral/driveneutral/internal/engine"
)

func newEcoCmd(app *App) *cobra.Command {
	var criteria engine.EcoCriteria

	cmd := &cobra.Command{
		Use:   "eco",
		Short: "Find the most eco-friendly vehicles for your filters",
		Long: `Rank vehicles by lifecycle emissions, cleanest first, within an
optional budget and body/fuel type. Use "all" (or omit the flag) to
skip a filter.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			result, err := app.Engine.FindEcoFriendly(app.cmdContext(cmd), criteria)
			if err != nil {
				return err
			}

			if format == outputJSON {
				return renderJSON(cmd.OutOrStdout(), result)
			}
			return renderEco(cmd, result)
		},
	}

	cmd.Flags().IntVar(&criteria.BudgetMin, "budget-min", 0, "minimum price in rupees")
	cmd.Flags().IntVar(&criteria.BudgetMax, "budget-max", 0, "maximum price in rupees (0 = no limit)")
	cmd.Flags().StringVar(&criteria.BodyType, "body-type", "all", "body type (sedan, hatchback, suv, compact suv, mpv, coupe)")
	cmd.Flags().StringVar(&criteria.FuelType, "fuel-type", "all", "fuel type (electric, hybrid, diesel, petrol)")

	return cmd
}

func renderEco(cmd *cobra.Command, result *engine.EcoResult) error {
	out := cmd.OutOrStdout()

	cmd.Printf("Best pick: %s (%s, score %d/20, %s)\n",
		result.Best.Name, result.Best.FuelType, result.Best.SustainabilityScore, orNA(result.Best.BasePriceFmt))
	cmd.Printf("Versus an average petrol car: %d kg CO2 and %s saved per year\n\n",
		result.CO2SavedYearlyKg, result.CostSavedYearlyFmt)

	if len(result.Alternatives) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(result.Alternatives))
	for i, alt := range result.Alternatives {
		rows = append(rows, []string{
			fmt.Sprintf("%d.", i+2),
			alt.Name,
			string(alt.FuelType),
			orNA(alt.BasePriceFmt),
		})
	}
	return table(out, []string{"", "Alternative", "Fuel", "Price"}, rows)
}
