package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driveneutral/driveneutral/internal/engine"
)

func newCostsCmd(app *App) *cobra.Command {
	var (
		dailyKm         float64
		fuelPrice       float64
		electricityCost float64
	)

	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Estimate EV versus petrol running costs",
		Long: `Estimate monthly running costs, savings and the EV break-even point
for a daily commute. Omitted or non-positive inputs use sensible
defaults (30 km/day, ₹104/L petrol, ₹8/kWh electricity).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			result := app.Engine.CalculateCosts(app.cmdContext(cmd), dailyKm, fuelPrice, electricityCost)

			if format == outputJSON {
				return renderJSON(cmd.OutOrStdout(), result)
			}
			return renderCosts(cmd, result)
		},
	}

	cmd.Flags().Float64Var(&dailyKm, "daily-km", 0, "daily driving distance in km")
	cmd.Flags().Float64Var(&fuelPrice, "fuel-price", 0, "petrol price per litre in rupees")
	cmd.Flags().Float64Var(&electricityCost, "electricity-cost", 0, "electricity price per kWh in rupees")

	return cmd
}

func renderCosts(cmd *cobra.Command, result engine.CostResult) error {
	rows := [][]string{
		{"Daily commute", fmt.Sprintf("%.0f km", result.DailyKm)},
		{"Monthly fuel cost", result.MonthlyFuelCostFmt},
		{"Monthly EV cost", result.MonthlyEVCostFmt},
		{"Monthly saving", result.MonthlySavingFmt},
		{"Five year saving", result.FiveYearSavingFmt},
		{"Break-even", breakEvenCell(result)},
	}
	return table(cmd.OutOrStdout(), nil, rows)
}

func breakEvenCell(result engine.CostResult) string {
	if result.BreakEvenNever {
		return "never at these prices"
	}
	return fmt.Sprintf("%.1f years", *result.BreakEvenYearsRounded)
}
