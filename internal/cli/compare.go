package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/driveneutral/driveneutral/internal/engine"
)

func newCompareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <vehicle1> <vehicle2>",
		Short: "Compare two vehicles head to head",
		Long: `Compare two vehicles by name. Queries match case-insensitive
substrings of the catalog names, so "nexon ev" finds the Tata Nexon EV.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			result, err := app.Engine.CompareVehicles(app.cmdContext(cmd), args[0], args[1])
			if err != nil {
				return err
			}

			if format == outputJSON {
				return renderJSON(cmd.OutOrStdout(), result)
			}
			return renderComparison(cmd, result)
		},
	}
}

func renderComparison(cmd *cobra.Command, result *engine.ComparisonResult) error {
	p1, p2 := result.Vehicle1, result.Vehicle2

	rows := [][]string{
		{"Fuel", string(p1.FuelType), string(p2.FuelType)},
		{"Body", string(p1.BodySegment), string(p2.BodySegment)},
		{"Price", orNA(p1.BasePriceFmt), orNA(p2.BasePriceFmt)},
		{"Fuel cost/yr", p1.FuelCostYearlyFmt, p2.FuelCostYearlyFmt},
		{"CO2/yr", strconv.Itoa(p1.CO2YearlyKg) + " kg", strconv.Itoa(p2.CO2YearlyKg) + " kg"},
		{"5y ownership", p1.OwnershipCost5yFmt, p2.OwnershipCost5yFmt},
		{"Score", fmt.Sprintf("%d/20", p1.SustainabilityScore), fmt.Sprintf("%d/20", p2.SustainabilityScore)},
		{"Range", floatCell(p1.RangeKm, " km"), floatCell(p2.RangeKm, " km")},
	}

	if err := table(cmd.OutOrStdout(), []string{"", p1.Name, p2.Name}, rows); err != nil {
		return err
	}
	cmd.Println()
	cmd.Println(result.Recommendation)
	return nil
}
