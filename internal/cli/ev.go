package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/driveneutral/driveneutral/internal/engine"
)

func newEVCmd(app *App) *cobra.Command {
	var (
		budget int
		usage  string
	)

	cmd := &cobra.Command{
		Use:   "ev",
		Short: "Shortlist the best EVs under a budget",
		Long: `List up to four electric vehicles at or under the budget. Highway
usage ranks by range; anything else ranks by efficiency.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			options, err := app.Engine.BestEVUnderBudget(app.cmdContext(cmd), budget, usage)
			if err != nil {
				return err
			}

			if format == outputJSON {
				return renderJSON(cmd.OutOrStdout(), options)
			}
			return renderEVOptions(cmd, options)
		},
	}

	cmd.Flags().IntVar(&budget, "budget", engine.DefaultEVBudget, "budget in rupees")
	cmd.Flags().StringVar(&usage, "usage", "city", "driving profile (city, highway)")

	return cmd
}

func renderEVOptions(cmd *cobra.Command, options []engine.EVOption) error {
	rows := make([][]string, 0, len(options))
	for i, opt := range options {
		rows = append(rows, []string{
			strconv.Itoa(i+1) + ".",
			opt.Name,
			orNA(opt.BasePriceFmt),
			floatCell(opt.RangeKm, " km"),
			opt.ChargingTime,
			opt.RunningCostYearlyFmt + "/yr",
			strconv.Itoa(opt.CO2ReductionKg) + " kg/yr",
		})
	}
	return table(cmd.OutOrStdout(),
		[]string{"", "EV", "Price", "Range", "Charging", "Running cost", "CO2 saved"},
		rows)
}
