package cli

import (
	"github.com/spf13/cobra"

	"github.com/driveneutral/driveneutral/internal/engine"
)

func newInsightsCmd(app *App) *cobra.Command {
	var dailyKm float64

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Ownership insights for a daily commute",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			insights := app.Engine.GenerateInsights(app.cmdContext(cmd), dailyKm)

			if format == outputJSON {
				return renderJSON(cmd.OutOrStdout(), insights)
			}
			for _, line := range insights {
				cmd.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&dailyKm, "daily-km", 0, "daily driving distance in km")

	return cmd
}

func newTipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tip",
		Short: "Print a random driving tip",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(engine.RandomTip())
		},
	}
}
