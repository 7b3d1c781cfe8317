// Package cli implements the driveneutral command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/driveneutral/driveneutral/internal/catalog"
	"github.com/driveneutral/driveneutral/internal/catalog/postgres"
	"github.com/driveneutral/driveneutral/internal/config"
	"github.com/driveneutral/driveneutral/internal/engine"
	"github.com/driveneutral/driveneutral/internal/logging"
)

// App carries the shared state every subcommand needs: resolved
// configuration, the logger, and the engine over the selected store.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Engine *engine.Engine

	pg *postgres.Store
}

// NewRootCmd creates the root driveneutral command.
func NewRootCmd(ver string) *cobra.Command {
	app := &App{}

	var (
		cfgPath string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:     "driveneutral",
		Short:   "Vehicle comparison and EV cost engine",
		Long:    "DriveNeutral: compare vehicles, rank eco-friendly picks, and estimate EV running costs and break-even.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			app.Config = cfg

			logCfg := cfg.Logging.ToLoggingConfig()
			if debug {
				logCfg.Level = "debug"
			}
			app.Logger = logging.ComponentLogger(logging.New(logCfg), "cli")

			store, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			app.Engine = engine.New(catalog.New(store, catalog.WithTTL(cfg.Catalog.TTL)))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app.pg != nil {
				app.pg.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (YAML)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json)")

	cmd.AddCommand(
		newCompareCmd(app),
		newEcoCmd(app),
		newEVCmd(app),
		newCostsCmd(app),
		newInsightsCmd(app),
		newOnRoadCmd(app),
		newTipCmd(),
	)

	return cmd
}

// openStore selects the vehicle data source: PostgreSQL when a DSN is
// configured, the built-in seed catalog otherwise.
func (a *App) openStore(ctx context.Context) (catalog.Store, error) {
	if a.Config.Store.DSN == "" {
		a.Logger.Debug().Msg("using seed vehicle store")
		return catalog.NewSeedStore(), nil
	}

	pg, err := postgres.Connect(ctx, a.Config.Store.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect vehicle store: %w", err)
	}
	a.pg = pg
	a.Logger.Debug().Msg("using postgres vehicle store")
	return pg, nil
}

// cmdContext returns the command context with the app logger attached
// and a trace ID for correlating the invocation's log lines.
func (a *App) cmdContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	ctx = logging.ContextWithTraceID(ctx, logging.GetOrGenerateTraceID(ctx))
	return a.Logger.WithContext(ctx)
}

const rootCmdExample = `  # Compare two vehicles head to head
  driveneutral compare "Nexon EV" "Swift"

  # Find the most eco-friendly vehicle under a budget
  driveneutral eco --budget-max 1500000 --body-type suv

  # Shortlist EVs under a budget for highway driving
  driveneutral ev --budget 2000000 --usage highway

  # Estimate EV savings for a daily commute
  driveneutral costs --daily-km 40

  # On-road price for a base price in a city
  driveneutral onroad 1479000 --city Mumbai`
