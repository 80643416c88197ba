// Package cli implements the popreport command line: population reports
// printed as console tables or JSON.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"worldpop/internal/platform/config"
	"worldpop/internal/population"
	"worldpop/internal/population/service"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

type app struct {
	cfg    config.Config
	log    *slog.Logger
	format string
}

// NewRootCommand builds the popreport command tree. Flag defaults come from
// cfg so the environment and .env files still apply.
func NewRootCommand(cfg config.Config, log *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:           "popreport",
		Short:         "Population reports over the world dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch a.cfg.Database.Driver {
			case config.DriverPostgres, config.DriverPgx, config.DriverSQLite, config.DriverMemory:
			default:
				return fmt.Errorf("unknown driver %q", a.cfg.Database.Driver)
			}
			if a.format != FormatTable && a.format != FormatJSON {
				return fmt.Errorf("unknown format %q", a.format)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Database.Driver, "driver", cfg.Database.Driver, "record store: postgres|pgx|sqlite|memory")
	flags.StringVar(&a.cfg.Database.DSN, "dsn", cfg.Database.DSN, "PostgreSQL connection URL")
	flags.StringVar(&a.cfg.Database.SQLitePath, "sqlite-path", cfg.Database.SQLitePath, "SQLite database file")
	flags.StringVarP(&a.format, "format", "o", FormatTable, "output format: table|json")

	root.AddCommand(
		a.breakdownCmd("continents", "City and non-city population of each continent"),
		a.breakdownCmd("regions", "City and non-city population of each region"),
		a.breakdownCmd("countries", "City and non-city population of each country"),
		a.worldCmd(),
		a.populationCmd(),
		a.languagesCmd(),
		a.seedCmd(),
	)
	return root
}

// withService opens the configured source, runs fn and releases the source.
func (a *app) withService(ctx context.Context, fn func(*population.Service) error) (err error) {
	src, err := population.OpenSource(ctx, a.cfg, a.log, nil)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close record source: %w", cerr)
		}
	}()

	svc, err := population.NewService(src, service.WithLogger(a.log))
	if err != nil {
		return err
	}
	return fn(svc)
}
