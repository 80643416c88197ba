package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"worldpop/internal/platform/config"
	"worldpop/internal/platform/database"
	"worldpop/internal/population"
	"worldpop/internal/population/models"
	"worldpop/internal/population/store"
	"worldpop/pkg/platform/strings"
)

func (a *app) breakdownCmd(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(cmd.Context(), func(svc *population.Service) error {
				var (
					level models.Level
					sums  []models.Summary
					err   error
				)
				switch use {
				case "continents":
					level = models.LevelContinent
					sums, err = svc.ContinentBreakdown(cmd.Context())
				case "regions":
					level = models.LevelRegion
					sums, err = svc.RegionBreakdown(cmd.Context())
				default:
					level = models.LevelCountry
					sums, err = svc.CountryBreakdown(cmd.Context())
				}
				if err != nil {
					return err
				}
				return renderBreakdown(cmd.OutOrStdout(), a.format, level, sums)
			})
		},
	}
}

func (a *app) worldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "world",
		Short: "Total population of the world",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(cmd.Context(), func(svc *population.Service) error {
				sums, err := svc.World(cmd.Context())
				if err != nil {
					return err
				}
				return renderLookup(cmd.OutOrStdout(), a.format, models.LevelWorld, sums)
			})
		},
	}
}

func (a *app) populationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "population <level> <name>...",
		Short: "Total population of named continents, regions, countries, districts or cities",
		Long: "Looks up each name at the given level. Quote names that contain spaces.\n" +
			"Levels: continent, region, country, district, city.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := models.ParseLevel(args[0])
			if err != nil {
				return err
			}
			return a.withService(cmd.Context(), func(svc *population.Service) error {
				out := []models.Summary{}
				for _, name := range args[1:] {
					sums, err := svc.Population(cmd.Context(), level, name)
					if err != nil {
						return err
					}
					out = append(out, sums...)
				}
				return renderLookup(cmd.OutOrStdout(), a.format, level, out)
			})
		},
	}
}

func (a *app) languagesCmd() *cobra.Command {
	var targets string
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "Speakers of the major languages, greatest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(cmd.Context(), func(svc *population.Service) error {
				sums, err := svc.Languages(cmd.Context(), strings.SplitList(targets))
				if err != nil {
					return err
				}
				return renderLanguages(cmd.OutOrStdout(), a.format, sums)
			})
		},
	}
	cmd.Flags().StringVar(&targets, "languages", "", "comma separated languages (default: Chinese, English, Hindi, Spanish, Arabic)")
	return cmd
}

func (a *app) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the world schema and load the sample dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Database.Driver == config.DriverMemory {
				return fmt.Errorf("seed needs a database driver, got %q", config.DriverMemory)
			}
			ctx := cmd.Context()
			db, err := database.Connect(ctx, a.cfg.Database, a.log)
			if err != nil {
				return err
			}
			defer db.Close()

			data := store.SampleWorld()
			if err := store.Bootstrap(ctx, db, a.cfg.Database.Driver, data); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d countries, %d cities, %d languages\n",
				len(data.Countries), len(data.Cities), len(data.Languages))
			return nil
		},
	}
}
