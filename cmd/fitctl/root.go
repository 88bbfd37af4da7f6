package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fitdash/internal/app"
	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/db"
	"github.com/2beens/fitdash/internal/telemetry/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFlag    string
	configPath string
	verbose    bool

	cfg        *config.Config
	dbPool     *pgxpool.Pool
	components *app.Components
	cliMetrics *metrics.Manager
)

var rootCmd = &cobra.Command{
	Use:   "fitctl",
	Short: "Operate the fitdash training pipelines",
	Long: `fitctl runs the fitdash pipelines directly against postgres.

EXAMPLES:

  fitctl workflow run                   # compute today's step
  fitctl workflow reset                 # drop the whole step log
  fitctl baseline --days 14             # print the last 14 baseline days
  fitctl score pending                  # score unscored activities
  fitctl fitbod import --file ex.csv    # import a fitbod export
  fitctl sleep add --rmssd 62           # add tonight's oura summary

The database password is read from FITDASH_POSTGRES_PASS.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == hashPasswordCmd.Name() {
			return nil
		}
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}

		var err error
		cfg, err = config.Load(envFlag, configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBPassword: os.Getenv("FITDASH_POSTGRES_PASS"),
		})
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}

		cliMetrics = metrics.NewManager("fitdash", "cli", prometheus.NewRegistry())
		components = app.New(dbPool, cliMetrics)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbPool != nil {
			dbPool.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "config environment section")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./config.toml", "path to TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}
