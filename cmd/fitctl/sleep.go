package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/oura"
	"github.com/2beens/fitdash/pkg"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	sleepDate     string
	sleepRMSSD    float64
	sleepHRAvg    float64
	sleepHRLowest float64
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Manage nightly sleep summaries",
}

var sleepAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or replace one night of Oura data",
	Long: `Add or replace one night of Oura data for the configured athlete.

Metrics left unset are stored as missing and skipped by the baseline.

EXAMPLES:

  fitctl sleep add --rmssd 62 --hr-avg 51 --hr-lowest 47
  fitctl sleep add --date 2024-05-01 --rmssd 58.5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now().In(cfg.Location())
		if sleepDate != "" {
			var err error
			if date, err = pkg.ParseDay(sleepDate, cfg.Location()); err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
		}

		summary := oura.SleepSummary{
			AthleteID:  cfg.AthleteID,
			ReportDate: date,
			RMSSD:      flagValue(cmd, "rmssd", sleepRMSSD),
			HRAverage:  flagValue(cmd, "hr-avg", sleepHRAvg),
			HRLowest:   flagValue(cmd, "hr-lowest", sleepHRLowest),
		}
		if summary.RMSSD == nil && summary.HRAverage == nil && summary.HRLowest == nil {
			return fmt.Errorf("set at least one of --rmssd, --hr-avg, --hr-lowest")
		}

		if err := components.Oura.Add(cmd.Context(), summary); err != nil {
			if errors.Is(err, oura.ErrUnknownAthlete) {
				return fmt.Errorf("athlete %d does not exist", cfg.AthleteID)
			}
			return err
		}
		color.Green("saved sleep summary for %s", date.Format(pkg.DayLayout))
		return nil
	},
}

// flagValue returns nil for flags the user did not pass.
func flagValue(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func init() {
	sleepAddCmd.Flags().StringVar(&sleepDate, "date", "", "report date as YYYY-MM-DD, defaults to today")
	sleepAddCmd.Flags().Float64Var(&sleepRMSSD, "rmssd", 0, "nightly RMSSD in ms")
	sleepAddCmd.Flags().Float64Var(&sleepHRAvg, "hr-avg", 0, "average sleeping heart rate")
	sleepAddCmd.Flags().Float64Var(&sleepHRLowest, "hr-lowest", 0, "lowest sleeping heart rate")
	sleepCmd.AddCommand(sleepAddCmd)
	rootCmd.AddCommand(sleepCmd)
}
