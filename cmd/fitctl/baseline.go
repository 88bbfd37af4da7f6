package main

import (
	"fmt"
	"math"

	"github.com/2beens/fitdash/internal/recovery"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var baselineDays int

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Print the recent HRV and HR baseline",
	RunE: func(cmd *cobra.Command, args []string) error {
		if baselineDays <= 0 {
			return fmt.Errorf("--days must be positive")
		}
		days, err := components.Recovery.Baseline(cmd.Context(), cfg.AthleteID)
		if err != nil {
			return fmt.Errorf("baseline: %w", err)
		}
		if len(days) == 0 {
			fmt.Println("No sleep records found.")
			return nil
		}
		for _, d := range lastDays(days, baselineDays) {
			fmt.Println(formatDay(d))
		}
		return nil
	},
}

func lastDays(days []recovery.Day, n int) []recovery.Day {
	if len(days) <= n {
		return days
	}
	return days[len(days)-n:]
}

func formatDay(d recovery.Day) string {
	faint := color.New(color.Faint)
	return fmt.Sprintf("%s  lnRMSSD %s  HR %s  hrv z %s  hr z %s  %s",
		faint.Sprint(d.Date.Format("2006-01-02")),
		formatValue(d.LnRMSSD),
		formatValue(d.HRAverage),
		formatValue(d.HRVZ),
		formatValue(d.HRZ),
		colorRecommendation(d.Recommendation),
	)
}

func formatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "   -"
	}
	return fmt.Sprintf("%5.2f", v)
}

func colorRecommendation(r recovery.Recommendation) string {
	switch r {
	case recovery.RecommendationHigh:
		return color.GreenString(string(r))
	case recovery.RecommendationRest:
		return color.RedString(string(r))
	case "":
		return "-"
	default:
		return color.YellowString(string(r))
	}
}

func init() {
	baselineCmd.Flags().IntVarP(&baselineDays, "days", "d", 7, "number of most recent days to print")
	rootCmd.AddCommand(baselineCmd)
}
