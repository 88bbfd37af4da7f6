package main

import (
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/activities"
	"github.com/2beens/fitdash/pkg"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var activitiesDate string

var activitiesCmd = &cobra.Command{
	Use:     "activities",
	Aliases: []string{"acts"},
	Short:   "List the activities of one day with their scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now().In(cfg.Location())
		if activitiesDate != "" {
			var err error
			if day, err = pkg.ParseDay(activitiesDate, cfg.Location()); err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
		}

		list, err := components.Activities.ListOnDate(cmd.Context(), cfg.AthleteID, day)
		if err != nil {
			return fmt.Errorf("list activities: %w", err)
		}
		if len(list) == 0 {
			fmt.Printf("No activities on %s.\n", day.Format(pkg.DayLayout))
			return nil
		}
		for _, a := range list {
			fmt.Println(formatActivity(a, cfg.Location()))
		}
		return nil
	},
}

func formatActivity(a *activities.Activity, loc *time.Location) string {
	faint := color.New(color.Faint)
	score := faint.Sprint("unscored")
	if a.Scores != nil {
		score = fmt.Sprintf("stress %.1f  IF %.2f", a.Scores.Stress(), a.Scores.Intensity)
	}
	return fmt.Sprintf("%s %s %s %3dmin  %s",
		faint.Sprint(a.ID),
		faint.Sprint(a.StartDate.In(loc).Format("15:04")),
		padRight(a.Type, 12),
		a.ElapsedTime/60,
		score,
	)
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + fmt.Sprintf("%*s", length-len(s), "")
}

func init() {
	activitiesCmd.Flags().StringVar(&activitiesDate, "date", "", "day as YYYY-MM-DD, defaults to today")
	rootCmd.AddCommand(activitiesCmd)
}
