package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute training stress scores",
}

var scorePendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Score every activity that has no scores yet",
	RunE: func(cmd *cobra.Command, args []string) error {
		scored, err := components.Training.ScorePending(cmd.Context(), cfg.AthleteID)
		if scored > 0 {
			color.Green("scored %d activities", scored)
		}
		if err != nil {
			failures := multierr.Errors(err)
			for _, e := range failures {
				color.Red("  %s", e)
			}
			return fmt.Errorf("%d activities failed to score", len(failures))
		}
		if scored == 0 {
			fmt.Println("Nothing to score.")
		}
		return nil
	},
}

func init() {
	scoreCmd.AddCommand(scorePendingCmd)
	rootCmd.AddCommand(scoreCmd)
}
