package main

import (
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/workflow"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetYes bool

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Run or reset the daily step workflow",
}

var workflowRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute today's workout step",
	RunE: func(cmd *cobra.Command, args []string) error {
		today := time.Now().In(cfg.Location())
		entry, err := components.Workflow.Run(cmd.Context(), cfg.AthleteID, today)
		if workflow.IsSkip(err) {
			color.Yellow("skipped: %s", err)
			return nil
		}
		if err != nil {
			return fmt.Errorf("run workflow: %w", err)
		}
		printEntry(entry)
		return nil
	},
}

var workflowResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every step log entry of the athlete",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to reset without --yes")
		}
		deleted, err := components.Workflow.Reset(cmd.Context(), cfg.AthleteID)
		if err != nil {
			return fmt.Errorf("reset workflow: %w", err)
		}
		color.Green("deleted %d step log entries", deleted)
		return nil
	},
}

func printEntry(e *workflow.StepLogEntry) {
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)
	fmt.Printf("%s  %s %s\n",
		faint.Sprint(e.Date.Format("2006-01-02")),
		bold.Sprintf("step %d", int(e.Step)),
		e.Description,
	)
	if e.Rationale != "" {
		fmt.Println(faint.Sprint(e.Rationale))
	}
}

func init() {
	workflowResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "confirm the reset")
	workflowCmd.AddCommand(workflowRunCmd, workflowResetCmd)
	rootCmd.AddCommand(workflowCmd)
}
