package main

import (
	"encoding/json"
	"fmt"

	"github.com/2beens/fitdash/internal/athlete"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var profileFlags struct {
	weight         float64
	ftp            float64
	maxHR          int
	restingHR      int
	lthr           int
	minWorkout     int
	recoveryMetric string
	weeklyTSSGoal  float64
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the athlete profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := components.Profiles.Get(cmd.Context(), cfg.AthleteID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile thresholds",
	Long: `Update profile thresholds. Only the flags passed are changed.

EXAMPLES:

  fitctl profile set --ftp 265 --weight 71.5
  fitctl profile set --recovery-metric hrv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := components.Profiles.Get(cmd.Context(), cfg.AthleteID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		if err := applyProfileFlags(cmd, p); err != nil {
			return err
		}
		if err := components.Profiles.Save(cmd.Context(), p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		color.Green("profile %d updated", p.ID)
		return nil
	},
}

func applyProfileFlags(cmd *cobra.Command, p *athlete.Profile) error {
	flags := cmd.Flags()
	if flags.Changed("weight") {
		p.WeightKg = profileFlags.weight
	}
	if flags.Changed("ftp") {
		p.FTP = profileFlags.ftp
	}
	if flags.Changed("max-hr") {
		p.MaxHR = profileFlags.maxHR
	}
	if flags.Changed("resting-hr") {
		p.RestingHR = profileFlags.restingHR
	}
	if flags.Changed("lthr") {
		p.LTHR = profileFlags.lthr
	}
	if flags.Changed("min-workout-seconds") {
		p.MinWorkoutSeconds = profileFlags.minWorkout
	}
	if flags.Changed("weekly-tss-goal") {
		p.WeeklyTSSGoal = profileFlags.weeklyTSSGoal
	}
	if flags.Changed("recovery-metric") {
		m := athlete.RecoveryMetric(profileFlags.recoveryMetric)
		if m != athlete.MetricHRV && m != athlete.MetricHRVBaseline {
			return fmt.Errorf("unknown recovery metric %q, use %s or %s", m, athlete.MetricHRVBaseline, athlete.MetricHRV)
		}
		p.RecoveryMetric = m
	}
	if p.MaxHR > 0 && p.RestingHR >= p.MaxHR {
		return fmt.Errorf("resting hr %d must be below max hr %d", p.RestingHR, p.MaxHR)
	}
	return nil
}

func init() {
	f := profileSetCmd.Flags()
	f.Float64Var(&profileFlags.weight, "weight", 0, "body weight in kg")
	f.Float64Var(&profileFlags.ftp, "ftp", 0, "functional threshold power in watts")
	f.IntVar(&profileFlags.maxHR, "max-hr", 0, "maximum heart rate")
	f.IntVar(&profileFlags.restingHR, "resting-hr", 0, "resting heart rate")
	f.IntVar(&profileFlags.lthr, "lthr", 0, "lactate threshold heart rate")
	f.IntVar(&profileFlags.minWorkout, "min-workout-seconds", 0, "minimum elapsed time of a completed session")
	f.StringVar(&profileFlags.recoveryMetric, "recovery-metric", "", "hrv_baseline or hrv")
	f.Float64Var(&profileFlags.weeklyTSSGoal, "weekly-tss-goal", 0, "weekly training stress goal")
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
