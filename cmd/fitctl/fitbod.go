package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var fitbodFile string

var fitbodCmd = &cobra.Command{
	Use:   "fitbod",
	Short: "Manage Fitbod strength data",
}

var fitbodImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a Fitbod CSV export",
	Long: `Import a Fitbod CSV export and upsert its working sets.

Without --file the configured export location is used (a Google Drive
folder or a local path).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		importer, err := components.FitbodImporter(
			cmd.Context(),
			cfg,
			fitbodFile,
			os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
			cliMetrics,
		)
		if err != nil {
			return err
		}
		if importer == nil {
			return fmt.Errorf("no fitbod export configured, pass --file")
		}

		written, err := importer.Import(cmd.Context())
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		color.Green("imported %d sets", written)
		return nil
	},
}

func init() {
	fitbodImportCmd.Flags().StringVarP(&fitbodFile, "file", "f", "", "path to a Fitbod CSV export")
	fitbodCmd.AddCommand(fitbodImportCmd)
	rootCmd.AddCommand(fitbodCmd)
}
