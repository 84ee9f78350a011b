package cmd

import (
	"github.com/PolarWolf314/kouchat/internal/ui"
	"github.com/PolarWolf314/kouchat/internal/workflows"
	"github.com/spf13/cobra"
)

var exportOutputPath string

func init() {
	settingsExportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "output path for the TOML file (default: kouchat-settings-YYYY-MM-DD.toml)")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportOutputPath = ""
}

var settingsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the saved settings to a TOML file",
	Long: `Writes the saved settings to a TOML file, to keep as a backup or to
copy to another machine. Startup arguments are not exported.

The file can be given as an argument or with -o/--output.
Default filename includes today's date: kouchat-settings-YYYY-MM-DD.toml

Examples:
  # Export to default filename
  kouchat settings export

  # Export to custom path
  kouchat settings export ~/backups/kouchat.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting settings export command")

		store, err := storeFrom(cmd.Context())
		if err != nil {
			return err
		}

		outputPath := exportOutputPath
		if len(args) == 1 {
			outputPath = args[0]
		}
		Logger.Debugf("Output path: %q", outputPath)

		spinner, cleanup := startSpinner("Exporting settings...")
		defer cleanup()

		result, err := workflows.Export(cmd.Context(), store, workflows.ExportOptions{OutputPath: outputPath})
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to export settings: " + err.Error()
			return err
		}

		Logger.Infof("Exported settings to %s", result.OutputPath)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Settings exported to " + ui.Path.Sprint(result.OutputPath)
		return nil
	},
}
