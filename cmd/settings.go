package cmd

import (
	"github.com/spf13/cobra"
)

// SettingsCmd groups the commands that work on the saved settings.
var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change the saved settings",
	Long: `Provides commands for viewing, changing and exporting the settings
saved in ~/.kouchat/kouchat.ini.

Examples:
  # Show all settings
  kouchat settings show

  # Change your nick name
  kouchat settings set nick_name Jane

  # Back up your settings
  kouchat settings export -o settings.toml

  # See what was changed
  kouchat settings history`,
}

func init() {
	SettingsCmd.AddCommand(settingsShowCmd)
	SettingsCmd.AddCommand(settingsSetCmd)
	SettingsCmd.AddCommand(settingsExportCmd)
	SettingsCmd.AddCommand(settingsHistoryCmd)
	SettingsCmd.AddCommand(settingsPathCmd)
}
