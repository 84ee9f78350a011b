package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PolarWolf314/kouchat/internal/configs"
	"github.com/PolarWolf314/kouchat/internal/settings"
	"github.com/PolarWolf314/kouchat/internal/ui"
	"github.com/PolarWolf314/kouchat/internal/workflows"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	showJSON bool
	showTOML bool
)

func init() {
	settingsShowCmd.Flags().BoolVar(&showJSON, "json", false, "output in JSON format")
	settingsShowCmd.Flags().BoolVar(&showTOML, "toml", false, "output in TOML format")
	settingsShowCmd.MarkFlagsMutuallyExclusive("json", "toml")
}

// resetShowCommandState resets the show command's global state for testing.
func resetShowCommandState() {
	showJSON = false
	showTOML = false
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current settings",
	Long: `Displays the saved settings, and the startup arguments given for this run.

Examples:
  # Show settings
  kouchat settings show

  # Show the settings in effect with --always-log
  kouchat settings show --always-log

  # Output in JSON or TOML format
  kouchat settings show --json
  kouchat settings show --toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting settings show command")
		Logger.Debugf("Flags: json=%t, toml=%t", showJSON, showTOML)

		store, err := storeFrom(cmd.Context())
		if err != nil {
			return err
		}

		result, err := workflows.Show(cmd.Context(), store, workflows.ShowOptions{})
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read settings: %v", err)
		}

		switch {
		case showJSON:
			output, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal settings to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		case showTOML:
			if err := configs.EncodeTOML(os.Stdout, result); err != nil {
				return Logger.ErrorfAndReturn("Failed to encode settings as TOML: %v", err)
			}
			return nil
		}

		outputShowText(result)
		return nil
	},
}

func outputShowText(result *workflows.ShowResult) {
	s := result.Settings

	fmt.Println(color.CyanString("Settings") + " " + ui.Muted.Sprint(result.SettingsFile) + ":")
	fmt.Println()
	printSetting(settings.NickName, s.NickName, "")
	printSetting(settings.OwnColor, fmt.Sprint(s.OwnColor), "")
	printSetting(settings.SysColor, fmt.Sprint(s.SysColor), "")

	loggingNote := ""
	if result.Startup.AlwaysLog && !s.Logging {
		loggingNote = ui.Warning.Sprint("on for this run, --always-log")
	}
	printSetting(settings.Logging, fmt.Sprint(s.Logging), loggingNote)
	printSetting(settings.Sound, fmt.Sprint(s.Sound), "")
	printSetting(settings.Smileys, fmt.Sprint(s.Smileys), "")
	printSetting(settings.Balloons, fmt.Sprint(s.Balloons), "")
	printSetting(settings.Browser, s.Browser, defaultNote(s.Browser, "system default"))
	printSetting(settings.LookAndFeel, s.LookAndFeel, defaultNote(s.LookAndFeel, "system default"))
	printSetting(settings.NetworkInterface, s.NetworkInterface, defaultNote(s.NetworkInterface, "automatic"))

	fmt.Println()
	fmt.Printf("  %-19s %s\n", "log folder", ui.Path.Sprint(result.LogLocation))
	if result.Startup.NoPrivateChat {
		fmt.Printf("  %-19s %s\n", "private chat", ui.Warning.Sprint("off for this run, --no-private-chat"))
	}
}

func printSetting(setting settings.Setting, value, note string) {
	line := fmt.Sprintf("  %-19s %s", ui.Key.Sprint(setting.Key()), ui.Value.Sprint(value))
	if note != "" {
		line += " " + ui.Muted.Sprint(note)
	}
	fmt.Println(line)
}

func defaultNote(value, note string) string {
	if value == "" {
		return note
	}
	return ""
}
