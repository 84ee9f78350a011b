package cmd

import (
	"errors"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
	"github.com/PolarWolf314/kouchat/internal/settings"
	"github.com/PolarWolf314/kouchat/internal/ui"
	"github.com/PolarWolf314/kouchat/internal/workflows"
	"github.com/spf13/cobra"
)

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a saved setting",
	Long: `Changes one setting and saves it to the settings file.

Keys:
  nick_name          your nick, up to 10 letters, digits, - or _
  own_color          color of your own messages, as a packed RGB integer
  sys_color          color of system messages, as a packed RGB integer
  logging            true or false
  sound              true or false
  smileys            true or false
  balloons           true or false
  browser            command used to open links, empty for the system default
  look_and_feel      name of the look and feel
  network_interface  name of the network interface, empty to choose automatically

Examples:
  kouchat settings set nick_name Jane
  kouchat settings set sound false
  kouchat settings set browser ""`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting settings set command")
		Logger.Debugf("Args: key=%s, value=%q", args[0], args[1])

		store, err := storeFrom(cmd.Context())
		if err != nil {
			return err
		}

		result, err := workflows.Set(cmd.Context(), store, workflows.SetOptions{
			Key:   args[0],
			Value: args[1],
		})
		if err != nil {
			// Save failures are already shown by the store.
			if !errors.Is(err, kerrors.ErrIOFailure) {
				fmt.Println(ui.Error.Sprint("✗") + " " + formatSetError(args[0], args[1], err))
			}
			if isSetUnexpectedError(err) {
				return err
			}
			return nil
		}

		if !result.Changed {
			fmt.Println(ui.Info.Sprint("ℹ") + " " + ui.Key.Sprint(result.Setting.Key()) + " is already " + ui.Value.Sprint(result.New))
			return nil
		}

		fmt.Println(ui.Success.Sprint("✓") + " Changed " + ui.Key.Sprint(result.Setting.Key()) +
			" from " + ui.Value.Sprint(result.Old) + " to " + ui.Value.Sprint(result.New))
		return nil
	},
}

// formatSetError formats a set error for display to the user.
func formatSetError(key, value string, err error) string {
	switch {
	case errors.Is(err, kerrors.ErrUnknownSetting):
		return "Unknown setting " + ui.Key.Sprint(key) + "\n" +
			ui.Info.Sprint("→") + " Known settings: " + knownKeys()

	case errors.Is(err, kerrors.ErrReadOnlySetting):
		return ui.Key.Sprint(key) + " can only be given as a startup argument\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("kouchat --help") + " to see the startup arguments"

	case errors.Is(err, kerrors.ErrInvalidNick):
		return ui.Value.Sprint(value) + " is not a valid nick name\n" +
			ui.Info.Sprint("→") + " Use up to 10 letters, digits, - or _"

	case errors.Is(err, kerrors.ErrMalformedValue):
		return ui.Value.Sprint(value) + " is not a valid value for " + ui.Key.Sprint(key) + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("kouchat settings set --help") + " to see the accepted values"

	default:
		return "Failed to change " + key + ": " + err.Error()
	}
}

// isSetUnexpectedError returns true if the error is unexpected and should cause a non-zero exit.
func isSetUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, kerrors.ErrUnknownSetting),
		errors.Is(err, kerrors.ErrReadOnlySetting),
		errors.Is(err, kerrors.ErrInvalidNick),
		errors.Is(err, kerrors.ErrMalformedValue):
		return false
	default:
		return true
	}
}

func knownKeys() string {
	keys := make([]string, 0, len(settings.All()))
	for _, s := range settings.All() {
		keys = append(keys, s.Key())
	}
	return strings.Join(keys, ", ")
}
