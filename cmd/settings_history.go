package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PolarWolf314/kouchat/internal/audit"
	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
	"github.com/PolarWolf314/kouchat/internal/ui"
	"github.com/PolarWolf314/kouchat/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	historyLimit   int
	historyReverse bool
	historyKey     string
	historyJSON    bool
)

func init() {
	settingsHistoryCmd.Flags().IntVarP(&historyLimit, "number", "n", 0, "limit number of entries shown")
	settingsHistoryCmd.Flags().BoolVar(&historyReverse, "reverse", false, "show most recent entries first")
	settingsHistoryCmd.Flags().StringVar(&historyKey, "key", "", "only show changes to this setting")
	settingsHistoryCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON array")
}

// resetHistoryCommandState resets the history command's global state for testing.
func resetHistoryCommandState() {
	historyLimit = 0
	historyReverse = false
	historyKey = ""
	historyJSON = false
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "View the settings change history",
	Long: `Displays the changes made with kouchat settings set, and the exports.

Examples:
  kouchat settings history                  # View all changes
  kouchat settings history -n 10            # Last 10 entries
  kouchat settings history --reverse        # Most recent first
  kouchat settings history --key nick_name  # Only nick name changes
  kouchat settings history --json           # JSON output`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting settings history command")

	store, err := storeFrom(cmd.Context())
	if err != nil {
		return err
	}

	result, err := workflows.History(cmd.Context(), store, workflows.HistoryOptions{
		Limit:   historyLimit,
		Reverse: historyReverse,
		Key:     historyKey,
	})
	if err != nil {
		fmt.Println(formatHistoryError(err))
		if isHistoryUnexpectedError(err) {
			return err
		}
		return nil
	}

	Logger.Debugf("Parsed %d entries from history", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		fmt.Println("No changes found matching the filters.")
		return nil
	}

	if historyJSON {
		return outputHistoryJSON(result.Entries)
	}

	outputHistoryDefault(result.Entries)
	return nil
}

// formatHistoryError formats a history error for display to the user.
func formatHistoryError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrNoHistory):
		return ui.Info.Sprint("ℹ") + " No settings history found. Changes are recorded by " + ui.Code.Sprint("kouchat settings set") + "."

	case errors.Is(err, kerrors.ErrUnknownSetting):
		return ui.Error.Sprint("✗") + " " + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Failed to read settings history: " + err.Error()
	}
}

// isHistoryUnexpectedError returns true if the error is unexpected and should cause a non-zero exit.
func isHistoryUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, kerrors.ErrNoHistory),
		errors.Is(err, kerrors.ErrUnknownSetting):
		return false
	default:
		return true
	}
}

func outputHistoryJSON(entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func outputHistoryDefault(entries []audit.Entry) {
	for _, e := range entries {
		fmt.Printf("%-19s  %-10s  %-6s  %s\n", formatTimestamp(e.Timestamp), e.User, e.Operation, historyDetails(e))
	}
}

func historyDetails(e audit.Entry) string {
	switch e.Operation {
	case audit.OpSet:
		return fmt.Sprintf("%s: %q -> %q", e.Key, e.Old, e.New)
	case audit.OpExport:
		return e.OutputPath
	}
	return ""
}

// formatTimestamp shows a journal timestamp in local time. Unparseable
// timestamps are shown as they are.
func formatTimestamp(ts string) string {
	t, err := time.Parse(audit.TimestampFormat, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
