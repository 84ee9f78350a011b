package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where settings and logs are stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storeFrom(cmd.Context())
		if err != nil {
			return err
		}

		paths := store.Paths()
		fmt.Printf("%-14s %s\n", "settings:", paths.SettingsFile)
		fmt.Printf("%-14s %s\n", "logs:", store.LogLocation())
		fmt.Printf("%-14s %s\n", "history:", paths.HistoryFile())
		return nil
	},
}
