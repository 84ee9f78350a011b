package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/kouchat/internal/configs"
	logger "github.com/PolarWolf314/kouchat/internal/logging"
	"github.com/PolarWolf314/kouchat/internal/settings"
	"github.com/PolarWolf314/kouchat/internal/ui"
	"github.com/PolarWolf314/kouchat/internal/utils"
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultClient = "Console"
	bannerWidth   = 60
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	noPrivateChat bool
	alwaysLog     bool
	logLocation   string
	client        string

	// RootCmd is the kouchat command.
	RootCmd = &cobra.Command{
		Use:   "kouchat",
		Short: "KouChat - serverless chat for the local network",
		Long: `KouChat is a chat for the local network that needs no server.

The startup arguments only apply to this run and are never saved:
  --always-log       log all chats, even when logging is turned off
  --log-location     write chat logs to this folder
  --no-private-chat  turn off private chat

Use the settings commands to view and change the saved settings.

Usage:
  kouchat [flags]
  kouchat settings <command> [flags]`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFrom(cmd.Context())
			if err != nil {
				return err
			}

			if width := utils.TerminalWidth(os.Stdout); width >= bannerWidth {
				fmt.Println()
				banner := figure.NewColorFigure(configs.AppName, "standard", "green", true)
				banner.Print()
				fmt.Println()
			}

			printIdentity(store)
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().BoolVar(&noPrivateChat, "no-private-chat", false, "turn off private chat for this run")
	RootCmd.PersistentFlags().BoolVar(&alwaysLog, "always-log", false, "log all chats for this run, regardless of the logging setting")
	RootCmd.PersistentFlags().StringVar(&logLocation, "log-location", "", "folder to write chat logs to for this run")
	RootCmd.PersistentFlags().StringVar(&client, "client", defaultClient, "client name reported to other users")

	RootCmd.AddCommand(SettingsCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// initStore loads the settings for this run and hands them to the command
// through its context.
func initStore(cmd *cobra.Command, args []string) error {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)

	paths, err := configs.DefaultPaths()
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to find the settings folder: %v", err)
	}
	Logger.Debugf("Settings file: %s", paths.SettingsFile)

	store := settings.New(paths,
		settings.WithLogger(Logger),
		settings.WithReporter(ui.ConsoleReporter{W: cmd.ErrOrStderr()}),
	)

	store.SetNoPrivateChat(noPrivateChat)
	store.SetAlwaysLog(alwaysLog)
	store.SetLogLocation(logLocation)
	store.SetClient(client)

	store.AddListener(func(setting settings.Setting) {
		Logger.Infof("Setting %s changed", ui.Key.Sprint(setting.Key()))
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withStore(ctx, store))

	return nil
}

type storeKey struct{}

func withStore(ctx context.Context, store *settings.Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

func storeFrom(ctx context.Context) (*settings.Store, error) {
	if ctx != nil {
		if store, ok := ctx.Value(storeKey{}).(*settings.Store); ok {
			return store, nil
		}
	}
	return nil, fmt.Errorf("settings have not been loaded")
}

func printIdentity(store *settings.Store) {
	me := store.Me()

	fmt.Printf("%s Logged on as %s %s\n", color.GreenString("✓"), ui.Value.Sprint(me.Nick), ui.Muted.Sprintf("code %d", me.Code()))
	fmt.Printf("  %-14s %s\n", "Client:", me.Client)
	fmt.Printf("  %-14s %s\n", "System:", me.OperatingSystem)

	if store.Logging() {
		fmt.Printf("  %-14s %s\n", "Logging to:", ui.Path.Sprint(store.LogLocation()))
	}
	if store.NoPrivateChat() {
		fmt.Printf("  %-14s %s\n", "Private chat:", ui.Warning.Sprint("off"))
	}

	fmt.Println()
	fmt.Println(color.CyanString("→") + " Run " + ui.Code.Sprint("kouchat settings show") + " to see your settings")
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	noPrivateChat = false
	alwaysLog = false
	logLocation = ""
	client = defaultClient
	Logger = logger.Logger{}

	resetShowCommandState()
	resetExportCommandState()
	resetHistoryCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the changed marker of every flag to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)

	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}
