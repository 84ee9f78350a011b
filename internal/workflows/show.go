package workflows

import (
	"context"

	"github.com/PolarWolf314/kouchat/internal/settings"
)

// Snapshot holds the persisted settings, as they are saved to the settings file.
type Snapshot struct {
	NickName         string `toml:"nick_name" json:"nick_name"`
	OwnColor         int    `toml:"own_color" json:"own_color"`
	SysColor         int    `toml:"sys_color" json:"sys_color"`
	Logging          bool   `toml:"logging" json:"logging"`
	Sound            bool   `toml:"sound" json:"sound"`
	Browser          string `toml:"browser" json:"browser"`
	Smileys          bool   `toml:"smileys" json:"smileys"`
	LookAndFeel      string `toml:"look_and_feel" json:"look_and_feel"`
	Balloons         bool   `toml:"balloons" json:"balloons"`
	NetworkInterface string `toml:"network_interface" json:"network_interface"`
}

// StartupArguments holds the values given on the command line for this run only.
type StartupArguments struct {
	NoPrivateChat bool   `toml:"no_private_chat" json:"no_private_chat"`
	AlwaysLog     bool   `toml:"always_log" json:"always_log"`
	LogLocation   string `toml:"log_location" json:"log_location"`
}

// Identity describes the user as announced to other clients.
type Identity struct {
	Nick            string `toml:"nick" json:"nick"`
	Code            int    `toml:"code" json:"code"`
	OperatingSystem string `toml:"operating_system" json:"operating_system"`
	Client          string `toml:"client" json:"client"`
}

// ShowOptions configures the show workflow.
type ShowOptions struct {
	// No options currently needed - included for consistency.
}

// ShowResult contains the settings in effect for this run.
type ShowResult struct {
	// EffectiveLogging is true when chats are logged, either because of the
	// logging setting or because of --always-log.
	EffectiveLogging bool `toml:"effective_logging" json:"effective_logging"`

	// LogLocation is the folder chat logs are written to.
	LogLocation string `toml:"log_location" json:"log_location"`

	// SettingsFile is the path of the settings file.
	SettingsFile string `toml:"settings_file" json:"settings_file"`

	Identity Identity         `toml:"identity" json:"identity"`
	Settings Snapshot         `toml:"settings" json:"settings"`
	Startup  StartupArguments `toml:"startup" json:"startup"`
}

// Show collects the current settings of store.
func Show(ctx context.Context, store *settings.Store, opts ShowOptions) (*ShowResult, error) {
	me := store.Me()

	return &ShowResult{
		EffectiveLogging: store.Logging(),
		LogLocation:      store.LogLocation(),
		SettingsFile:     store.Paths().SettingsFile,
		Identity: Identity{
			Nick:            me.Nick,
			Code:            me.Code(),
			OperatingSystem: me.OperatingSystem,
			Client:          me.Client,
		},
		Settings: TakeSnapshot(store),
		Startup: StartupArguments{
			NoPrivateChat: store.NoPrivateChat(),
			AlwaysLog:     store.AlwaysLog(),
			LogLocation:   store.LogLocationArgument(),
		},
	}, nil
}

// TakeSnapshot copies the persisted settings out of store.
// Logging is the saved value, not the effective one.
func TakeSnapshot(store *settings.Store) Snapshot {
	return Snapshot{
		NickName:         store.Me().Nick,
		OwnColor:         store.OwnColor(),
		SysColor:         store.SysColor(),
		Logging:          store.StoredLogging(),
		Sound:            store.Sound(),
		Browser:          store.Browser(),
		Smileys:          store.Smileys(),
		LookAndFeel:      store.LookAndFeel(),
		Balloons:         store.Balloons(),
		NetworkInterface: store.NetworkInterface(),
	}
}
