package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/kouchat/internal/audit"
	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
	"github.com/PolarWolf314/kouchat/internal/settings"
)

// startupOnly lists keys that look like settings but can only be given as
// startup arguments.
var startupOnly = map[string]string{
	"no_private_chat": "--no-private-chat",
	"always_log":      "--always-log",
	"log_location":    "--log-location",
}

// SetOptions configures the set workflow.
type SetOptions struct {
	// Key is the settings file key, like "own_color".
	Key string

	// Value is the new value as typed by the user.
	Value string
}

// SetResult contains the outcome of a set operation.
type SetResult struct {
	Setting settings.Setting

	// Old and New are formatted as in the settings file.
	Old string
	New string

	// Changed is false when the setting already had the new value.
	// The settings are saved either way.
	Changed bool
}

// Set changes one setting, saves the settings file and records the change in
// the journal.
//
// Returns ErrUnknownSetting if the key is not a setting.
// Returns ErrReadOnlySetting if the key can only be given as a startup argument.
// Returns ErrMalformedValue or ErrInvalidNick if the value is rejected.
// Returns ErrIOFailure if the settings file could not be saved.
func Set(ctx context.Context, store *settings.Store, opts SetOptions) (*SetResult, error) {
	if flag, ok := startupOnly[opts.Key]; ok {
		return nil, fmt.Errorf("%s, use %s: %w", opts.Key, flag, kerrors.ErrReadOnlySetting)
	}

	setting, err := settings.ParseSetting(opts.Key)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	old := store.Value(setting)
	if err := store.SetValue(setting, opts.Value); err != nil {
		return nil, fmt.Errorf("setting %s: %w", setting.Key(), err)
	}
	result := &SetResult{
		Setting: setting,
		Old:     old,
		New:     store.Value(setting),
	}
	result.Changed = result.Old != result.New

	if err := store.Save(); err != nil {
		return nil, err
	}

	if result.Changed {
		me := store.Me()
		audit.Log(store.Paths().HistoryFile(), audit.Entry{
			User:      me.Nick,
			Code:      me.Code(),
			Operation: audit.OpSet,
			Key:       setting.Key(),
			Old:       result.Old,
			New:       result.New,
		})
	}

	return result, nil
}
