// Package workflows provides the operations behind the settings commands.
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else: validating input against the store,
// saving the settings file and recording journal entries.
//
// # Available Workflows
//
//   - Show: Collects the settings in effect, with startup arguments and identity
//   - Set: Changes one setting from a string and saves it
//   - Export: Writes the persisted settings to a TOML file
//   - History: Reads the settings change journal
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, so the CLI
// can pick a message without string matching:
//
//	result, err := workflows.Set(ctx, store, opts)
//	if errors.Is(err, kerrors.ErrMalformedValue) {
//	    // Tell the user which format the value needs
//	}
//
// # Store
//
// Every workflow takes the *settings.Store created at startup. There is no
// package level store.
package workflows
