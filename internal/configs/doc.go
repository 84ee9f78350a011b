// Package configs knows where KouChat keeps its files.
//
// Everything lives in one application folder in the user's home directory:
//
//   - ~/.kouchat/kouchat.ini: persisted settings (see the settings package)
//   - ~/.kouchat/logs/: default folder for chat logs
//   - ~/.kouchat/history.jsonl: journal of changes made from the command line
//
// DefaultPaths resolves these once at startup. The result is passed to the
// settings store and the workflows; nothing in this package is global state.
//
// # TOML
//
// SaveTOML and EncodeTOML write settings snapshots for `kouchat settings
// export` and `kouchat settings show --toml`. The settings file itself is not
// TOML.
package configs
