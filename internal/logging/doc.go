// Package logger provides leveled logging for KouChat.
//
// Output is prefixed with the level in color ([info], [debug], [warn],
// [error]). Verbosity is controlled by the --verbose and --debug flags.
//
// # Verbosity Levels
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Always shown, also returned as an error
//
// # Usage
//
// The root command builds one logger in its PersistentPreRunE and hands it
// to the settings store and the workflows:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	store := settings.New(paths, settings.WithLogger(log))
//
// Tests capture output by setting Out and Err to a bytes.Buffer.
package logger
