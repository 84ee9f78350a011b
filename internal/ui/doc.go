// Package ui provides semantic text formatting and user-facing error
// reporting for the KouChat command line.
//
// # Semantic Formatters
//
//	ui.Key.Sprint("nick_name")          // Setting keys
//	ui.Value.Sprint("Jane")             // Setting values
//	ui.Path.Sprint("~/.kouchat")        // File paths
//	ui.Code.Sprint("kouchat settings")  // Commands
//	ui.Success.Sprint("✓")
//	ui.Error.Sprint("✗")
//
// Colors are disabled when NO_COLOR is set or the terminal does not support
// them. Formatters then fall back to text decorations: Code uses backticks,
// Value uses single quotes and Muted uses parentheses.
//
// # Error Reporting
//
// ErrorReporter is the surface the settings store uses to tell the user that
// something went wrong, such as a failed save. ConsoleReporter prints the
// message to stderr.
package ui
