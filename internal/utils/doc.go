// Package utils provides small helpers shared across KouChat.
//
// # System Utilities
//
//   - GetUsername: the name of the user logged in to the operating system
//   - GetOperatingSystem: display name of the running operating system
//
// # String Utilities
//
//   - IsValidNick: the nick name rules used on the network
//   - Shorten, CapitalizeFirstLetter: building default nick names
//   - AppendSeparator: normalizing folder paths
//
// # Filesystem Utilities
//
//   - EnsureFolder: creates the application folder before settings are saved
//
// # Terminal Utilities
//
//   - IsTerminal, TerminalWidth: decide if decorative output is worth printing
package utils
