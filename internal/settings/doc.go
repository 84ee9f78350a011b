// Package settings is the single source of truth for user-configurable
// behavior in KouChat.
//
// A Store is created once at startup with New and passed to everything that
// needs it. It generates the user's identity, applies defaults, and loads
// the settings file (~/.kouchat/kouchat.ini). Changes are only written back
// when Save is called.
//
// # Persisted Settings
//
// Each Setting has a stable key in the file:
//
//	nick_name, own_color, sys_color, logging, sound,
//	browser, smileys, look_and_feel, balloons, network_interface
//
// Loading never fails. A missing file means defaults, and a value that does
// not parse keeps the default for that one setting. Booleans are lenient:
// anything but "true" is false. Sound and smileys default to true and are
// only turned off by an explicit value in the file.
//
// # Startup Arguments
//
// NoPrivateChat, AlwaysLog and LogLocation come from command line flags.
// They are never loaded or saved. AlwaysLog wins over the saved logging
// setting, but Save still writes the saved value.
//
// # Listeners
//
// AddListener registers a callback that is told which setting changed.
// It returns a Subscription; call Unsubscribe to stop listening.
// Only SetLogging notifies listeners, and only when the value changes.
package settings
