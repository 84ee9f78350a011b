package settings

import (
	"fmt"

	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
)

// Setting identifies one persisted setting.
type Setting int

const (
	NickName Setting = iota
	OwnColor
	SysColor
	Logging
	Sound
	Browser
	Smileys
	LookAndFeel
	Balloons
	NetworkInterface
)

// The keys are part of the file format and must never be renamed.
var settingKeys = [...]string{
	NickName:         "nick_name",
	OwnColor:         "own_color",
	SysColor:         "sys_color",
	Logging:          "logging",
	Sound:            "sound",
	Browser:          "browser",
	Smileys:          "smileys",
	LookAndFeel:      "look_and_feel",
	Balloons:         "balloons",
	NetworkInterface: "network_interface",
}

var settingNames = [...]string{
	NickName:         "nick name",
	OwnColor:         "own message color",
	SysColor:         "system message color",
	Logging:          "logging",
	Sound:            "sound",
	Browser:          "browser",
	Smileys:          "smileys",
	LookAndFeel:      "look and feel",
	Balloons:         "balloon notifications",
	NetworkInterface: "network interface",
}

// Key returns the key the setting is stored under in the settings file.
func (s Setting) Key() string {
	if !s.valid() {
		return ""
	}
	return settingKeys[s]
}

// String returns a human readable name.
func (s Setting) String() string {
	if !s.valid() {
		return fmt.Sprintf("Setting(%d)", int(s))
	}
	return settingNames[s]
}

func (s Setting) valid() bool {
	return s >= NickName && s <= NetworkInterface
}

// All returns every setting in file order.
func All() []Setting {
	all := make([]Setting, 0, len(settingKeys))
	for s := NickName; s <= NetworkInterface; s++ {
		all = append(all, s)
	}
	return all
}

// ParseSetting looks up a setting by its file key.
func ParseSetting(key string) (Setting, error) {
	for _, s := range All() {
		if s.Key() == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", key, kerrors.ErrUnknownSetting)
}
