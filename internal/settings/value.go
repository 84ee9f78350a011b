package settings

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
)

// Value returns the setting formatted the way it is written to the settings file.
func (s *Store) Value(setting Setting) string {
	switch setting {
	case NickName:
		return s.me.Nick
	case OwnColor:
		return strconv.Itoa(s.ownColor)
	case SysColor:
		return strconv.Itoa(s.sysColor)
	case Logging:
		return strconv.FormatBool(s.logging)
	case Sound:
		return strconv.FormatBool(s.sound)
	case Browser:
		return s.browser
	case Smileys:
		return strconv.FormatBool(s.smileys)
	case LookAndFeel:
		return s.lookAndFeel
	case Balloons:
		return strconv.FormatBool(s.balloons)
	case NetworkInterface:
		return s.networkInterface
	}
	return ""
}

// SetValue parses raw into the type of setting and applies it through the
// matching setter. Unlike the settings file, booleans must be spelled out:
// a value like "yes" is rejected instead of being read as false.
//
// The store is unchanged when an error is returned. Nothing is saved.
func (s *Store) SetValue(setting Setting, raw string) error {
	switch setting {
	case NickName:
		return s.SetNickName(raw)
	case OwnColor, SysColor:
		color, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return &kerrors.MalformedValueError{Key: setting.Key(), Value: raw, Err: err}
		}
		if setting == OwnColor {
			s.SetOwnColor(color)
		} else {
			s.SetSysColor(color)
		}
	case Logging, Sound, Smileys, Balloons:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return &kerrors.MalformedValueError{Key: setting.Key(), Value: raw, Err: err}
		}
		switch setting {
		case Logging:
			s.SetLogging(b)
		case Sound:
			s.SetSound(b)
		case Smileys:
			s.SetSmileys(b)
		case Balloons:
			s.SetBalloons(b)
		}
	case Browser:
		s.SetBrowser(raw)
	case LookAndFeel:
		s.SetLookAndFeel(raw)
	case NetworkInterface:
		s.SetNetworkInterface(strings.TrimSpace(raw))
	default:
		return fmt.Errorf("%s: %w", setting, kerrors.ErrUnknownSetting)
	}
	return nil
}
