package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
	"github.com/PolarWolf314/kouchat/internal/utils"
)

const fileHeader = "KouChat Settings"

// load reads the settings file. Values missing from the file keep their
// defaults, and a value that can not be parsed only affects its own setting.
func (s *Store) load() {
	path := s.paths.SettingsFile

	values, err := s.codec.Load(path)
	if err != nil {
		if errors.Is(err, kerrors.ErrSettingsNotFound) {
			s.log.Infof("Could not find %s, using default settings", path)
			return
		}
		s.log.Errorf("Failed to load settings from %s: %v", path, err)
		return
	}

	s.log.Debugf("Loaded %d values from %s", len(values), path)
	s.apply(values)
}

func (s *Store) apply(values map[string]string) {
	if nick, ok := values[NickName.Key()]; ok {
		nick = strings.TrimSpace(nick)
		if utils.IsValidNick(nick) {
			s.me.Nick = nick
		} else {
			s.log.Debugf("Ignoring invalid nick name %q from settings file", nick)
		}
	}

	if color, err := parseColor(values, OwnColor); err != nil {
		s.log.Warnf("Could not read setting for own color: %v", err)
	} else if color != nil {
		s.ownColor = *color
	}

	if color, err := parseColor(values, SysColor); err != nil {
		s.log.Warnf("Could not read setting for system color: %v", err)
	} else if color != nil {
		s.sysColor = *color
	}

	s.logging = parseLenientBool(values[Logging.Key()])
	s.balloons = parseLenientBool(values[Balloons.Key()])
	s.browser = values[Browser.Key()]
	s.lookAndFeel = values[LookAndFeel.Key()]
	s.networkInterface = values[NetworkInterface.Key()]

	// Sound and smileys default to true, so only a value in the file can turn them off.
	if v, ok := values[Sound.Key()]; ok {
		s.sound = parseLenientBool(v)
	}
	if v, ok := values[Smileys.Key()]; ok {
		s.smileys = parseLenientBool(v)
	}
}

// parseColor returns nil without error when the key is absent.
func parseColor(values map[string]string, setting Setting) (*int, error) {
	raw, ok := values[setting.Key()]
	if !ok {
		return nil, nil
	}

	color, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, &kerrors.MalformedValueError{Key: setting.Key(), Value: raw, Err: err}
	}
	return &color, nil
}

// parseLenientBool is true only for "true" in any case. Everything else,
// including garbage and the empty string, is false.
func parseLenientBool(value string) bool {
	return strings.EqualFold(value, "true")
}

// Save writes the settings to the settings file, creating the application
// folder if needed. Startup arguments are not saved.
//
// A failure is logged and shown to the user through the error reporter, and
// returned so the caller can decide on an exit code. The settings in memory
// are unaffected either way.
func (s *Store) Save() error {
	path := s.paths.SettingsFile

	if err := s.ensureFolder(s.paths.AppFolder); err != nil {
		return s.saveFailed(err)
	}

	if err := s.codec.Save(path, s.values(), fileHeader); err != nil {
		return s.saveFailed(err)
	}

	s.log.Debugf("Saved settings to %s", path)
	return nil
}

func (s *Store) saveFailed(err error) error {
	if !errors.Is(err, kerrors.ErrIOFailure) {
		err = fmt.Errorf("%w: %w", kerrors.ErrIOFailure, err)
	}

	s.log.Errorf("Failed to save settings: %v", err)
	s.reporter.ReportError("Settings could not be saved:\n " + err.Error())

	return fmt.Errorf("saving settings: %w", err)
}

// values returns the persisted settings as they are written to file.
func (s *Store) values() map[string]string {
	values := make(map[string]string, len(settingKeys))
	for _, setting := range All() {
		values[setting.Key()] = s.Value(setting)
	}
	return values
}
