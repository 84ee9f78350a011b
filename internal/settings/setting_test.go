package settings

import (
	"errors"
	"testing"

	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
)

func TestSettingKeysAreStable(t *testing.T) {
	want := []string{
		"nick_name", "own_color", "sys_color", "logging", "sound",
		"browser", "smileys", "look_and_feel", "balloons", "network_interface",
	}

	all := All()
	if len(all) != len(want) {
		t.Fatalf("Expected %d settings, got %d", len(want), len(all))
	}
	for i, s := range all {
		if s.Key() != want[i] {
			t.Errorf("setting %d: expected key %q, got %q", i, want[i], s.Key())
		}
	}
}

func TestParseSetting(t *testing.T) {
	s, err := ParseSetting("look_and_feel")
	if err != nil {
		t.Fatalf("ParseSetting failed: %v", err)
	}
	if s != LookAndFeel {
		t.Errorf("Expected LookAndFeel, got %v", s)
	}

	_, err = ParseSetting("always_log")
	if !errors.Is(err, kerrors.ErrUnknownSetting) {
		t.Errorf("Expected ErrUnknownSetting, got %v", err)
	}
}

func TestSettingString(t *testing.T) {
	if Logging.String() != "logging" {
		t.Errorf("unexpected name %q", Logging.String())
	}
	if Setting(99).String() != "Setting(99)" {
		t.Errorf("unexpected name %q", Setting(99).String())
	}
	if Setting(99).Key() != "" {
		t.Error("unknown setting must have no key")
	}
}
