package settings

import (
	"errors"
	"testing"

	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
)

func TestSetValue(t *testing.T) {
	tests := []struct {
		name    string
		setting Setting
		raw     string
		want    string
	}{
		{"Nick", NickName, " Testing ", "Testing"},
		{"OwnColor", OwnColor, "42", "42"},
		{"SysColorNegative", SysColor, "-1", "-1"},
		{"LoggingOn", Logging, "true", "true"},
		{"SoundOff", Sound, "0", "false"},
		{"SmileysOff", Smileys, "FALSE", "false"},
		{"BalloonsOn", Balloons, "T", "true"},
		{"Browser", Browser, "firefox %s", "firefox %s"},
		{"LookAndFeel", LookAndFeel, "GTK+", "GTK+"},
		{"NetworkInterface", NetworkInterface, " eth0 ", "eth0"},
		{"NetworkInterfaceAuto", NetworkInterface, "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			s := env.newStore("jane")

			if err := s.SetValue(tc.setting, tc.raw); err != nil {
				t.Fatalf("SetValue failed: %v", err)
			}
			if got := s.Value(tc.setting); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSetValueRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		setting Setting
		raw     string
		want    error
	}{
		{"Color", OwnColor, "red", kerrors.ErrMalformedValue},
		{"Bool", Sound, "yes", kerrors.ErrMalformedValue},
		{"Nick", NickName, "two words", kerrors.ErrInvalidNick},
		{"NickTooLong", NickName, "abcdefghijk", kerrors.ErrInvalidNick},
		{"Unknown", Setting(42), "x", kerrors.ErrUnknownSetting},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			s := env.newStore("jane")
			before := s.values()

			err := s.SetValue(tc.setting, tc.raw)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Expected %v, got %v", tc.want, err)
			}

			after := s.values()
			for k, v := range before {
				if after[k] != v {
					t.Errorf("%s changed from %q to %q", k, v, after[k])
				}
			}
		})
	}
}

func TestSetValueLoggingNotifies(t *testing.T) {
	env := newTestEnv(t)
	s := env.newStore("jane")

	calls := 0
	s.AddListener(func(Setting) { calls++ })

	if err := s.SetValue(Logging, "true"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetValue(Sound, "false"); err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Errorf("Expected one notification, got %d", calls)
	}
}
