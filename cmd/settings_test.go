package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func showJSONResult(t *testing.T, args ...string) map[string]any {
	t.Helper()

	output, err := runCLI(t, append(args, "settings", "show", "--json")...)
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, output)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("show --json printed invalid JSON: %v\n%s", err, output)
	}
	return result
}

func TestSettingsSet(t *testing.T) {
	home := setupTestHome(t)

	output, err := runCLI(t, "settings", "set", "sound", "false")
	if err != nil {
		t.Fatalf("set failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Changed sound from 'true' to 'false'") {
		t.Errorf("unexpected output:\n%s", output)
	}
	if !fileExists(settingsFile(home)) {
		t.Fatal("Expected the settings file to be written")
	}

	result := showJSONResult(t)
	s := result["settings"].(map[string]any)
	if s["sound"] != false {
		t.Errorf("Expected sound false after reload, got %v", s["sound"])
	}
}

func TestSettingsSet_Unchanged(t *testing.T) {
	setupTestHome(t)

	output, err := runCLI(t, "settings", "set", "smileys", "true")
	if err != nil {
		t.Fatalf("set failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "smileys is already 'true'") {
		t.Errorf("unexpected output:\n%s", output)
	}
}

func TestSettingsSet_UserErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"UnknownKey", []string{"volume", "11"}, "Unknown setting volume"},
		{"StartupOnly", []string{"always_log", "true"}, "can only be given as a startup argument"},
		{"BadNick", []string{"nick_name", "not valid"}, "is not a valid nick name"},
		{"BadColor", []string{"own_color", "red"}, "is not a valid value for own_color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := setupTestHome(t)

			output, err := runCLI(t, append([]string{"settings", "set"}, tc.args...)...)
			if err != nil {
				t.Fatalf("Expected user errors to exit cleanly, got %v", err)
			}
			if !strings.Contains(output, tc.want) {
				t.Errorf("Expected %q in output, got:\n%s", tc.want, output)
			}
			if fileExists(settingsFile(home)) {
				t.Error("Nothing should be saved for a rejected value")
			}
		})
	}
}

func TestSettingsSet_WrongArgCount(t *testing.T) {
	setupTestHome(t)

	if _, err := runCLI(t, "settings", "set", "sound"); err == nil {
		t.Error("Expected an error with one argument")
	}
}

func TestSettingsShow_AlwaysLog(t *testing.T) {
	setupTestHome(t)

	result := showJSONResult(t, "--always-log")

	if result["effective_logging"] != true {
		t.Errorf("Expected effective logging with --always-log, got %v", result["effective_logging"])
	}
	s := result["settings"].(map[string]any)
	if s["logging"] != false {
		t.Errorf("Expected saved logging to stay false, got %v", s["logging"])
	}
	startup := result["startup"].(map[string]any)
	if startup["always_log"] != true {
		t.Errorf("Expected always_log startup argument, got %v", startup["always_log"])
	}
}

func TestSettingsShow_AlwaysLogIsNotSaved(t *testing.T) {
	setupTestHome(t)

	if output, err := runCLI(t, "--always-log", "settings", "set", "sound", "false"); err != nil {
		t.Fatalf("set failed: %v\n%s", err, output)
	}

	result := showJSONResult(t)
	if result["effective_logging"] != false {
		t.Error("--always-log must not be saved")
	}
}

func TestSettingsShow_Text(t *testing.T) {
	setupTestHome(t)

	output, err := runCLI(t, "--no-private-chat", "settings", "show")
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, output)
	}

	for _, want := range []string{"nick_name", "own_color", "network_interface", "automatic", "log folder", "--no-private-chat"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestSettingsShow_TOML(t *testing.T) {
	setupTestHome(t)

	output, err := runCLI(t, "settings", "show", "--toml")
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, output)
	}

	var result map[string]any
	if _, err := toml.Decode(output, &result); err != nil {
		t.Fatalf("show --toml printed invalid TOML: %v\n%s", err, output)
	}
	if _, ok := result["settings"]; !ok {
		t.Errorf("Expected a settings table, got:\n%s", output)
	}
}

func TestSettingsShow_JSONAndTOML(t *testing.T) {
	setupTestHome(t)

	if _, err := runCLI(t, "settings", "show", "--json", "--toml"); err == nil {
		t.Error("Expected --json and --toml to be rejected together")
	}
}

func TestSettingsExport(t *testing.T) {
	setupTestHome(t)
	out := filepath.Join(t.TempDir(), "kouchat.toml")

	if output, err := runCLI(t, "settings", "set", "browser", "lynx"); err != nil {
		t.Fatalf("set failed: %v\n%s", err, output)
	}

	output, err := runCLI(t, "settings", "export", out)
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Settings exported to") {
		t.Errorf("unexpected output:\n%s", output)
	}

	var exported map[string]any
	if _, err := toml.DecodeFile(out, &exported); err != nil {
		t.Fatalf("Failed to decode export: %v", err)
	}
	if exported["browser"] != "lynx" {
		t.Errorf("Expected browser lynx in export, got %v", exported["browser"])
	}
}

func TestSettingsExport_OutputFlag(t *testing.T) {
	setupTestHome(t)
	out := filepath.Join(t.TempDir(), "nested", "settings.toml")

	if output, err := runCLI(t, "settings", "export", "-o", out); err != nil {
		t.Fatalf("export failed: %v\n%s", err, output)
	}
	if !fileExists(out) {
		t.Error("Expected export file to be created")
	}
}

func TestSettingsHistory(t *testing.T) {
	setupTestHome(t)

	output, err := runCLI(t, "settings", "history")
	if err != nil {
		t.Fatalf("history failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No settings history found") {
		t.Errorf("Expected empty history message, got:\n%s", output)
	}

	if output, err := runCLI(t, "settings", "set", "own_color", "42"); err != nil {
		t.Fatalf("set failed: %v\n%s", err, output)
	}
	if output, err := runCLI(t, "settings", "set", "balloons", "true"); err != nil {
		t.Fatalf("set failed: %v\n%s", err, output)
	}

	output, err = runCLI(t, "settings", "history")
	if err != nil {
		t.Fatalf("history failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, `own_color: "-15987646" -> "42"`) || !strings.Contains(output, "balloons") {
		t.Errorf("Expected both changes in history, got:\n%s", output)
	}

	output, err = runCLI(t, "settings", "history", "--json", "--key", "balloons")
	if err != nil {
		t.Fatalf("history failed: %v\n%s", err, output)
	}
	var entries []map[string]any
	if err := json.Unmarshal([]byte(output), &entries); err != nil {
		t.Fatalf("history --json printed invalid JSON: %v\n%s", err, output)
	}
	if len(entries) != 1 || entries[0]["key"] != "balloons" {
		t.Errorf("Expected only the balloons change, got %v", entries)
	}
}

func TestSettingsPath(t *testing.T) {
	home := setupTestHome(t)

	output, err := runCLI(t, "settings", "path")
	if err != nil {
		t.Fatalf("path failed: %v\n%s", err, output)
	}

	for _, want := range []string{settingsFile(home), filepath.Join(home, ".kouchat", "logs"), "history.jsonl"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, output)
		}
	}
}
