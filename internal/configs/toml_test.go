package configs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

type snapshot struct {
	NickName string `toml:"nick_name"`
	OwnColor int    `toml:"own_color"`
	Sound    bool   `toml:"sound"`
}

func TestSaveAndDecodeTOML(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "export.toml")

	original := snapshot{NickName: "Jane", OwnColor: -15987646, Sound: true}
	if err := SaveTOML(testFile, original); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	var loaded snapshot
	if _, err := toml.DecodeFile(testFile, &loaded); err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}

	if loaded != original {
		t.Errorf("Expected %+v, got %+v", original, loaded)
	}
}

func TestSaveTOMLCreatesDirectory(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "subdir", "export.toml")

	if err := SaveTOML(testFile, snapshot{NickName: "Test"}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	if _, err := os.Stat(testFile); os.IsNotExist(err) {
		t.Fatal("File was not created")
	}
}

func TestEncodeTOML(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeTOML(&buf, snapshot{NickName: "Jane"}); err != nil {
		t.Fatalf("EncodeTOML failed: %v", err)
	}
	if !strings.Contains(buf.String(), `nick_name = "Jane"`) {
		t.Errorf("unexpected TOML output:\n%s", buf.String())
	}
}
