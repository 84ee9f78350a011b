package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the name KouChat reports to other clients.
	AppName = "KouChat"

	settingsFileName = "kouchat.ini"
	appFolderName    = ".kouchat"
	logFolderName    = "logs"
)

// AppVersion is set at build time:
// go build -ldflags "-X github.com/PolarWolf314/kouchat/internal/configs.AppVersion=1.3.0"
var AppVersion = "1.3.0"

// Paths holds the locations KouChat reads from and writes to.
// Folder paths always end with a path separator.
type Paths struct {
	AppFolder    string
	LogFolder    string
	SettingsFile string
}

// DefaultPaths resolves the application folder in the user's home directory.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error getting home directory: %w", err)
	}

	return PathsIn(filepath.Join(homeDir, appFolderName)), nil
}

// PathsIn returns the paths used when appFolder is the application folder.
func PathsIn(appFolder string) *Paths {
	appFolder = filepath.Clean(appFolder)
	sep := string(os.PathSeparator)

	return &Paths{
		AppFolder:    appFolder + sep,
		LogFolder:    filepath.Join(appFolder, logFolderName) + sep,
		SettingsFile: filepath.Join(appFolder, settingsFileName),
	}
}

// HistoryFile is where changes made from the command line are journaled.
func (p *Paths) HistoryFile() string {
	return filepath.Join(p.AppFolder, "history.jsonl")
}
