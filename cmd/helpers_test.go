package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// setupTestHome points the home directory at a temp dir, so the settings
// folder of the user running the tests is never touched.
func setupTestHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("NO_COLOR", "1")

	ResetGlobalState()
	t.Cleanup(ResetGlobalState)

	return home
}

// settingsFile returns the settings file inside home.
func settingsFile(home string) string {
	return filepath.Join(home, ".kouchat", "kouchat.ini")
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	reader, writer, err := os.Pipe()
	if err != nil {
		return "", err
	}

	os.Stdout = writer
	os.Stderr = writer

	outputChan := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, reader)
		outputChan <- buf.String()
	}()

	runErr := fn()

	writer.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-outputChan, runErr
}

// runCLI executes kouchat with args and returns everything it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	ResetGlobalState()
	RootCmd.SetArgs(args)

	return captureOutput(RootCmd.Execute)
}
