package workflows

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/kouchat/internal/configs"
	logger "github.com/PolarWolf314/kouchat/internal/logging"
	"github.com/PolarWolf314/kouchat/internal/settings"
)

type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) ReportError(message string) {
	r.messages = append(r.messages, message)
}

// newTestStore creates a store with its application folder in a temp dir.
func newTestStore(t *testing.T, opts ...settings.Option) (*settings.Store, *recordingReporter) {
	t.Helper()

	reporter := &recordingReporter{}
	paths := configs.PathsIn(filepath.Join(t.TempDir(), ".kouchat"))

	base := []settings.Option{
		settings.WithUserName(func() (string, error) { return "jane", nil }),
		settings.WithReporter(reporter),
		settings.WithLogger(logger.Logger{Out: io.Discard, Err: io.Discard}),
		settings.WithOperatingSystem("Linux"),
	}

	return settings.New(paths, append(base, opts...)...), reporter
}
