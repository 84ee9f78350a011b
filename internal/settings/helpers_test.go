package settings

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/PolarWolf314/kouchat/internal/configs"
	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
	logger "github.com/PolarWolf314/kouchat/internal/logging"
)

// memCodec keeps the settings file in memory.
type memCodec struct {
	files   map[string]map[string]string
	headers map[string]string
	loadErr error
	saveErr error
	saves   int
}

func newMemCodec() *memCodec {
	return &memCodec{
		files:   make(map[string]map[string]string),
		headers: make(map[string]string),
	}
}

func (c *memCodec) Load(path string) (map[string]string, error) {
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	values, ok := c.files[path]
	if !ok {
		return nil, kerrors.ErrSettingsNotFound
	}
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out, nil
}

func (c *memCodec) Save(path string, values map[string]string, header string) error {
	if c.saveErr != nil {
		return c.saveErr
	}
	c.saves++
	c.files[path] = values
	c.headers[path] = header
	return nil
}

type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) ReportError(message string) {
	r.messages = append(r.messages, message)
}

type testEnv struct {
	paths    *configs.Paths
	codec    *memCodec
	reporter *recordingReporter
	logOut   *bytes.Buffer
	logErr   *bytes.Buffer
	folders  []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		paths:    configs.PathsIn(filepath.Join(t.TempDir(), ".kouchat")),
		codec:    newMemCodec(),
		reporter: &recordingReporter{},
		logOut:   &bytes.Buffer{},
		logErr:   &bytes.Buffer{},
	}
}

// seed puts values in the settings file before the store is created.
func (e *testEnv) seed(values map[string]string) {
	e.codec.files[e.paths.SettingsFile] = values
}

func (e *testEnv) newStore(userName string, opts ...Option) *Store {
	base := []Option{
		WithCodec(e.codec),
		WithReporter(e.reporter),
		WithLogger(logger.Logger{Debug: true, Out: e.logOut, Err: e.logErr}),
		WithUserName(func() (string, error) {
			if userName == "" {
				return "", errors.New("no user")
			}
			return userName, nil
		}),
		WithFolderCreator(func(path string) error {
			e.folders = append(e.folders, path)
			return nil
		}),
		WithOperatingSystem("Linux"),
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithClock(func() time.Time { return time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC) }),
	}
	return New(e.paths, append(base, opts...)...)
}
