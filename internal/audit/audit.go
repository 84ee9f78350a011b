package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Operation names written to the journal.
const (
	OpSet    = "set"
	OpExport = "export"
)

// TimestampFormat is RFC3339 with microseconds, always UTC.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single journal entry.
type Entry struct {
	Timestamp string `json:"ts"`
	User      string `json:"user"` // Nick of the user making the change.
	Code      int    `json:"code"` // User code of the process that made the change.
	Operation string `json:"op"`

	// Optional fields depending on operation.
	Key        string `json:"key,omitempty"`         // For set.
	Old        string `json:"old,omitempty"`         // For set.
	New        string `json:"new,omitempty"`         // For set.
	OutputPath string `json:"output_path,omitempty"` // For export.
}

// Log appends an entry to the journal at path, creating the file and its
// folder if needed. Entries with an unknown operation are dropped. Failures
// are ignored: a setting that was saved stays saved even if the journal can
// not be written.
func Log(path string, entry Entry) {
	if path == "" || !knownOperation(entry.Operation) {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_ = appendLine(path, append(line, '\n'))
}

func appendLine(path string, line []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if _, err := f.Write(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func knownOperation(op string) bool {
	return op == OpSet || op == OpExport
}

// ReadEntries reads all entries from the journal at path.
// Returns an empty slice if the journal doesn't exist.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into entries. Lines that are not a
// complete entry for a known operation are skipped; they are usually the
// result of a partial write.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if json.Unmarshal(line, &entry) != nil || !knownOperation(entry.Operation) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Last returns the n most recent entries, oldest first. n <= 0 returns all.
func Last(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
