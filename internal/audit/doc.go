// Package audit keeps a journal of changes made to the settings.
//
// Every settings change made from the command line, and every export, is
// appended to the journal so a user can see what was changed and when.
//
// # Format
//
// The journal is stored as JSON Lines (one JSON object per line) next to the
// settings file:
//
//	~/.kouchat/history.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Nick and user code of the process that made the change
//   - Operation name
//   - The key with its old and new value, or the export path
//
// # Failure Handling
//
// Journal writes are best-effort. A change that was saved is never reported
// as failed because the journal could not be written.
//
// # Reading
//
// Use ReadEntries to parse the journal for display. Malformed lines and lines
// with an unknown operation are skipped to handle partial writes.
package audit
