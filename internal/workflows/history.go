package workflows

import (
	"context"
	"fmt"
	"slices"

	"github.com/PolarWolf314/kouchat/internal/audit"
	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
	"github.com/PolarWolf314/kouchat/internal/settings"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Key filters entries by setting key.
	Key string
}

// HistoryResult contains the outcome of a history operation.
type HistoryResult struct {
	// Entries are the filtered journal entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// History reads the settings change journal.
//
// Returns ErrNoHistory if nothing has been journaled yet.
// Returns ErrUnknownSetting if Key is set but is not a setting.
func History(ctx context.Context, store *settings.Store, opts HistoryOptions) (*HistoryResult, error) {
	if opts.Key != "" {
		if _, err := settings.ParseSetting(opts.Key); err != nil {
			return nil, err
		}
	}

	entries, err := audit.ReadEntries(store.Paths().HistoryFile())
	if err != nil {
		return nil, fmt.Errorf("reading settings history: %w: %w", kerrors.ErrIOFailure, err)
	}
	if len(entries) == 0 {
		return nil, kerrors.ErrNoHistory
	}

	result := &HistoryResult{
		TotalEntriesBeforeFilter: len(entries),
	}

	filtered := entries
	if opts.Key != "" {
		filtered = slices.DeleteFunc(filtered, func(e audit.Entry) bool {
			return e.Key != opts.Key
		})
	}

	filtered = audit.Last(filtered, opts.Limit)

	if opts.Reverse {
		slices.Reverse(filtered)
	}

	result.Entries = filtered
	return result, nil
}
