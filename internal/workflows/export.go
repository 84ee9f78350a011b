package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/PolarWolf314/kouchat/internal/audit"
	"github.com/PolarWolf314/kouchat/internal/configs"
	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
	"github.com/PolarWolf314/kouchat/internal/settings"
)

// ExportOptions configures the export workflow.
type ExportOptions struct {
	// OutputPath is the path for the TOML file.
	// If empty, defaults to kouchat-settings-YYYY-MM-DD.toml.
	OutputPath string

	// Now replaces time.Now when naming the default output file.
	Now func() time.Time
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	// OutputPath is the path to the created file.
	OutputPath string

	// Settings is what was written.
	Settings Snapshot
}

// Export writes the persisted settings to a TOML file, for backup or to copy
// them to another machine. Startup arguments are not included.
//
// Returns ErrIOFailure if the file could not be written.
func Export(ctx context.Context, store *settings.Store, opts ExportOptions) (*ExportResult, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = fmt.Sprintf("kouchat-settings-%s.toml", now().Format("2006-01-02"))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := TakeSnapshot(store)
	if err := configs.SaveTOML(outputPath, snapshot); err != nil {
		return nil, fmt.Errorf("exporting settings to %s: %w: %w", outputPath, kerrors.ErrIOFailure, err)
	}

	me := store.Me()
	audit.Log(store.Paths().HistoryFile(), audit.Entry{
		User:       me.Nick,
		Code:       me.Code(),
		Operation:  audit.OpExport,
		OutputPath: outputPath,
	})

	return &ExportResult{
		OutputPath: outputPath,
		Settings:   snapshot,
	}, nil
}
