package utils

import (
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
)

// EnsureFolder creates path and any missing parents.
// It is a no-op when the folder already exists.
func EnsureFolder(path string) error {
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("creating folder %s: %w", path, joinIO(err))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking folder %s: %w", path, joinIO(err))
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a folder: %w", path, kerrors.ErrIOFailure)
	}

	return nil
}

func joinIO(err error) error {
	return fmt.Errorf("%w: %w", kerrors.ErrIOFailure, err)
}
