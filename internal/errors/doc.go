// Package errors provides typed error values for KouChat.
//
// Callers handle specific conditions with errors.Is() rather than string
// matching. The package is usually imported as kerrors to avoid clashing
// with the standard library.
//
// # Error Categories
//
//   - File errors: ErrSettingsNotFound, ErrIOFailure
//   - Value errors: ErrMalformedValue, ErrInvalidNick, ErrUnknownSetting, ErrReadOnlySetting
//   - Journal errors: ErrNoHistory
//
// ErrSettingsNotFound is never a failure on its own: a missing settings file
// means the defaults are used. ErrMalformedValue only affects the one field
// that failed to parse.
//
// # Usage
//
// Wrap errors with the offending key or path:
//
//	return fmt.Errorf("saving %s: %w", path, errors.Join(kerrors.ErrIOFailure, err))
//
// Check them in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrInvalidNick) {
//	    // Explain the nick rules to the user
//	}
package errors
