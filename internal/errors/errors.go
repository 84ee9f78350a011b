package errors

import (
	"errors"
	"fmt"
)

// Settings file errors describe the outcome of reading or writing the settings file.
var (
	// ErrSettingsNotFound indicates the settings file does not exist yet.
	// This is informational: the defaults stay in effect.
	ErrSettingsNotFound = errors.New("settings file not found")

	// ErrIOFailure indicates the settings file, or its folder, could not be read or written.
	ErrIOFailure = errors.New("settings i/o failure")
)

// Value errors describe a single setting that could not be accepted.
var (
	// ErrMalformedValue indicates a stored value could not be parsed into its type.
	ErrMalformedValue = errors.New("malformed setting value")

	// ErrInvalidNick indicates a nick name does not pass nick validation.
	ErrInvalidNick = errors.New("invalid nick name")

	// ErrUnknownSetting indicates a setting key that the store does not know about.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrReadOnlySetting indicates a setting that can only be changed at startup.
	ErrReadOnlySetting = errors.New("setting can only be changed with a startup argument")
)

// Journal errors describe issues with the settings change history.
var (
	// ErrNoHistory indicates no change history has been recorded yet.
	ErrNoHistory = errors.New("no settings history found")
)

// MalformedValueError carries the key and raw value of a setting that failed to parse.
type MalformedValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("could not read setting %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedValue) true for every MalformedValueError.
func (e *MalformedValueError) Is(target error) bool {
	return target == ErrMalformedValue
}
