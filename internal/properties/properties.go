// Package properties reads and writes flat key/value settings files.
//
// The files look like this:
//
//	# KouChat Settings
//	nick_name = Jane
//	own_color = -15987646
//
// Sections are not used. Values are stored as plain strings; turning them into
// typed settings is up to the caller.
//
// Files written by the Java client are read as they are: java.util.Properties
// escapes such as C\:\\Program Files and the literal null are not decoded.
package properties

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
)

// Codec loads and saves settings files.
type Codec struct{}

var loadOptions = ini.LoadOptions{
	// Browser commands may contain '#' and ';'.
	IgnoreInlineComment: true,
}

// Load reads path into a key/value mapping.
//
// Returns ErrSettingsNotFound if path does not exist and ErrIOFailure for any
// other read or parse problem.
func (Codec) Load(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", path, kerrors.ErrSettingsNotFound)
		}
		return nil, fmt.Errorf("loading %s: %w: %w", path, kerrors.ErrIOFailure, err)
	}

	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w: %w", path, kerrors.ErrIOFailure, err)
	}

	return file.Section(ini.DefaultSection).KeysHash(), nil
}

// Save writes values to path, replacing its contents. header is written as a
// comment on the first line. Keys are written in sorted order so the file is
// stable between saves.
func (Codec) Save(path string, values map[string]string, header string) error {
	file := ini.Empty(loadOptions)
	sec := file.Section(ini.DefaultSection)
	if header != "" {
		sec.Comment = "# " + header
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := sec.NewKey(k, quoteValue(values[k])); err != nil {
			return fmt.Errorf("saving %s: key %s: %w: %w", path, k, kerrors.ErrIOFailure, err)
		}
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("saving %s: %w: %w", path, kerrors.ErrIOFailure, err)
	}

	return nil
}

// quoteValue wraps v in triple quotes when the loader would otherwise change
// it: surrounding quotes are stripped and a trailing backslash joins the next
// line. Values with a newline or backtick are already triple quoted on write.
func quoteValue(v string) string {
	if v == "" || strings.ContainsAny(v, "\n`") {
		return v
	}
	if strings.ContainsAny(v, `"'`) || strings.HasSuffix(strings.TrimSpace(v), `\`) {
		return `"""` + v + `"""`
	}
	return v
}
