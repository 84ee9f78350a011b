package utils

import (
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNickLength is the longest nick name other clients accept.
const MaxNickLength = 10

// nickRegex allows letters in any script, digits, underscore and hyphen.
var nickRegex = regexp.MustCompile(`^[\p{L}\d_-]{1,10}$`)

// IsValidNick checks if nick can be used as a nick name on the network.
func IsValidNick(nick string) bool {
	if nick == "" {
		return false
	}
	return nickRegex.MatchString(nick)
}

// Shorten cuts s down to at most max characters.
func Shorten(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// CapitalizeFirstLetter upper-cases the first character of s.
func CapitalizeFirstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// AppendSeparator makes sure path ends with a path separator.
func AppendSeparator(path string) string {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return path
	}
	return path + string(os.PathSeparator)
}
