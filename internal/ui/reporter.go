package ui

import (
	"fmt"
	"io"
	"os"
)

// ErrorReporter shows an error message to the user. It is fire-and-forget:
// reporting can not fail from the caller's point of view.
type ErrorReporter interface {
	ReportError(message string)
}

// ConsoleReporter reports errors on a terminal.
type ConsoleReporter struct {
	// W defaults to os.Stderr.
	W io.Writer
}

func (r ConsoleReporter) ReportError(message string) {
	w := r.W
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "%s %s\n", Error.Sprint("✗"), message)
}
