package pjson

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// diagnostic is one entry in the Error Journal: a location, a message, and
// an optional secondary location that format renders as a trailing
// "See Line L, Column C for detail." line. The Value Parser's own
// diagnostics do not set a secondary location.
type diagnostic struct {
	offset       int
	message      string
	hasSecondary bool
	secondary    int
}

// journal is the ordered list of diagnostics accumulated during a parse.
// Entries are always in insertion order; recovery may truncate the journal
// back to a snapshot taken before recovery began (see recover in parser.go),
// but never removes an entry reported before recovery started.
type journal struct {
	entries []diagnostic
}

func (j *journal) add(offset int, message string) {
	j.entries = append(j.entries, diagnostic{offset: offset, message: message})
}

func (j *journal) addWithSecondary(offset int, message string, secondary int) {
	j.entries = append(j.entries, diagnostic{
		offset: offset, message: message,
		hasSecondary: true, secondary: secondary,
	})
}

func (j *journal) snapshot() int { return len(j.entries) }

func (j *journal) truncateTo(n int) { j.entries = j.entries[:n] }

func (j *journal) empty() bool { return len(j.entries) == 0 }

// format renders the accumulated diagnostics as a human-readable
// multi-line string, one "* Line L, Column C" block per diagnostic.
func (j *journal) format(c *cursor) string {
	var sb strings.Builder
	for _, d := range j.entries {
		line, col := c.locate(d.offset)
		fmt.Fprintf(&sb, "* Line %d, Column %d\n  %s\n", line, col, d.message)
		if d.hasSecondary {
			sLine, sCol := c.locate(d.secondary)
			fmt.Fprintf(&sb, "See Line %d, Column %d for detail.\n", sLine, sCol)
		}
	}
	return sb.String()
}

// FatalError is raised for the two unrecoverable conditions: exceeding the
// configured stack limit, and an object key at or past the 2^30 length
// guard. Unlike journal diagnostics, which are in-band data describing a
// recoverable syntax problem, a FatalError aborts the parse outright and is
// surfaced to the caller as a conventional Go error (wrapped with
// github.com/pkg/errors so callers get a captured stack trace at the point
// the guard tripped).
type FatalError struct {
	Message string
	Line    int
	Column  int
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("pjson: fatal error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func newFatalError(c *cursor, offset int, message string) error {
	line, col := c.locate(offset)
	return pkgerrors.WithStack(&FatalError{Message: message, Line: line, Column: col})
}
