package sshconfig

import (
	"errors"
	"fmt"
)

// ErrMissingValue indicates a line that names an option but carries no value.
var ErrMissingValue = errors.New("option has no value")

// ErrEmptyHost indicates a Host line without any pattern.
var ErrEmptyHost = errors.New("host directive has no patterns")

// ErrUnbalancedQuote indicates a value with an opening or closing double quote
// but not both. The value is used as written.
var ErrUnbalancedQuote = errors.New("unbalanced double quote")

// LineError describes a line that resolution skipped or took literally.
// Resolution itself never returns these; they are produced by Lint.
type LineError struct {
	Path string // Source file, empty for anonymous readers
	Line int    // 1-based line number
	Text string // Raw line content
	Err  error
}

func (e *LineError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
