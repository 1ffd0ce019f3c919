package sshconfig

import (
	"fmt"
	"io"
	"strings"
)

// Lint reports the lines of a configuration that resolution skips or takes
// literally: options without a value, Host lines without patterns and values
// with unbalanced double quotes. path is only used to label the errors.
func Lint(r io.Reader, path string) ([]*LineError, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read ssh config: %w", err)
	}

	var problems []*LineError

	for n, text := range strings.Split(string(data), "\n") {
		e, kind := tokenize(text)

		var cause error

		switch {
		case kind == lineBlank:
			continue
		case kind == lineMalformed:
			cause = ErrMissingValue
		case e.key == hostKeyword && len(ParseHostPatterns(e.value)) == 0:
			cause = ErrEmptyHost
		case e.unbalanced:
			cause = ErrUnbalancedQuote
		default:
			continue
		}

		problems = append(problems, &LineError{
			Path: path,
			Line: n + 1,
			Text: strings.TrimRight(text, "\r"),
			Err:  cause,
		})
	}

	return problems, nil
}

// LintFile runs Lint on a file read through the resolver's file system.
// Unlike LoadFile it reports a missing or unreadable file as an error.
func (r *Resolver) LintFile(path string) ([]*LineError, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ssh config: %w", err)
	}

	defer func() { _ = f.Close() }()

	return Lint(f, path)
}
