package sshconfig

import (
	"strings"
	"unicode"
)

type lineKind int

const (
	lineBlank lineKind = iota // blank or comment
	lineMalformed
	lineEntry
)

// entry is one key/value pair extracted from a line.
type entry struct {
	key   string
	value string
	// unbalanced is set when the raw value has an odd number of double quotes.
	unbalanced bool
}

// tokenize classifies a raw line and extracts its key and value.
//
// Both "Key value" and "Key=value" forms are accepted, with optional
// whitespace around '='. One layer of surrounding double quotes is removed
// from the value.
func tokenize(text string) (entry, lineKind) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return entry{}, lineBlank
	}

	key, value, ok := splitKeyValue(trimmed)
	if !ok {
		return entry{key: trimmed}, lineMalformed
	}

	e := entry{key: key, value: value, unbalanced: strings.Count(value, `"`)%2 != 0}

	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		e.value = value[1 : len(value)-1]
	}

	return e, lineEntry
}

func splitKeyValue(trimmed string) (string, string, bool) {
	first := trimmed

	end := strings.IndexFunc(trimmed, unicode.IsSpace)
	if end >= 0 {
		first = trimmed[:end]
	}

	if i := strings.IndexByte(first, '='); i > 0 {
		return trimmed[:i], strings.TrimSpace(trimmed[i+1:]), true
	}

	if end < 0 {
		return "", "", false
	}

	rest := strings.TrimLeftFunc(trimmed[end:], unicode.IsSpace)
	if strings.HasPrefix(rest, "=") {
		return first, strings.TrimSpace(rest[1:]), true
	}

	return first, rest, true
}

// blockState tracks which Host block the parser is in.
// Lines before the first Host line belong to the implicit global block.
type blockState struct {
	seenHost bool
	matches  bool
}
