package sshconfig

import (
	"fmt"
	"strings"
)

// Print renders settings as sorted "key\tvalue" lines.
func Print(s *Settings) string {
	keys := s.Keys()
	lines := make([]string, 0, len(keys))

	for _, k := range keys {
		lines = append(lines, k+"\t"+s.String(k))
	}

	return strings.Join(lines, "\n")
}

// PrettyPrint is like Print but pads keys to a common width.
func PrettyPrint(s *Settings) string {
	keys := s.Keys()

	longest := 0
	for _, k := range keys {
		longest = max(longest, len(k))
	}

	lines := make([]string, 0, len(keys))

	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%-*s\t%s", longest, k, s.String(k)))
	}

	return strings.Join(lines, "\n")
}
