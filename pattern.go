package sshconfig

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Pattern is a compiled OpenSSH host pattern.
//
// '*' matches any run of characters, '?' matches exactly one character and
// everything else is literal. Matching is case-insensitive and anchored at
// both ends.
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// CompilePattern translates an OpenSSH host pattern into a Pattern.
func CompilePattern(pattern string) (*Pattern, error) {
	var b strings.Builder

	b.WriteString("(?is)^")

	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("invalid host pattern %q: %w", pattern, err)
	}

	return &Pattern{raw: pattern, re: re}, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(pattern string) *Pattern {
	p, err := CompilePattern(pattern)
	if err != nil {
		panic(err)
	}

	return p
}

// Matches reports whether hostname matches the whole pattern.
func (p *Pattern) Matches(hostname string) bool {
	return p.re.MatchString(hostname)
}

func (p *Pattern) String() string {
	return p.raw
}

// HostPatterns is the ordered list of patterns following a Host keyword.
type HostPatterns []string

// ParseHostPatterns splits the value of a Host line on whitespace.
func ParseHostPatterns(value string) HostPatterns {
	return strings.Fields(value)
}

// MatchAny reports whether any pattern in h matches hostname.
func (h HostPatterns) MatchAny(hostname string) bool {
	return (*PatternCache)(nil).MatchAny(hostname, h)
}

// PatternCache memoizes compiled patterns by their source text.
// It is safe for concurrent use; a nil cache compiles on every call.
type PatternCache struct {
	m sync.Map // string -> *Pattern
}

// NewPatternCache returns an empty cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{}
}

// Compile returns the compiled form of pattern, compiling it on first use.
func (c *PatternCache) Compile(pattern string) (*Pattern, error) {
	if c == nil {
		return CompilePattern(pattern)
	}

	if p, ok := c.m.Load(pattern); ok {
		return p.(*Pattern), nil //nolint:forcetypeassert
	}

	p, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := c.m.LoadOrStore(pattern, p)

	return actual.(*Pattern), nil //nolint:forcetypeassert
}

// MatchAny reports whether any of patterns matches hostname.
// Patterns that fail to compile never match.
func (c *PatternCache) MatchAny(hostname string, patterns []string) bool {
	for _, raw := range patterns {
		p, err := c.Compile(raw)
		if err != nil {
			continue
		}

		if p.Matches(hostname) {
			return true
		}
	}

	return false
}
