package sshconfig

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// IdentityFile is the option that may appear many times and accumulates
// into an ordered list.
const IdentityFile = "IdentityFile"

// hostKeyword opens a new Host block. Matched case-sensitively, like every key.
const hostKeyword = "Host"

// DefaultMultiValued lists the options that accumulate instead of following
// first-wins precedence.
var DefaultMultiValued = []string{IdentityFile}

// Settings is the flattened result of resolving configuration for one host.
//
// Single-valued options keep the first value written. Multi-valued options
// (see DefaultMultiValued) are append-only lists. Keys are stored exactly as
// they appear in the file.
type Settings struct {
	values map[string]string
	lists  map[string][]string
}

// NewSettings returns an empty Settings.
func NewSettings() *Settings {
	return &Settings{
		values: make(map[string]string),
		lists:  make(map[string][]string),
	}
}

func (s *Settings) ensure() {
	if s.values == nil {
		s.values = make(map[string]string)
	}

	if s.lists == nil {
		s.lists = make(map[string][]string)
	}
}

// Has reports whether key has been set, either as a single value or as a list.
func (s *Settings) Has(key string) bool {
	if s == nil {
		return false
	}

	if _, ok := s.values[key]; ok {
		return true
	}

	_, ok := s.lists[key]

	return ok
}

// Get returns the value of key. For multi-valued options it returns the first
// entry of the list.
func (s *Settings) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}

	if v, ok := s.values[key]; ok {
		return v, true
	}

	if l, ok := s.lists[key]; ok && len(l) > 0 {
		return l[0], true
	}

	return "", false
}

// GetAll returns every value recorded for key, in insertion order.
// Single-valued options yield a one-element slice.
func (s *Settings) GetAll(key string) []string {
	if s == nil {
		return nil
	}

	if v, ok := s.values[key]; ok {
		return []string{v}
	}

	return slices.Clone(s.lists[key])
}

// IsList reports whether key holds an accumulated list.
func (s *Settings) IsList(key string) bool {
	if s == nil {
		return false
	}

	_, ok := s.lists[key]

	return ok
}

// SetDefault stores value under key unless key is already present.
// It reports whether the value was stored.
func (s *Settings) SetDefault(key, value string) bool {
	if s.Has(key) {
		return false
	}

	s.ensure()
	s.values[key] = value

	return true
}

// Append adds value to the list stored under key. Lists are never
// deduplicated.
func (s *Settings) Append(key, value string) {
	s.ensure()
	s.lists[key] = append(s.lists[key], value)
}

// Underlay copies every entry of lower whose key is not yet present in s.
// Entries already in s always take precedence, lists included.
func (s *Settings) Underlay(lower *Settings) {
	if lower == nil {
		return
	}

	s.ensure()

	for k, v := range lower.values {
		if !s.Has(k) {
			s.values[k] = v
		}
	}

	for k, l := range lower.lists {
		if !s.Has(k) {
			s.lists[k] = slices.Clone(l)
		}
	}
}

// Len returns the number of distinct keys.
func (s *Settings) Len() int {
	if s == nil {
		return 0
	}

	return len(s.values) + len(s.lists)
}

// Keys returns all keys in sorted order.
func (s *Settings) Keys() []string {
	if s == nil {
		return nil
	}

	keys := slices.Collect(maps.Keys(s.values))
	keys = slices.AppendSeq(keys, maps.Keys(s.lists))
	slices.Sort(keys)

	return keys
}

// Clone returns a deep copy.
func (s *Settings) Clone() *Settings {
	c := NewSettings()
	if s == nil {
		return c
	}

	maps.Copy(c.values, s.values)

	for k, l := range s.lists {
		c.lists[k] = slices.Clone(l)
	}

	return c
}

// Map returns the settings as a plain map of string or []string values.
func (s *Settings) Map() map[string]any {
	out := make(map[string]any, s.Len())
	if s == nil {
		return out
	}

	for k, v := range s.values {
		out[k] = v
	}

	for k, l := range s.lists {
		out[k] = slices.Clone(l)
	}

	return out
}

// String renders a value for display: lists are space-joined.
func (s *Settings) String(key string) string {
	return strings.Join(s.GetAll(key), " ")
}

// MarshalJSON encodes the settings as a JSON object.
func (s *Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// MarshalYAML encodes the settings as a YAML mapping.
func (s *Settings) MarshalYAML() (any, error) {
	return s.Map(), nil
}
