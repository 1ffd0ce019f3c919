package sshconfig

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
)

// DefaultFiles returns the conventional OpenSSH client configuration
// locations, most specific first. Paths are returned unexpanded.
func DefaultFiles() []string {
	return []string{"~/.ssh/config", "/etc/ssh_config", "/etc/ssh/ssh_config"}
}

// Resolver reads OpenSSH client configuration files and merges them for a
// target host. A Resolver is immutable and safe for concurrent use as long as
// each call works on its own Settings.
type Resolver struct {
	fs       afero.Fs
	logger   *slog.Logger
	multi    map[string]struct{}
	patterns *PatternCache
}

var _ Loader = (*Resolver)(nil)

// New creates a Resolver. Without options it reads from the OS file system
// and logs nothing.
func New(opts ...Option) *Resolver {
	cfg := defaultResolverConfig()

	for _, o := range opts {
		o(&cfg)
	}

	multi := make(map[string]struct{}, len(cfg.MultiValued)+1)
	multi[IdentityFile] = struct{}{}

	for _, k := range cfg.MultiValued {
		multi[k] = struct{}{}
	}

	return &Resolver{
		fs:       cfg.Fs,
		logger:   cfg.Logger,
		multi:    multi,
		patterns: cfg.Patterns,
	}
}

// IsMultiValued reports whether key accumulates into a list.
func (r *Resolver) IsMultiValued(key string) bool {
	_, ok := r.multi[key]

	return ok
}

// Resolve merges files into a fresh Settings for hostname.
//
// files are ordered most specific first. Since LoadFile never overwrites a
// key, each file only fills what the files before it left unset, and list
// entries from earlier files come first.
func (r *Resolver) Resolve(hostname string, files []string) *Settings {
	settings := NewSettings()

	for _, path := range files {
		settings = r.LoadFile(path, hostname, settings)
	}

	r.logger.Debug("resolved ssh config", "host", hostname, "files", len(files), "keys", settings.Len())

	return settings
}

// LoadFile parses the file at path and merges its options for hostname into
// settings, which is returned. A nil settings starts empty. A file that
// cannot be read leaves settings untouched.
func (r *Resolver) LoadFile(path, hostname string, settings *Settings) *Settings {
	if settings == nil {
		settings = NewSettings()
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		r.logger.Debug("skipping ssh config file", "path", path, "error", err)

		return settings
	}

	return r.merge(path, string(data), hostname, settings)
}

// LoadReader is LoadFile for an already opened stream. If reading fails
// settings is returned untouched.
func (r *Resolver) LoadReader(rd io.Reader, hostname string, settings *Settings) *Settings {
	if settings == nil {
		settings = NewSettings()
	}

	data, err := io.ReadAll(rd)
	if err != nil {
		r.logger.Debug("skipping ssh config stream", "error", err)

		return settings
	}

	return r.merge("", string(data), hostname, settings)
}

func (r *Resolver) merge(path, content, hostname string, settings *Settings) *Settings {
	globals := NewSettings()

	var state blockState

	for n, text := range strings.Split(content, "\n") {
		e, kind := tokenize(text)

		switch kind {
		case lineBlank:
			continue
		case lineMalformed:
			r.logger.Debug("skipping malformed ssh config line", "path", path, "line", n+1, "key", e.key)

			continue
		case lineEntry:
		}

		if e.key == hostKeyword {
			state = blockState{
				seenHost: true,
				matches:  r.patterns.MatchAny(hostname, ParseHostPatterns(e.value)),
			}

			continue
		}

		switch {
		case !state.seenHost:
			if r.IsMultiValued(e.key) {
				globals.Append(e.key, e.value)
			} else if !settings.Has(e.key) {
				globals.SetDefault(e.key, e.value)
			}
		case state.matches:
			if r.IsMultiValued(e.key) {
				settings.Append(e.key, e.value)
			} else {
				settings.SetDefault(e.key, e.value)
			}
		}
	}

	// File-wide defaults sit under everything already known, including
	// Host blocks that appeared later in this file.
	settings.Underlay(globals)

	return settings
}

var defaultResolver = New()

// LoadFile merges one file using a Resolver on the OS file system.
func LoadFile(path, hostname string, settings *Settings) *Settings {
	return defaultResolver.LoadFile(path, hostname, settings)
}

// Resolve merges files, most specific first, using a Resolver on the OS file
// system.
func Resolve(hostname string, files ...string) *Settings {
	return defaultResolver.Resolve(hostname, files)
}
