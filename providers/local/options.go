package local

import (
	"log/slog"

	"github.com/spf13/afero"
)

// Config holds configuration for the local provider.
type Config struct {
	fs          afero.Fs
	logger      *slog.Logger
	files       []string
	multiValued []string
}

// Option defines a functional option for the local provider.
type Option func(*Config)

// WithFiles replaces the default search list. Paths may start with "~/".
func WithFiles(paths ...string) Option {
	return func(c *Config) {
		c.files = append([]string(nil), paths...)
	}
}

// WithFs reads from fs instead of the OS file system. A nil fs is ignored.
func WithFs(fs afero.Fs) Option {
	return func(c *Config) {
		if fs != nil {
			c.fs = fs
		}
	}
}

// WithLogger sets the debug logger passed to the resolver.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

// WithMultiValued marks additional options as list-valued.
func WithMultiValued(keys ...string) Option {
	return func(c *Config) {
		c.multiValued = append(c.multiValued, keys...)
	}
}
