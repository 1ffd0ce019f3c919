package sshconfig

import (
	"log/slog"

	"github.com/spf13/afero"
)

// ResolverConfig holds configuration derived from options.
type ResolverConfig struct {
	Fs          afero.Fs
	Logger      *slog.Logger
	MultiValued []string
	Patterns    *PatternCache
}

func defaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		Fs:          afero.NewOsFs(),
		Logger:      slog.New(slog.DiscardHandler),
		MultiValued: DefaultMultiValued,
		Patterns:    NewPatternCache(),
	}
}

// Option defines a functional option for a Resolver.
type Option func(*ResolverConfig)

// WithFs reads configuration files from fs instead of the OS file system.
func WithFs(fs afero.Fs) Option {
	return func(c *ResolverConfig) {
		if fs != nil {
			c.Fs = fs
		}
	}
}

// WithLogger sets the logger used for debug records about skipped files and
// lines. Resolution never logs above debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *ResolverConfig) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithMultiValued adds option names that accumulate into lists.
// IdentityFile is always multi-valued.
func WithMultiValued(keys ...string) Option {
	return func(c *ResolverConfig) {
		c.MultiValued = append(append([]string(nil), c.MultiValued...), keys...)
	}
}

// WithPatternCache shares a compiled pattern cache between resolvers.
func WithPatternCache(pc *PatternCache) Option {
	return func(c *ResolverConfig) {
		c.Patterns = pc
	}
}
