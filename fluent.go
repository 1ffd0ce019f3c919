package sshconfig

import (
	"log/slog"

	"github.com/spf13/afero"
)

// Query provides a fluent API for one resolution.
type Query struct {
	host  string
	files []string
	opts  []Option
}

// For starts a Query for hostname.
func For(hostname string) *Query {
	return &Query{host: hostname}
}

// File adds a single configuration file. Files added first take precedence.
func (q *Query) File(path string) *Query {
	q.files = append(q.files, path)
	return q
}

// Files adds several configuration files.
func (q *Query) Files(paths ...string) *Query {
	q.files = append(q.files, paths...)
	return q
}

// Fs reads files from fs.
func (q *Query) Fs(fs afero.Fs) *Query {
	q.opts = append(q.opts, WithFs(fs))
	return q
}

// Logger sets the debug logger.
func (q *Query) Logger(l *slog.Logger) *Query {
	q.opts = append(q.opts, WithLogger(l))
	return q
}

// MultiValued marks additional keys as list-valued.
func (q *Query) MultiValued(keys ...string) *Query {
	q.opts = append(q.opts, WithMultiValued(keys...))
	return q
}

// Resolve runs the query.
func (q *Query) Resolve() *Settings {
	return New(q.opts...).Resolve(q.host, q.files)
}
