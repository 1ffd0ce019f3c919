package local

import (
	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/bigangswan/ssh-config/fileutil"
	"github.com/spf13/afero"
)

var _ sshconfig.Loader = (*Resolver)(nil)

// Resolver is a sshconfig.Resolver bound to an expanded search list.
type Resolver struct {
	*sshconfig.Resolver

	fs    afero.Fs
	files []string
}

// New creates a local Resolver. Without options it searches
// sshconfig.DefaultFiles on the OS file system.
func New(opts ...Option) *Resolver {
	cfg := Config{
		fs:    afero.NewOsFs(),
		files: sshconfig.DefaultFiles(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	resolverOpts := []sshconfig.Option{
		sshconfig.WithFs(cfg.fs),
		sshconfig.WithLogger(cfg.logger),
		sshconfig.WithMultiValued(cfg.multiValued...),
	}

	return &Resolver{
		Resolver: sshconfig.New(resolverOpts...),
		fs:       cfg.fs,
		files:    fileutil.ExpandAll(cfg.files),
	}
}

// Files returns the expanded search list, most specific first.
func (r *Resolver) Files() []string {
	return append([]string(nil), r.files...)
}

// Existing returns the files of the search list that can be read.
func (r *Resolver) Existing() []string {
	return fileutil.Existing(r.fs, r.files)
}

// ResolveHost resolves hostname against the search list.
func (r *Resolver) ResolveHost(hostname string) *sshconfig.Settings {
	return r.Resolve(hostname, r.files)
}

// Resolve resolves hostname against the default search list on the OS file
// system.
func Resolve(hostname string) *sshconfig.Settings {
	return New().ResolveHost(hostname)
}
