// Package sshconfig resolves the effective OpenSSH client configuration for a
// host.
//
// # Precedence
//
// Files are given most specific first (typically ~/.ssh/config, then the
// system files). Within one file, and across files, the first value obtained
// for an option wins. Options set before any Host line are file-wide
// defaults: a matching Host block anywhere in the same file outranks them.
// A default repeated before the first Host line also keeps its first value,
// so "User first" followed by "User second" resolves to "first". Resolvers
// that let the later global line win will disagree here.
//
// # Multi-valued options
//
// IdentityFile (and any key added with WithMultiValued) accumulates into an
// ordered list instead of following first-wins.
//
// # Errors
//
// Resolution never fails. Missing or unreadable files contribute nothing and
// malformed lines are skipped. Use Lint to find out what was skipped.
package sshconfig

// Loader resolves OpenSSH configuration. *Resolver is the standard
// implementation.
type Loader interface {
	// LoadFile merges the options of one file into settings and returns it.
	// Options already present in settings are never overwritten.
	LoadFile(path, hostname string, settings *Settings) *Settings

	// Resolve merges files, most specific first, into a new Settings.
	Resolve(hostname string, files []string) *Settings
}
