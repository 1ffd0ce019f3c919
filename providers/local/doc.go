// Package local resolves OpenSSH client configuration the way the local ssh
// client finds it: the conventional search list with "~" expanded against the
// current user's home directory, read from the OS file system.
//
// Usage:
//
//	settings := local.Resolve("web")
//	user, _ := settings.Get("User")
package local
