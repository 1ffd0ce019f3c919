// Package fileutil provides path helpers shared by the sshconfig providers.
//
// The resolver itself never touches the environment; these helpers turn the
// conventional "~/..." locations into concrete paths and check which of them
// can actually be read.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ExpandPath replaces a leading "~" or "~/" with the current user's home
// directory. Other forms ("~user/...") and paths without a tilde are
// returned as given, as is the input when the home directory is unknown.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}

// ExpandAll applies ExpandPath to every path.
func ExpandAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = ExpandPath(p)
	}

	return out
}

// TrimHome strips a leading "~/" so the path is relative to whatever
// directory a remote session starts in (the login directory for SFTP).
func TrimHome(path string) string {
	if path == "~" {
		return "."
	}

	return strings.TrimPrefix(path, "~/")
}

// Readable reports whether path names a regular file that can be opened on fs.
func Readable(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	f, err := fs.Open(path)
	if err != nil {
		return false
	}

	_ = f.Close()

	return true
}

// Existing filters paths down to the ones that are Readable, keeping order.
func Existing(fs afero.Fs, paths []string) []string {
	var out []string

	for _, p := range paths {
		if Readable(fs, p) {
			out = append(out, p)
		}
	}

	return out
}
