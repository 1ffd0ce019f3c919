package sshconfigtest

import (
	"fmt"
	"path"
	"testing"

	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Standard categories for grouping contracts.
const (
	CategoryPatterns   = "patterns"
	CategoryPrecedence = "precedence"
	CategoryLists      = "lists"
	CategoryParsing    = "parsing"
	CategoryFiles      = "files"
)

// T is the minimal interface required for testify/assert and require.
type T interface {
	Errorf(format string, args ...any)
	FailNow()
	Name() string
}

// Paths maps a fixture file name to its location on the file system under test.
type Paths func(name string) string

// TestCase defines a single behavioral contract requirement.
type TestCase struct {
	Category    string
	Name        string
	Description string
	// Files are written, relative to a per-contract directory, before Run.
	// Names referenced in Run but absent here do not exist.
	Files map[string]string
	Run   func(t T, r *sshconfig.Resolver, p Paths)
}

// ID returns the stable, globally unique contract identifier.
func (tc TestCase) ID() string {
	return fmt.Sprintf("%s/%s", tc.Category, tc.Name)
}

// Prepare writes the fixtures of tc below root and returns the Paths that
// locate them.
func Prepare(fs afero.Fs, root string, tc TestCase) (Paths, error) {
	dir := path.Join(root, tc.Category, tc.Name)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create fixture directory: %w", err)
	}

	for name, content := range tc.Files {
		if err := afero.WriteFile(fs, path.Join(dir, name), []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write fixture %s: %w", name, err)
		}
	}

	return func(name string) string { return path.Join(dir, name) }, nil
}

// Verify runs every contract against a Resolver reading from fs.
// Fixtures are written below root, which must be writable and use forward
// slashes.
func Verify(t *testing.T, fs afero.Fs, root string) {
	t.Helper()

	for _, tc := range AllContracts() {
		t.Run(tc.ID(), func(t *testing.T) {
			paths, err := Prepare(fs, root, tc)
			require.NoError(t, err)

			tc.Run(t, sshconfig.New(sshconfig.WithFs(fs)), paths)
		})
	}
}
