package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Tilde alone", in: "~", want: home},
		{name: "User config", in: "~/.ssh/config", want: filepath.Join(home, ".ssh", "config")},
		{name: "Absolute", in: "/etc/ssh/ssh_config", want: "/etc/ssh/ssh_config"},
		{name: "Relative", in: "ssh_config", want: "ssh_config"},
		{name: "Other user", in: "~bob/.ssh/config", want: "~bob/.ssh/config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestExpandAll(t *testing.T) {
	t.Setenv("HOME", "/home/alice")

	got := ExpandAll([]string{"~/.ssh/config", "/etc/ssh_config"})
	assert.Equal(t, []string{filepath.Join("/home/alice", ".ssh", "config"), "/etc/ssh_config"}, got)
}

func TestTrimHome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".ssh/config", TrimHome("~/.ssh/config"))
	assert.Equal(t, ".", TrimHome("~"))
	assert.Equal(t, "/etc/ssh_config", TrimHome("/etc/ssh_config"))
}

func TestExisting(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/ssh/ssh_config", []byte("Port 22\n"), 0o644))
	require.NoError(t, fs.MkdirAll("/etc/ssh_config.d", 0o755))

	got := Existing(fs, []string{"/home/u/.ssh/config", "/etc/ssh_config.d", "/etc/ssh/ssh_config"})
	assert.Equal(t, []string{"/etc/ssh/ssh_config"}, got)

	assert.False(t, Readable(fs, "/etc/ssh_config.d"))
	assert.True(t, Readable(fs, "/etc/ssh/ssh_config"))
}
