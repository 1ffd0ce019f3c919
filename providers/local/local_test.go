package local

import (
	"path/filepath"
	"testing"

	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_DefaultFiles(t *testing.T) {
	t.Setenv("HOME", "/home/alice")

	r := New(WithFs(afero.NewMemMapFs()))

	assert.Equal(t, []string{
		filepath.Join("/home/alice", ".ssh", "config"),
		"/etc/ssh_config",
		"/etc/ssh/ssh_config",
	}, r.Files())
}

func TestResolver_ResolveHost(t *testing.T) {
	t.Setenv("HOME", "/home/alice")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join("/home/alice", ".ssh", "config"), []byte("Host web\n  User deploy\n  IdentityFile ~/.ssh/web\n"), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/etc/ssh/ssh_config", []byte("User root\nHost *\n  IdentityFile ~/.ssh/id_rsa\n  SendEnv LANG\n"), 0o644))

	r := New(WithFs(fs), WithMultiValued("SendEnv"))

	assert.Equal(t, []string{filepath.Join("/home/alice", ".ssh", "config"), "/etc/ssh/ssh_config"}, r.Existing())

	web := r.ResolveHost("web")
	assert.Equal(t, "deploy", web.String("User"))
	assert.Equal(t, []string{"~/.ssh/web", "~/.ssh/id_rsa"}, web.GetAll(sshconfig.IdentityFile))
	assert.True(t, web.IsList("SendEnv"))

	db := r.ResolveHost("db")
	assert.Equal(t, "root", db.String("User"))
}

func TestResolver_WithFiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/custom", []byte("Port 2200\n"), 0o644))

	r := New(WithFs(fs), WithFiles("/custom", "/missing"))

	assert.Equal(t, []string{"/custom", "/missing"}, r.Files())
	assert.Equal(t, []string{"/custom"}, r.Existing())
	assert.Equal(t, "2200", r.ResolveHost("any").String("Port"))
}

func TestResolver_NilFs(t *testing.T) {
	t.Parallel()

	r := New(WithFs(nil), WithFiles("/definitely/not/a/real/ssh_config"))

	assert.NotPanics(t, func() {
		assert.Empty(t, r.Existing())
		assert.Equal(t, 0, r.ResolveHost("web").Len())
	})
}
