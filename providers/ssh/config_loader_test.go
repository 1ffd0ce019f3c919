package ssh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSH_NewFromSSHConfig(t *testing.T) {
	// Create a temporary ssh config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "ssh_config")
	systemPath := filepath.Join(tmpDir, "system_config")

	configContent := `
Host myalias
    HostName 1.2.3.4
    User testuser
    Port 2222
    IdentityFile ~/.ssh/id_ed25519
    StrictHostKeyChecking no
`
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(systemPath, []byte("Host *\n  IdentityFile ~/.ssh/id_rsa\n  ConnectTimeout 3\n"), 0o644))

	t.Run("custom path", func(t *testing.T) {
		cfg, err := NewFromSSHConfig("myalias", configPath)
		require.NoError(t, err)

		assert.Equal(t, "1.2.3.4", cfg.Host)
		assert.Equal(t, "testuser", cfg.User)
		assert.Equal(t, 2222, cfg.Port)
		assert.True(t, cfg.InsecureSkipVerify)
		// IdentityFile resolution check (it uses os.UserHomeDir())
		require.Len(t, cfg.IdentityFiles, 1)
		assert.True(t, filepath.IsAbs(cfg.IdentityFiles[0]))
		assert.Contains(t, cfg.IdentityFiles[0], "id_ed25519")
	})

	t.Run("several files", func(t *testing.T) {
		cfg, err := NewFromSSHConfig("myalias", filepath.Join(tmpDir, "missing"), configPath, systemPath)
		require.NoError(t, err)

		require.Len(t, cfg.IdentityFiles, 2)
		assert.Contains(t, cfg.IdentityFiles[0], "id_ed25519")
		assert.Contains(t, cfg.IdentityFiles[1], "id_rsa")
		assert.Equal(t, "3s", cfg.Timeout.String())
	})

	t.Run("non-existent path", func(t *testing.T) {
		_, err := NewFromSSHConfig("myalias", filepath.Join(tmpDir, "non_existent"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open ssh config")
	})

	t.Run("reader", func(t *testing.T) {
		cfg, err := NewFromSSHConfigReader("myalias", strings.NewReader(configContent))
		require.NoError(t, err)
		assert.Equal(t, "1.2.3.4", cfg.Host)
	})
}
