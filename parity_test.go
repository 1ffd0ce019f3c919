package sshconfig

import (
	"strings"
	"testing"

	"github.com/kevinburke/ssh_config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without options outside of Host blocks, first-match resolution agrees with
// github.com/kevinburke/ssh_config.
func TestParity_KevinburkeSSHConfig(t *testing.T) {
	t.Parallel()

	const config = `Host web
    HostName 10.0.0.5
    User deploy

Host *.example.com
    User corp
    Port 2200

Host web db?
    Port 2022
    IdentityFile ~/.ssh/a

Host *
    ServerAliveInterval 30
    IdentityFile ~/.ssh/b
`

	theirs, err := ssh_config.Decode(strings.NewReader(config))
	require.NoError(t, err)

	fs := memFs(t, map[string]string{"/cfg": config})
	r := New(WithFs(fs))

	hosts := []string{"web", "db1", "db12", "x.example.com", "example.com", "other"}
	keys := []string{"HostName", "User", "Port", "IdentityFile", "ServerAliveInterval", "Compression"}

	for _, host := range hosts {
		ours := r.Resolve(host, []string{"/cfg"})

		for _, key := range keys {
			want, err := theirs.Get(host, key)
			require.NoError(t, err)

			got, _ := ours.Get(key)
			assert.Equal(t, want, got, "host %q key %q", host, key)
		}
	}
}
