package ssh

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func settings(pairs ...string) *sshconfig.Settings {
	s := sshconfig.NewSettings()

	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == sshconfig.IdentityFile {
			s.Append(pairs[i], pairs[i+1])
		} else {
			s.SetDefault(pairs[i], pairs[i+1])
		}
	}

	return s
}

func writeKey(t *testing.T, dir, name string) string {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	block, err := ssh.MarshalPrivateKey(priv, "")
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))

	return path
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()
	// Test constructor defaults
	c := NewConfig("example.com", "root")
	c.InsecureSkipVerify = true // Enable this to get a default HostKeyCheck
	c = c.WithDefaults()

	assert.Equal(t, 22, c.Port)
	assert.Equal(t, 10*time.Second, c.Timeout)
	assert.NotNil(t, c.HostKeyCheck)
}

func TestConfig_WithDefaults_KnownHosts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	known := filepath.Join(dir, "known_hosts")
	require.NoError(t, os.WriteFile(known, nil, 0o600))

	c := Config{Host: "example.com", User: "root", KnownHostsFiles: []string{filepath.Join(dir, "missing"), known}}.WithDefaults()
	assert.NotNil(t, c.HostKeyCheck)

	c = Config{Host: "example.com", User: "root", KnownHostsFiles: []string{filepath.Join(dir, "missing")}}.WithDefaults()
	assert.Nil(t, c.HostKeyCheck)
	assert.Error(t, c.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid",
			config:  Config{Host: "example.com", User: "root", InsecureSkipVerify: true}.WithDefaults(),
			wantErr: false,
		},
		{
			name:    "missing host",
			config:  Config{User: "root"},
			wantErr: true,
		},
		{
			name:    "missing user",
			config:  Config{Host: "example.com"},
			wantErr: true,
		},
		{
			name:    "missing host key check",
			config:  Config{Host: "example.com", User: "root"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromSettings(t *testing.T) {
	t.Parallel()

	s := settings(
		"HostName", "%h.internal",
		"User", "deploy",
		"Port", "2222",
		sshconfig.IdentityFile, "/keys/one",
		sshconfig.IdentityFile, "/keys/two",
		"ProxyCommand", `ssh -W "%h:%p" bastion`,
		"Ciphers", "aes256-gcm@openssh.com, chacha20-poly1305@openssh.com",
		"KexAlgorithms", "+diffie-hellman-group14-sha1",
		"MACs", "hmac-sha2-256",
		"HostKeyAlgorithms", "ssh-ed25519",
		"RekeyLimit", "1G 1h",
		"ConnectTimeout", "5",
		"StrictHostKeyChecking", "No",
		"UserKnownHostsFile", "/kh/one /kh/two",
		"IdentityAgent", "none",
	)

	c, err := FromSettings("web", s)
	require.NoError(t, err)

	assert.Equal(t, "web", c.Alias)
	assert.Equal(t, "web.internal", c.Host)
	assert.Equal(t, "deploy", c.User)
	assert.Equal(t, 2222, c.Port)
	assert.Equal(t, []string{"/keys/one", "/keys/two"}, c.IdentityFiles)
	assert.Equal(t, []string{"ssh", "-W", "%h:%p", "bastion"}, c.ProxyCommand)
	assert.Equal(t, []string{"aes256-gcm@openssh.com", "chacha20-poly1305@openssh.com"}, c.Ciphers)
	assert.Nil(t, c.KeyExchanges)
	assert.Equal(t, []string{"hmac-sha2-256"}, c.MACs)
	assert.Equal(t, []string{"ssh-ed25519"}, c.HostKeyAlgorithms)
	assert.Equal(t, uint64(1<<30), c.RekeyThreshold)
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.True(t, c.InsecureSkipVerify)
	assert.Equal(t, []string{"/kh/one", "/kh/two"}, c.KnownHostsFiles)
	assert.False(t, c.UseAgent)

	assert.Equal(t, []string{"ssh", "-W", "web.internal:2222", "bastion"}, c.proxyArgv())
}

func TestFromSettings_Defaults(t *testing.T) {
	t.Parallel()

	c, err := FromSettings("db", settings("ProxyCommand", "none", "UserKnownHostsFile", "none"))
	require.NoError(t, err)

	assert.Equal(t, "db", c.Host)
	assert.Equal(t, 22, c.Port)
	assert.NotEmpty(t, c.User)
	assert.Nil(t, c.ProxyCommand)
	assert.Nil(t, c.KnownHostsFiles)
	assert.True(t, c.UseAgent)
	assert.False(t, c.InsecureSkipVerify)
	assert.Equal(t, 10*time.Second, c.Timeout)
}

func TestFromSettings_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    *sshconfig.Settings
		want string
	}{
		{"bad port", settings("Port", "ssh"), "invalid Port"},
		{"port out of range", settings("Port", "70000"), "invalid Port"},
		{"bad timeout", settings("ConnectTimeout", "soon"), "invalid ConnectTimeout"},
		{"bad proxy command", settings("ProxyCommand", `nc "%h %p`), "invalid ProxyCommand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := FromSettings("web", tt.s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_ToClientConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	key := writeKey(t, dir, "id_ed25519")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage"), []byte("not a key"), 0o600))

	c := NewConfig("example.com", "root").With(
		WithPassword("secret"),
		WithKeyPath(filepath.Join(dir, "missing")),
		WithKeyPath(filepath.Join(dir, "garbage")),
		WithKeyPath(key),
		WithInsecureSkipVerify(true),
	)
	c.Ciphers = []string{"aes128-ctr"}
	c.RekeyThreshold = 1 << 20
	c = c.WithDefaults()

	cc, err := c.ToClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "root", cc.User)
	assert.Len(t, cc.Auth, 2)
	assert.Equal(t, []string{"aes128-ctr"}, cc.Ciphers)
	assert.Equal(t, uint64(1<<20), cc.RekeyThreshold)
	assert.NotNil(t, cc.HostKeyCallback)
}

func TestConfig_ToClientConfig_BadPrivateKey(t *testing.T) {
	t.Parallel()

	c := NewConfig("example.com", "root")
	c.PrivateKey = "garbage"

	_, err := c.ToClientConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse private key")
}

func TestOptions(t *testing.T) {
	t.Parallel()

	c := Config{}.With(
		WithHost("example.com"),
		WithUser("admin"),
		WithPort(2200),
		WithTimeout(time.Second),
	)

	assert.Equal(t, "example.com", c.Host)
	assert.Equal(t, "admin", c.User)
	assert.Equal(t, 2200, c.Port)
	assert.Equal(t, time.Second, c.Timeout)

	replaced := c.With(WithConfig(NewConfig("other", "u")))
	assert.Equal(t, "other", replaced.Host)
}
