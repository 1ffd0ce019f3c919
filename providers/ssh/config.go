package ssh

import (
	"errors"
	"fmt"
	"io"
	"os/user"
	"strconv"
	"strings"
	"time"

	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/bigangswan/ssh-config/fileutil"
	"github.com/google/shlex"
	"github.com/spf13/afero"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Config holds all parameters required to establish an SSH connection.
type Config struct {
	// Connection details
	Alias string // Name the settings were resolved for
	Host  string // Hostname or IP address
	Port  int    // Port number (default 22)
	User  string // Username to authenticate as

	// Authentication methods (tried in order)
	Password      string   // Password for authentication (use sparingly)
	PrivateKey    string   // PEM encoded private key content (string)
	IdentityFiles []string // Private key files; unreadable or encrypted ones are skipped
	UseAgent      bool     // If true, attempt to connect to SSH_AUTH_SOCK

	// Transport
	ProxyCommand      []string // argv run instead of a TCP connection; %h, %p, %r are expanded
	Ciphers           []string
	KeyExchanges      []string
	MACs              []string
	HostKeyAlgorithms []string
	RekeyThreshold    uint64

	// Connection settings
	Timeout            time.Duration       // Connection timeout (default 10s)
	HostKeyCheck       ssh.HostKeyCallback // Callback to verify host key. Built from KnownHostsFiles when nil.
	KnownHostsFiles    []string            // Files consulted when HostKeyCheck is nil
	InsecureSkipVerify bool                // If true, disables strict host key checking. Use ONLY for testing.
}

// NewConfig creates a Config with safe defaults.
// Note: It does NOT set a default HostKeyCheck. You must provide one or set InsecureSkipVerify=true.
func NewConfig(host, username string) Config {
	return Config{
		Host:    host,
		User:    username,
		Port:    22,
		Timeout: 10 * time.Second,
	}
}

// NewFromSSHConfig resolves alias against OpenSSH configuration files and
// translates the result. Without files the conventional search list is used.
// It fails only when none of the files can be read.
func NewFromSSHConfig(alias string, files ...string) (Config, error) {
	if len(files) == 0 {
		files = sshconfig.DefaultFiles()
	}

	files = fileutil.ExpandAll(files)

	if len(fileutil.Existing(afero.NewOsFs(), files)) == 0 {
		return Config{}, fmt.Errorf("failed to open ssh config: none of %s is readable", strings.Join(files, ", "))
	}

	return FromSettings(alias, sshconfig.Resolve(alias, files...))
}

// NewFromSSHConfigReader resolves alias against configuration data.
func NewFromSSHConfigReader(alias string, r io.Reader) (Config, error) {
	return FromSettings(alias, sshconfig.New().LoadReader(r, alias, nil))
}

// FromSettings translates resolved settings for alias into a Config.
func FromSettings(alias string, s *sshconfig.Settings) (Config, error) {
	hostName, _ := s.Get("HostName")
	if hostName == "" {
		hostName = alias // Fallback if no HostName defined
	} else {
		hostName = strings.ReplaceAll(hostName, "%h", alias)
	}

	username, _ := s.Get("User")
	if username == "" {
		// Use current system user if not specified in config
		u, _ := user.Current()
		if u != nil {
			username = u.Username
		}
	}

	c := NewConfig(hostName, username)
	c.Alias = alias
	c.UseAgent = true

	if v, ok := s.Get("Port"); ok {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("configuration error: invalid Port %q", v)
		}

		c.Port = port
	}

	for _, f := range s.GetAll(sshconfig.IdentityFile) {
		c.IdentityFiles = append(c.IdentityFiles, fileutil.ExpandPath(f))
	}

	if v, ok := s.Get("ProxyCommand"); ok && !strings.EqualFold(v, "none") {
		argv, err := shlex.Split(v)
		if err != nil {
			return Config{}, fmt.Errorf("configuration error: invalid ProxyCommand: %w", err)
		}

		c.ProxyCommand = argv
	}

	c.Ciphers = algorithms(s, "Ciphers")
	c.KeyExchanges = algorithms(s, "KexAlgorithms")
	c.MACs = algorithms(s, "MACs")
	c.HostKeyAlgorithms = algorithms(s, "HostKeyAlgorithms")

	if v, ok := s.Get("RekeyLimit"); ok {
		if fields := strings.Fields(v); len(fields) > 0 {
			if n := sshconfig.ParseSize(fields[0]); n > 0 {
				c.RekeyThreshold = uint64(n)
			}
		}
	}

	if v, ok := s.Get("ConnectTimeout"); ok {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 0 {
			return Config{}, fmt.Errorf("configuration error: invalid ConnectTimeout %q", v)
		}

		if secs > 0 {
			c.Timeout = time.Duration(secs) * time.Second
		}
	}

	// Map StrictHostKeyChecking
	switch strict, _ := s.Get("StrictHostKeyChecking"); strings.ToLower(strict) {
	case "no", "off":
		c.InsecureSkipVerify = true
	}

	if v, ok := s.Get("UserKnownHostsFile"); ok {
		if !strings.EqualFold(v, "none") {
			c.KnownHostsFiles = fileutil.ExpandAll(strings.Fields(v))
		}
	} else {
		c.KnownHostsFiles = []string{fileutil.ExpandPath("~/.ssh/known_hosts")}
	}

	if v, ok := s.Get("IdentityAgent"); ok && strings.EqualFold(v, "none") {
		c.UseAgent = false
	}

	return c, nil
}

// algorithms reads a comma separated algorithm list. Lists that modify the
// library defaults ("+", "-" or "^" prefixed) leave the defaults in place.
func algorithms(s *sshconfig.Settings, key string) []string {
	v, ok := s.Get(key)
	if !ok || v == "" || strings.ContainsAny(v[:1], "+-^") {
		return nil
	}

	var out []string

	for _, a := range strings.Split(v, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}

	return out
}

// WithDefaults sets default values for zero-valued fields.
func (c Config) WithDefaults() Config {
	if c.Host != "" && c.User != "" && c.Port == 0 {
		c.Port = 22
	}

	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}

	// If insecure is requested and no callback provided, use insecure ignore.
	if c.InsecureSkipVerify && c.HostKeyCheck == nil {
		c.HostKeyCheck = ssh.InsecureIgnoreHostKey()
	}

	if c.HostKeyCheck == nil && len(c.KnownHostsFiles) > 0 {
		if cb, err := KnownHosts(c.KnownHostsFiles...); err == nil {
			c.HostKeyCheck = cb
		}
	}

	return c
}

// Validate ensures all required fields are present.
func (c Config) Validate() error {
	if c.Host == "" {
		return errors.New("configuration error: host address cannot be empty")
	}

	if c.User == "" {
		return errors.New("configuration error: user cannot be empty")
	}

	if c.HostKeyCheck == nil {
		return errors.New("configuration error: HostKeyCheck is missing; you must provide a callback (e.g. valid 'known_hosts') or set InsecureSkipVerify=true (testing only)")
	}

	return nil
}

// ToClientConfig converts the local Config struct to the underlying ssh.ClientConfig.
func (c Config) ToClientConfig() (*ssh.ClientConfig, error) {
	config := &ssh.ClientConfig{
		User:              c.User,
		Auth:              []ssh.AuthMethod{},
		HostKeyCallback:   c.HostKeyCheck,
		HostKeyAlgorithms: c.HostKeyAlgorithms,
		Timeout:           c.Timeout,
	}

	config.Ciphers = c.Ciphers
	config.KeyExchanges = c.KeyExchanges
	config.MACs = c.MACs
	config.RekeyThreshold = c.RekeyThreshold

	// Add auth methods
	if c.Password != "" {
		config.Auth = append(config.Auth, ssh.Password(c.Password))
	}

	if c.PrivateKey != "" {
		signer, err := ssh.ParsePrivateKey([]byte(c.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}

		config.Auth = append(config.Auth, ssh.PublicKeys(signer))
	}

	if signers := loadIdentitySigners(c.IdentityFiles); len(signers) > 0 {
		config.Auth = append(config.Auth, ssh.PublicKeys(signers...))
	}

	if agentAuth := loadAgentAuth(c.UseAgent); agentAuth != nil {
		config.Auth = append(config.Auth, agentAuth)
	}

	return config, nil
}

// KnownHosts returns a HostKeyCallback backed by the readable files among
// paths.
func KnownHosts(paths ...string) (ssh.HostKeyCallback, error) {
	existing := fileutil.Existing(afero.NewOsFs(), paths)
	if len(existing) == 0 {
		return nil, fmt.Errorf("no readable known_hosts file among %s", strings.Join(paths, ", "))
	}

	return knownhosts.New(existing...)
}

// DefaultKnownHosts returns a HostKeyCallback that verifies the host key against
// strict entries in the user's ~/.ssh/known_hosts file.
func DefaultKnownHosts() (ssh.HostKeyCallback, error) {
	return KnownHosts(fileutil.ExpandPath("~/.ssh/known_hosts"))
}
