package ssh

import "time"

// Option defines a functional option for an SSH Config.
type Option func(*Config)

// With returns a copy of c with opts applied.
func (c Config) With(opts ...Option) Config {
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithConfig returns an Option that sets multiple fields from a Config struct.
// Useful for legacy compatibility or bulk configuration.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		*cfg = c
	}
}

// WithHost sets the target hostname.
func WithHost(host string) Option {
	return func(c *Config) {
		c.Host = host
	}
}

// WithUser sets the SSH user.
func WithUser(user string) Option {
	return func(c *Config) {
		c.User = user
	}
}

// WithPort sets the SSH port.
func WithPort(port int) Option {
	return func(c *Config) {
		c.Port = port
	}
}

// WithPassword sets the SSH password.
func WithPassword(password string) Option {
	return func(c *Config) {
		c.Password = password
	}
}

// WithKeyPath prepends a private key file to the identity list.
func WithKeyPath(path string) Option {
	return func(c *Config) {
		c.IdentityFiles = append([]string{path}, c.IdentityFiles...)
	}
}

// WithTimeout sets the connection timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithInsecureSkipVerify enables/disables strict host key checking.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Config) {
		c.InsecureSkipVerify = skip
	}
}
