package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// Dial establishes a new SSH connection described by c.
func Dial(c Config) (*ssh.Client, error) {
	return DialContext(context.Background(), c)
}

// DialContext establishes a new SSH connection, either over TCP or through
// c.ProxyCommand. ctx bounds connection setup; a proxy command is killed when
// ctx is cancelled.
func DialContext(ctx context.Context, c Config) (*ssh.Client, error) {
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	clientConfig, err := c.ToClientConfig()
	if err != nil {
		return nil, err
	}

	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))

	var conn net.Conn

	if len(c.ProxyCommand) > 0 {
		conn, err = startProxyCommand(ctx, c.proxyArgv())
	} else {
		conn, err = (&net.Dialer{Timeout: c.Timeout}).DialContext(ctx, "tcp", addr)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to dial ssh at %s: %w", addr, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("ssh handshake with %s failed: %w", addr, err)
	}

	return ssh.NewClient(sshConn, chans, reqs), nil
}

// proxyArgv expands the %h, %p, %r and %% tokens of ProxyCommand.
func (c Config) proxyArgv() []string {
	r := strings.NewReplacer(
		"%%", "%",
		"%h", c.Host,
		"%p", strconv.Itoa(c.Port),
		"%r", c.User,
	)

	argv := make([]string, len(c.ProxyCommand))
	for i, a := range c.ProxyCommand {
		argv[i] = r.Replace(a)
	}

	return argv
}

// proxyConn adapts a proxy command's stdio to net.Conn.
type proxyConn struct {
	io.Reader
	io.WriteCloser

	cmd *exec.Cmd
}

func startProxyCommand(ctx context.Context, argv []string) (*proxyConn, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty proxy command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start proxy command %q: %w", argv[0], err)
	}

	return &proxyConn{Reader: stdout, WriteCloser: stdin, cmd: cmd}, nil
}

func (p *proxyConn) Close() error {
	_ = p.WriteCloser.Close()

	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}

	_ = p.cmd.Wait()

	return nil
}

func (p *proxyConn) LocalAddr() net.Addr  { return proxyAddr{} }
func (p *proxyConn) RemoteAddr() net.Addr { return proxyAddr{} }

func (p *proxyConn) SetDeadline(time.Time) error      { return nil }
func (p *proxyConn) SetReadDeadline(time.Time) error  { return nil }
func (p *proxyConn) SetWriteDeadline(time.Time) error { return nil }

type proxyAddr struct{}

func (proxyAddr) Network() string { return "proxy" }
func (proxyAddr) String() string  { return "proxy-command" }
