package ssh

import (
	"context"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ProxyArgv(t *testing.T) {
	t.Parallel()

	c := NewConfig("10.0.0.5", "deploy")
	c.Port = 2200
	c.ProxyCommand = []string{"ssh", "-W", "%h:%p", "-l", "%r", "100%%", "%x"}

	assert.Equal(t, []string{"ssh", "-W", "10.0.0.5:2200", "-l", "deploy", "100%", "%x"}, c.proxyArgv())
}

func TestProxyConn(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	conn, err := startProxyCommand(context.Background(), []string{"cat"})
	require.NoError(t, err)

	_, err = conn.Write([]byte("ping"))
	require.NoError(t, err)

	buf := make([]byte, 4)
	_, err = io.ReadFull(conn, buf)
	require.NoError(t, err)
	assert.Equal(t, "ping", string(buf))

	assert.Equal(t, "proxy", conn.RemoteAddr().Network())
	require.NoError(t, conn.Close())
}

func TestStartProxyCommand_Errors(t *testing.T) {
	t.Parallel()

	_, err := startProxyCommand(context.Background(), nil)
	require.Error(t, err)

	_, err = startProxyCommand(context.Background(), []string{"/definitely/not/a/proxy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start proxy command")
}

func TestDialContext_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := DialContext(context.Background(), Config{User: "root", InsecureSkipVerify: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host address cannot be empty")
}

func TestDialContext_Refused(t *testing.T) {
	t.Parallel()

	c := NewConfig("127.0.0.1", "root").With(WithPort(1), WithInsecureSkipVerify(true))

	_, err := DialContext(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to dial ssh")
}
