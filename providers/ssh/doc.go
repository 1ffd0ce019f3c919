// Package ssh turns resolved OpenSSH client settings into a connection
// configuration for "golang.org/x/crypto/ssh".
//
// It covers:
//   - Translation of HostName, User, Port, IdentityFile, ProxyCommand,
//     algorithm lists, RekeyLimit, ConnectTimeout and host key options
//   - Host key verification against known_hosts files
//   - Dialing directly or through a ProxyCommand
//   - Reading a remote machine's configuration files over SFTP
//
// Usage:
//
//	cfg, err := ssh.NewFromSSHConfig("web")
//	client, err := ssh.Dial(cfg)
package ssh
