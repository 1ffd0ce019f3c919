package ssh

import (
	"fmt"

	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/bigangswan/ssh-config/fileutil"
	"github.com/pkg/sftp"
	"github.com/spf13/afero"
	"github.com/spf13/afero/sftpfs"
	"golang.org/x/crypto/ssh"
)

// Remote reads OpenSSH configuration files on a remote machine over SFTP.
type Remote struct {
	client *sftp.Client
	fs     afero.Fs
}

// OpenRemote starts an SFTP session on an established SSH connection.
func OpenRemote(client *ssh.Client) (*Remote, error) {
	sftpClient, err := sftp.NewClient(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create sftp client: %w", err)
	}

	return NewRemote(sftpClient), nil
}

// NewRemote wraps an existing SFTP session.
func NewRemote(client *sftp.Client) *Remote {
	return &Remote{client: client, fs: sftpfs.New(client)}
}

// Fs exposes the remote file system.
func (r *Remote) Fs() afero.Fs {
	return r.fs
}

// Resolve resolves hostname against files on the remote machine. Without
// files the conventional search list is used; "~/" paths are taken relative
// to the SFTP login directory.
func (r *Remote) Resolve(hostname string, files ...string) *sshconfig.Settings {
	if len(files) == 0 {
		files = sshconfig.DefaultFiles()
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = fileutil.TrimHome(f)
	}

	return sshconfig.New(sshconfig.WithFs(r.fs)).Resolve(hostname, paths)
}

// Close ends the SFTP session. The SSH connection stays open.
func (r *Remote) Close() error {
	return r.client.Close()
}
