package sshconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	t.Parallel()

	s := NewSettings()
	s.SetDefault("User", "alice")
	s.SetDefault("Port", "22")
	s.Append(IdentityFile, "~/.ssh/a")
	s.Append(IdentityFile, "~/.ssh/b")

	assert.Equal(t, "IdentityFile\t~/.ssh/a ~/.ssh/b\nPort\t22\nUser\talice", Print(s))
	assert.Equal(t, "IdentityFile\t~/.ssh/a ~/.ssh/b\nPort        \t22\nUser        \talice", PrettyPrint(s))
}

func TestPrint_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Print(NewSettings()))
	assert.Empty(t, PrettyPrint(NewSettings()))
}
