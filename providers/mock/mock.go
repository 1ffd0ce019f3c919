package mock

import (
	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/stretchr/testify/mock"
)

// Loader implements a mock sshconfig.Loader using testify/mock.
type Loader struct {
	mock.Mock
}

var _ sshconfig.Loader = (*Loader)(nil)

// New creates a new mock loader.
func New() *Loader {
	return &Loader{}
}

// LoadFile mocks merging one file into settings.
func (m *Loader) LoadFile(path, hostname string, settings *sshconfig.Settings) *sshconfig.Settings {
	args := m.Called(path, hostname, settings)
	if args.Get(0) == nil {
		return settings
	}

	return args.Get(0).(*sshconfig.Settings) //nolint:forcetypeassert
}

// Resolve mocks resolving a host against files.
func (m *Loader) Resolve(hostname string, files []string) *sshconfig.Settings {
	args := m.Called(hostname, files)
	if args.Get(0) == nil {
		return sshconfig.NewSettings()
	}

	return args.Get(0).(*sshconfig.Settings) //nolint:forcetypeassert
}

// OnResolve is a helper that expects Resolve for hostname with any files and
// returns settings.
func (m *Loader) OnResolve(hostname string, settings *sshconfig.Settings) *mock.Call {
	return m.On("Resolve", hostname, mock.Anything).Return(settings)
}
