// Package mock provides a controllable implementation of sshconfig.Loader
// for testing purposes.
//
// It allows defining expectations for file loads and resolutions, enabling
// deterministic unit tests for code that consumes resolved settings.
//
// Usage:
//
//	m := mock.New()
//	m.OnResolve("web", settings)
//	// pass 'm' to your logic
package mock
