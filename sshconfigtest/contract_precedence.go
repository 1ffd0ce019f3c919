package sshconfigtest

import (
	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/stretchr/testify/assert"
)

func precedenceContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryPrecedence,
			Name:        "host-over-file-defaults",
			Description: "A matching Host block outranks options set before any Host line in the same file",
			Files:       map[string]string{"config": "User alice\nHost web\n  User bob\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				files := []string{p("config")}

				assert.Equal(t, "bob", r.Resolve("web", files).String("User"))
				assert.Equal(t, "alice", r.Resolve("db", files).String("User"))
			},
		},
		{
			Category:    CategoryPrecedence,
			Name:        "first-file-wins",
			Description: "Earlier files win; later files only fill gaps",
			Files: map[string]string{
				"a": "Port 22\n",
				"b": "Port 2222\nUser carol\n",
			},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				got := r.Resolve("any", []string{p("a"), p("b")})

				assert.Equal(t, map[string]any{"Port": "22", "User": "carol"}, got.Map())
			},
		},
		{
			Category:    CategoryPrecedence,
			Name:        "first-block-wins",
			Description: "Within a file the first matching block to set an option wins",
			Files:       map[string]string{"config": "Host *\n  User generic\nHost web\n  User specific\n  Port 2022\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				got := r.Resolve("web", []string{p("config")})

				assert.Equal(t, "generic", got.String("User"))
				assert.Equal(t, "2022", got.String("Port"))
			},
		},
		{
			Category:    CategoryPrecedence,
			Name:        "existing-settings-win",
			Description: "LoadFile never overwrites options already present",
			Files:       map[string]string{"config": "User file\nHost *\n  Port 2022\n  Compression yes\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				in := sshconfig.NewSettings()
				in.SetDefault("User", "caller")
				in.SetDefault("Port", "22")

				got := r.LoadFile(p("config"), "web", in)

				assert.Equal(t, map[string]any{"User": "caller", "Port": "22", "Compression": "yes"}, got.Map())
			},
		},
	}
}
