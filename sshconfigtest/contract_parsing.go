package sshconfigtest

import (
	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/stretchr/testify/assert"
)

func parsingContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryParsing,
			Name:        "equals-form",
			Description: "key=value and key = value are accepted",
			Files:       map[string]string{"config": "User=alice\nPort = 2022\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				got := r.Resolve("web", []string{p("config")})

				assert.Equal(t, map[string]any{"User": "alice", "Port": "2022"}, got.Map())
			},
		},
		{
			Category:    CategoryParsing,
			Name:        "quoted-values",
			Description: "One layer of double quotes is stripped and the inner text kept verbatim",
			Files:       map[string]string{"config": "IdentityFile \"/keys/a value with spaces\"\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				got := r.Resolve("web", []string{p("config")})

				assert.Equal(t, []string{"/keys/a value with spaces"}, got.GetAll(sshconfig.IdentityFile))
			},
		},
		{
			Category:    CategoryParsing,
			Name:        "malformed-skipped",
			Description: "A key without a value is skipped without affecting other options",
			Files:       map[string]string{"config": "# comment\n\nCompression\nUser alice\n   \nPort 22\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				got := r.Resolve("web", []string{p("config")})

				assert.Equal(t, map[string]any{"User": "alice", "Port": "22"}, got.Map())
			},
		},
		{
			Category:    CategoryParsing,
			Name:        "keys-case-sensitive",
			Description: "Option names are stored as written and not normalized",
			Files:       map[string]string{"config": "user lower\nUser upper\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				got := r.Resolve("web", []string{p("config")})

				assert.Equal(t, map[string]any{"user": "lower", "User": "upper"}, got.Map())
			},
		},
	}
}
