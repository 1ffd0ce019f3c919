package sshconfigtest

import (
	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/stretchr/testify/assert"
)

func listContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryLists,
			Name:        "identity-files-accumulate",
			Description: "IdentityFile lines in one scope accumulate in file order",
			Files:       map[string]string{"config": "Host *\n  IdentityFile one\n  IdentityFile two\n  IdentityFile one\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				got := r.Resolve("web", []string{p("config")})

				assert.Equal(t, []string{"one", "two", "one"}, got.GetAll(sshconfig.IdentityFile))
			},
		},
		{
			Category:    CategoryLists,
			Name:        "identity-files-across-files",
			Description: "Entries of the more specific file come first",
			Files: map[string]string{
				"user":   "Host web\n  IdentityFile user_key\n",
				"system": "Host *\n  IdentityFile system_key\n",
			},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				got := r.Resolve("web", []string{p("user"), p("system")})

				assert.Equal(t, []string{"user_key", "system_key"}, got.GetAll(sshconfig.IdentityFile))
			},
		},
	}
}
