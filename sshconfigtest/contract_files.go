package sshconfigtest

import (
	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/stretchr/testify/assert"
)

func fileContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryFiles,
			Name:        "missing-file-unchanged",
			Description: "Loading a missing file returns the input settings unchanged",
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				in := sshconfig.NewSettings()
				in.SetDefault("User", "alice")
				in.Append(sshconfig.IdentityFile, "k")

				before := in.Clone().Map()

				assert.Equal(t, before, r.LoadFile(p("missing"), "web", in).Map())
			},
		},
		{
			Category:    CategoryFiles,
			Name:        "empty-file-unchanged",
			Description: "Loading an empty file returns the input settings unchanged",
			Files:       map[string]string{"config": ""},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				in := sshconfig.NewSettings()
				in.SetDefault("Port", "22")

				assert.Equal(t, map[string]any{"Port": "22"}, r.LoadFile(p("config"), "web", in).Map())
			},
		},
		{
			Category:    CategoryFiles,
			Name:        "missing-files-skipped",
			Description: "Missing files in the search list contribute nothing",
			Files:       map[string]string{"system": "User root\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				got := r.Resolve("web", []string{p("user"), p("system"), p("other")})

				assert.Equal(t, map[string]any{"User": "root"}, got.Map())
				assert.Equal(t, 0, r.Resolve("web", []string{p("user")}).Len())
			},
		},
	}
}
