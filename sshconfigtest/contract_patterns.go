package sshconfigtest

import (
	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/stretchr/testify/assert"
)

func patternContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryPatterns,
			Name:        "star-subdomains",
			Description: "'*' matches any run of characters but the rest of the pattern is anchored",
			Files:       map[string]string{"config": "Host *.example.com\n  User star\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				files := []string{p("config")}

				assert.Equal(t, "star", r.Resolve("foo.example.com", files).String("User"))
				assert.Equal(t, "star", r.Resolve("a.b.example.com", files).String("User"))
				assert.False(t, r.Resolve("example.com", files).Has("User"))
			},
		},
		{
			Category:    CategoryPatterns,
			Name:        "question-single-char",
			Description: "'?' matches exactly one character",
			Files:       map[string]string{"config": "Host host?\n  User one\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				files := []string{p("config")}

				assert.True(t, r.Resolve("host1", files).Has("User"))
				assert.True(t, r.Resolve("hostA", files).Has("User"))
				assert.False(t, r.Resolve("host", files).Has("User"))
				assert.False(t, r.Resolve("host12", files).Has("User"))
			},
		},
		{
			Category:    CategoryPatterns,
			Name:        "case-insensitive",
			Description: "Host patterns compare case-insensitively",
			Files:       map[string]string{"config": "Host Web.Example.COM\n  Port 2200\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				assert.Equal(t, "2200", r.Resolve("web.example.com", []string{p("config")}).String("Port"))
			},
		},
		{
			Category:    CategoryPatterns,
			Name:        "any-of-several",
			Description: "A Host line with several patterns matches if any one does",
			Files:       map[string]string{"config": "Host alpha beta gamma*\n  User greek\n"},
			Run: func(t T, r *sshconfig.Resolver, p Paths) {
				files := []string{p("config")}

				for _, host := range []string{"alpha", "beta", "gamma-ray"} {
					assert.Equal(t, "greek", r.Resolve(host, files).String("User"), host)
				}

				assert.False(t, r.Resolve("delta", files).Has("User"))
			},
		},
	}
}
