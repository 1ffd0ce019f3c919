// Package cli implements the ssh-config command line tool.
//
// Global flags may also be given as SSHCONFIG_* environment variables or in
// a YAML file (--config, or ssh-config.yaml in the user config directory).
package cli
