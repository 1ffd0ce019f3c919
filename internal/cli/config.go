package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings shared by all commands.
type Config struct {
	Files       []string
	MultiValued []string
	LogLevel    string
	Format      string
}

// loadConfig merges, lowest first: defaults, the YAML config file,
// SSHCONFIG_* variables and explicitly set flags.
func loadConfig(cmd *cobra.Command, fs afero.Fs) (Config, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetDefault("log-level", "warn")
	v.SetDefault("format", formatPretty)

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ssh-config")
		v.SetConfigType("yaml")

		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "ssh-config"))
		}

		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Only a missing file found by searching is fine.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error loading config: %w", err)
		}
	}

	v.SetEnvPrefix("sshconfig")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}

	return Config{
		Files:       v.GetStringSlice("file"),
		MultiValued: v.GetStringSlice("multi-valued"),
		LogLevel:    v.GetString("log-level"),
		Format:      v.GetString("format"),
	}, nil
}
