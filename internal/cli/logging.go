package cli

import (
	"fmt"
	"io"
	"log/slog"

	log "github.com/charmbracelet/log"
)

// newLogger returns a slog.Logger rendered by charmbracelet/log.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "ssh-config",
	})

	return slog.New(handler), nil
}
