package cli

import (
	"encoding/json"
	"fmt"
	"io"

	sshconfig "github.com/bigangswan/ssh-config"
	"gopkg.in/yaml.v3"
)

const (
	formatText   = "text"
	formatPretty = "pretty"
	formatJSON   = "json"
	formatYAML   = "yaml"
)

// render writes settings to w in the named format.
func render(w io.Writer, s *sshconfig.Settings, format string) error {
	switch format {
	case formatText, formatPretty:
		out := sshconfig.PrettyPrint(s)
		if format == formatText {
			out = sshconfig.Print(s)
		}

		if out == "" {
			return nil
		}

		_, err := fmt.Fprintln(w, out)

		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(s)
	case formatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}

		_, err = w.Write(data)

		return err
	default:
		return fmt.Errorf("unknown output format %q (want text, pretty, json or yaml)", format)
	}
}
