package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve HOST",
		Short: "Print the effective options for HOST",
		Example: `  ssh-config resolve web
  ssh-config resolve -F ./ssh_config -o json db.example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			settings := a.loader.Resolve(args[0], a.files())

			a.logger.Debug("resolved host", "host", args[0], "options", settings.Len())

			return render(a.out, settings, a.cfg.Format)
		},
	}

	cmd.Flags().StringP("format", "o", formatPretty, "output format: text, pretty, json or yaml")

	return cmd
}
