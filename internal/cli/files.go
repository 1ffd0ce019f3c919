package cli

import (
	"fmt"

	"github.com/bigangswan/ssh-config/fileutil"
	"github.com/spf13/cobra"
)

func (a *App) newFilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List the search list and which files can be read",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintln(a.out, titleStyle.Render("Search list (most specific first)"))

			for i, p := range a.files() {
				status := missingStyle.Render("missing")
				if fileutil.Readable(a.fs, p) {
					status = passedStyle.Render("found")
				}

				fmt.Fprintf(a.out, "%d. %s %s\n", i+1, p, status)
			}

			return nil
		},
	}
}
