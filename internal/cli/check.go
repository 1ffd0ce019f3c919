package cli

import (
	"bytes"
	"fmt"

	"github.com/bigangswan/ssh-config/fileutil"
	"github.com/kevinburke/ssh_config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func (a *App) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE...]",
		Short: "Report lines that resolution skips or takes literally",
		Long: `Runs the lenient line checks of the resolver and the strict grammar of
github.com/kevinburke/ssh_config over each file. Without arguments the
search list is checked.`,
		RunE: func(_ *cobra.Command, args []string) error {
			paths := fileutil.ExpandAll(args)
			if len(paths) == 0 {
				paths = fileutil.Existing(a.fs, a.files())
			}

			total := 0
			for _, p := range paths {
				n, err := a.checkFile(p)
				if err != nil {
					return err
				}

				total += n
			}

			if total > 0 {
				return fmt.Errorf("%d problem(s) found", total)
			}

			return nil
		},
	}
}

// checkFile prints the problems of one file and returns how many it found.
func (a *App) checkFile(path string) (int, error) {
	problems, err := a.resolver().LintFile(path)
	if err != nil {
		return 0, err
	}

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return 0, fmt.Errorf("failed to read ssh config: %w", err)
	}

	_, strictErr := ssh_config.Decode(bytes.NewReader(data))

	if len(problems) == 0 && strictErr == nil {
		fmt.Fprintln(a.out, checkStyle.Render("✅ "+path))

		return 0, nil
	}

	fmt.Fprintln(a.out, errorStyle.Render("❌ "+path))

	for _, p := range problems {
		fmt.Fprintf(a.out, "  - %s\n", p)
	}

	n := len(problems)

	if strictErr != nil {
		fmt.Fprintf(a.out, "  - strict: %v\n", strictErr)

		n++
	}

	return n, nil
}
