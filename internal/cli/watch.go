package cli

import (
	"context"
	"fmt"
	"path/filepath"

	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func (a *App) newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch HOST",
		Short: "Print the options for HOST again whenever a configuration file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create file watcher: %w", err)
			}

			defer func() { _ = watcher.Close() }()

			// Watch directories so files that do not exist yet are noticed
			// when they are created.
			seen := make(map[string]bool)

			for _, f := range a.files() {
				dir := filepath.Dir(f)
				if seen[dir] {
					continue
				}

				seen[dir] = true

				if err := watcher.Add(dir); err != nil {
					a.logger.Debug("not watching directory", "dir", dir, "err", err)
				}
			}

			return a.watch(cmd.Context(), args[0], watcher.Events, watcher.Errors)
		},
	}

	cmd.Flags().StringP("format", "o", formatPretty, "output format: text, pretty, json or yaml")

	return cmd
}

// watch prints the settings for host, then prints them again after every
// event on one of the search list files that changes the result. It returns
// when ctx is done or events is closed.
func (a *App) watch(ctx context.Context, host string, events <-chan fsnotify.Event, errs <-chan error) error {
	files := a.files()

	watched := make(map[string]bool, len(files))
	for _, f := range files {
		watched[filepath.Clean(f)] = true
	}

	last := a.loader.Resolve(host, files)
	if err := render(a.out, last, a.cfg.Format); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if !ok {
				errs = nil

				continue
			}

			a.logger.Warn("file watcher error", "err", err)
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			if !watched[filepath.Clean(ev.Name)] {
				continue
			}

			a.logger.Debug("configuration changed", "path", ev.Name, "op", ev.Op.String())

			next := a.loader.Resolve(host, files)
			if sshconfig.Print(next) == sshconfig.Print(last) {
				continue
			}

			last = next

			fmt.Fprintln(a.out, infoStyle.Render("--- "+ev.Name+" changed"))

			if err := render(a.out, last, a.cfg.Format); err != nil {
				return err
			}
		}
	}
}
