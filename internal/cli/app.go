package cli

import (
	"io"
	"log/slog"
	"os"

	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/bigangswan/ssh-config/fileutil"
	"github.com/bigangswan/ssh-config/providers/local"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var version = "dev" // set by the linker

// App carries the state shared by all commands.
type App struct {
	fs     afero.Fs
	out    io.Writer
	errOut io.Writer

	// loader is fixed by WithLoader; otherwise built from cfg per run.
	loader   sshconfig.Loader
	injected bool

	cfg    Config
	logger *slog.Logger
}

// Option defines a functional option for the CLI.
type Option func(*App)

// WithFs reads configuration files from fs instead of the OS file system.
func WithFs(fs afero.Fs) Option {
	return func(a *App) {
		a.fs = fs
	}
}

// WithOutput redirects command output and diagnostics.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithLoader replaces the resolver used by resolve and watch.
func WithLoader(l sshconfig.Loader) Option {
	return func(a *App) {
		a.loader = l
		a.injected = l != nil
	}
}

// NewRootCommand builds the ssh-config command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &App{
		fs:     afero.NewOsFs(),
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "ssh-config",
		Short:         "Resolve and check OpenSSH client configuration",
		Long:          `Computes the options ssh would use for a host from the user and system configuration files.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML file with default flag values")
	flags.StringSliceP("file", "F", nil, "configuration file to read, most specific first (repeatable)")
	flags.StringSlice("multi-valued", nil, "additional options that accumulate like IdentityFile")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		a.newResolveCommand(),
		a.newCheckCommand(),
		a.newWatchCommand(),
		a.newFilesCommand(),
		a.newContractsCommand(),
	)

	return root
}

func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, a.fs)
	if err != nil {
		return err
	}

	logger, err := newLogger(a.errOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	if !a.injected {
		a.loader = local.New(
			local.WithFs(a.fs),
			local.WithFiles(a.files()...),
			local.WithLogger(logger),
			local.WithMultiValued(cfg.MultiValued...),
		)
	}

	logger.Debug("configuration loaded", "files", a.files(), "format", cfg.Format)

	return nil
}

// files returns the expanded search list, most specific first.
func (a *App) files() []string {
	if len(a.cfg.Files) > 0 {
		return fileutil.ExpandAll(a.cfg.Files)
	}

	return fileutil.ExpandAll(sshconfig.DefaultFiles())
}

// resolver returns a plain resolver over the app's file system.
func (a *App) resolver() *sshconfig.Resolver {
	return sshconfig.New(
		sshconfig.WithFs(a.fs),
		sshconfig.WithLogger(a.logger),
		sshconfig.WithMultiValued(a.cfg.MultiValued...),
	)
}
