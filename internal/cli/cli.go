// Package cli wires configuration, logging, the task store and the
// terminal together behind the worklog command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idilsaglam/worklog/internal/config"
	"github.com/idilsaglam/worklog/internal/model"
	"github.com/idilsaglam/worklog/internal/store/sqlitestore"
	"github.com/idilsaglam/worklog/internal/ui"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks a mistake in the command line itself.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	dbPath     string
	theme      string
	verbose    bool
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "YAML config file (default $"+config.EnvVar+")")
	fs.StringVar(&o.dbPath, "db", "", "SQLite database file (overrides database.path)")
	fs.StringVar(&o.theme, "theme", "", "color theme: "+strings.Join(ui.ThemeNames(), ", "))
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log at debug level")
}

// App is one invocation of the command line.
type App struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	opts   options

	cfg    *config.Config
	logger *slog.Logger
	ui     *ui.UI
}

// NewApp returns an App reading answers from in.
func NewApp(in io.Reader, out, errOut io.Writer) *App {
	return &App{in: in, out: out, errOut: errOut}
}

// Run executes args on the process streams and returns an exit code
// (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return NewApp(os.Stdin, os.Stdout, os.Stderr).Run(args)
}

// Run executes args and returns an exit code (0 ok, 1 error, 2 usage).
func (a *App) Run(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return ExitOK
	}

	u := a.ui
	if u == nil {
		u = ui.New(a.out, a.errOut, ui.DefaultTheme)
	}
	u.Fail(err.Error())

	var usage usageError
	switch {
	case errors.As(err, &usage):
		fmt.Fprintln(a.errOut)
		fmt.Fprint(a.errOut, root.UsageString())
		return ExitUsage
	case errors.Is(err, model.ErrInvalid):
		return ExitUsage
	}
	return ExitError
}

func (a *App) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "worklog",
		Short: "Log, search and edit the tasks your team worked on",
		Long: `worklog keeps a log of completed tasks in a local SQLite file.

Run without a command for the interactive menu: add tasks, browse them one
at a time, and search by employee, duration, keyword, date or date range.`,
		Args:              noArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	a.opts.bind(root.PersistentFlags())

	root.AddCommand(
		a.addCmd(),
		a.lsCmd(),
		a.rmCmd(),
		a.exportCmd(),
		a.importCmd(),
	)
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: %s", cmd.UseLine())
		}
		return nil
	}
}

// setup loads configuration, applies flag overrides and builds the
// logger and UI.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}
	if a.opts.dbPath != "" {
		cfg.Database.Path = a.opts.dbPath
	}
	if a.opts.theme != "" {
		cfg.UI.Theme = a.opts.theme
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	level, _ := cfg.Log.SlogLevel()

	a.cfg = cfg
	a.logger = NewLogger(a.errOut, level, a.opts.verbose).With("command", cmd.Name())
	a.ui = ui.New(a.out, a.errOut, cfg.UI.Theme)
	return nil
}

// openStore opens the configured database. Callers close it.
func (a *App) openStore(ctx context.Context) (*sqlitestore.Store, error) {
	st, err := sqlitestore.Open(ctx, sqlitestore.Config{
		Path:     a.cfg.Database.Path,
		PoolSize: a.cfg.Database.PoolSize,
		Logger:   a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", a.cfg.Database.Path, err)
	}
	return st, nil
}

func (a *App) closeStore(st *sqlitestore.Store) {
	if err := st.Close(); err != nil {
		a.logger.Warn("close store", "error", err)
	}
}
