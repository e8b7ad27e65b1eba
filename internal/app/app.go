// Package app wires configuration, format resolution and the run modes
// of the numfmt tool.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	numformat "github.com/anacrolix/num-format"
	"github.com/anacrolix/num-format/internal/cli"
	"github.com/anacrolix/num-format/internal/config"
	apperrors "github.com/anacrolix/num-format/internal/errors"
	"github.com/anacrolix/num-format/internal/logging"
	"github.com/anacrolix/num-format/internal/tui"
	"github.com/anacrolix/num-format/internal/ui"
)

// Application represents the numfmt tool instance.
type Application struct {
	Config config.AppConfig
	File   *config.FileConfig
	Named  map[string]*numformat.CustomFormat

	In        io.Reader
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the stream-mode input reader. Defaults to stdin.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line
// arguments and loading the optional YAML config file.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}

	programName := "numfmt"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	if cfg.ConfigFile != "" {
		fc, err := config.LoadFile(cfg.ConfigFile)
		if err != nil {
			fmt.Fprintln(errWriter, err)
			return nil, err
		}
		named, err := fc.BuildFormats()
		if err != nil {
			fmt.Fprintln(errWriter, err)
			return nil, err
		}
		app.File = fc
		app.Named = named
	}

	app.Config = config.ApplyAdaptiveJobs(cfg)
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	a.initLogging()
	ui.InitTheme(a.Config.NoColor)

	format, name, err := a.resolveFormat()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	a.Logger.Debug("format resolved",
		logging.String("format", name),
		logging.String("grouping", format.Grouping().String()),
		logging.Bool("big", a.Config.Big))

	switch {
	case a.Config.ListLocales:
		return a.runListLocales(out)
	case a.Config.REPL:
		return a.runREPL(format, name, out)
	case a.Config.TUI:
		return a.runTUI(ctx, name)
	case len(a.Config.Args) == 1 && a.Config.Args[0] == "-":
		// A lone "-" names stdin.
		return a.runStream(ctx, format, out)
	case len(a.Config.Args) > 0:
		return a.runArgs(format, out)
	default:
		return a.runStream(ctx, format, out)
	}
}

// initLogging sets the global log level from the quiet and verbose flags.
func (a *Application) initLogging() {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, numformat.AvailableLocaleNames()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runListLocales prints the locale table and exits.
func (a *Application) runListLocales(out io.Writer) int {
	cli.DisplayLocaleTable(a.Config.Sample, out)
	return apperrors.ExitSuccess
}

// runREPL starts the interactive prompt.
func (a *Application) runREPL(f numformat.Format, name string, out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{
		Format:     f,
		FormatName: name,
		Named:      a.Named,
		Big:        a.Config.Big,
	})
	if a.In != nil {
		repl.SetInput(a.In)
	}
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the full-screen locale explorer.
func (a *Application) runTUI(ctx context.Context, startLocale string) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config, startLocale, Version)
}

// runArgs formats the positional arguments, one per output line.
func (a *Application) runArgs(f numformat.Format, out io.Writer) int {
	if err := cli.DisplayValues(a.Config.Args, f, a.Config.Big, out); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// runStream formats whitespace-separated values from the input stream
// until EOF, honoring SIGINT and SIGTERM.
func (a *Application) runStream(ctx context.Context, f numformat.Format, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var reporter cli.ProgressReporter
	progressOut := a.ErrWriter
	if a.Config.Progress && !a.Config.Quiet {
		reporter = cli.SpinnerProgressReporter{Format: f}
	} else {
		reporter = cli.NullProgressReporter{}
		progressOut = io.Discard
	}

	in := a.In
	if in == nil {
		in = os.Stdin
	}

	pipeline := cli.StreamPipeline{
		Format:   f,
		Big:      a.Config.Big,
		Jobs:     a.Config.Jobs,
		Reporter: reporter,
		Logger:   a.Logger,
	}

	if _, err := pipeline.Run(ctx, in, out, progressOut); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
