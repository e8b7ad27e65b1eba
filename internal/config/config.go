// Package config holds the numfmt tool's configuration: flag parsing,
// NUMFMT_* environment overrides and the optional YAML file with named
// custom formats. Priority is CLI flags > environment > config file >
// defaults.
package config

import (
	"flag"
	"fmt"
	"io"

	numformat "github.com/anacrolix/num-format"
	apperrors "github.com/anacrolix/num-format/internal/errors"
)

// EnvPrefix is prepended to every environment variable this tool reads.
const EnvPrefix = "NUMFMT_"

// DefaultSample is the value --list-locales renders next to each locale.
// Seven digits make standard and Indian grouping visibly different.
const DefaultSample uint64 = 1234567

// AppConfig carries every setting of a numfmt run.
type AppConfig struct {
	// Format selection, in ascending precedence when several are given:
	// LocaleName, then UseSystem, then FormatName, then the ad-hoc
	// symbol overrides below on top of whichever base was selected.
	LocaleName string
	UseSystem  bool
	FormatName string

	// Ad-hoc symbol overrides applied through the format builder. The
	// *Set fields record whether a value arrived via flag or environment,
	// because the empty string is a meaningful separator or sign value.
	GroupingName string
	GroupingSet  bool
	Separator    string
	SeparatorSet bool
	Decimal      string
	DecimalSet   bool
	MinusSign    string
	MinusSignSet bool

	// Stream mode.
	Big      bool
	Jobs     int
	Progress bool

	// Alternate run modes.
	ListLocales bool
	Sample      uint64
	REPL        bool
	TUI         bool
	Completion  string

	// Ambient settings.
	ConfigFile string
	Verbose    bool
	Quiet      bool
	NoColor    bool

	// Args holds the positional arguments left after flag parsing.
	Args []string
}

// DefaultConfig returns the configuration a bare `numfmt` run starts from.
func DefaultConfig() AppConfig {
	return AppConfig{
		Sample: DefaultSample,
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not set on the command line, and
// validates the result. Usage and parse errors are written to errWriter
// by the flag package.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.LocaleName, "locale", cfg.LocaleName, "format under this built-in locale (see --list-locales)")
	fs.StringVar(&cfg.LocaleName, "l", cfg.LocaleName, "alias for --locale")
	fs.BoolVar(&cfg.UseSystem, "system", cfg.UseSystem, "format under the operating system's numeric locale")
	fs.StringVar(&cfg.FormatName, "format", cfg.FormatName, "format under a named format from the config file")

	fs.StringVar(&cfg.GroupingName, "grouping", cfg.GroupingName, "override the grouping policy: standard, indian or posix")
	fs.StringVar(&cfg.Separator, "separator", cfg.Separator, "override the group separator symbol")
	fs.StringVar(&cfg.Decimal, "decimal", cfg.Decimal, "override the decimal symbol")
	fs.StringVar(&cfg.MinusSign, "minus", cfg.MinusSign, "override the minus-sign symbol")

	fs.BoolVar(&cfg.Big, "big", cfg.Big, "parse stream values as arbitrary-precision integers")
	fs.IntVar(&cfg.Jobs, "jobs", cfg.Jobs, "stream-mode worker count (0 = pick from CPU count)")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "show a spinner with a running line count in stream mode")

	fs.BoolVar(&cfg.ListLocales, "list-locales", cfg.ListLocales, "print the built-in locales with a sample rendering and exit")
	fs.Uint64Var(&cfg.Sample, "sample", cfg.Sample, "value rendered next to each locale by --list-locales")
	fs.BoolVar(&cfg.REPL, "repl", cfg.REPL, "start the interactive prompt")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "start the full-screen locale explorer")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "print a completion script for the named shell and exit")

	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file with named formats")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log at debug level")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "alias for --verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress everything except formatted output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "alias for --quiet")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)
	cfg.noteOverrides(fs)
	cfg.Args = fs.Args()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// noteOverrides records which symbol overrides were set explicitly on the
// command line. Environment-sourced overrides mark themselves when
// applied.
func (c *AppConfig) noteOverrides(fs *flag.FlagSet) {
	c.GroupingSet = c.GroupingSet || isFlagSet(fs, "grouping")
	c.SeparatorSet = c.SeparatorSet || isFlagSet(fs, "separator")
	c.DecimalSet = c.DecimalSet || isFlagSet(fs, "decimal")
	c.MinusSignSet = c.MinusSignSet || isFlagSet(fs, "minus")
}

// Validate rejects settings no run mode could honor.
func (c *AppConfig) Validate() error {
	if c.Jobs < 0 {
		return apperrors.ValidationError{Field: "jobs", Message: "must be zero or positive"}
	}

	modes := 0
	for _, on := range []bool{c.ListLocales, c.REPL, c.TUI, c.Completion != ""} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("--list-locales, --repl, --tui and --completion are mutually exclusive")
	}

	if c.GroupingSet {
		if _, err := numformat.ParseGrouping(c.GroupingName); err != nil {
			return apperrors.WrapError(err, "--grouping")
		}
	}
	if c.UseSystem && c.LocaleName != "" {
		return apperrors.NewConfigError("--system and --locale are mutually exclusive")
	}
	return nil
}

// HasOverrides reports whether any ad-hoc symbol override was given, i.e.
// whether the selected base format needs a builder pass.
func (c *AppConfig) HasOverrides() bool {
	return c.GroupingSet || c.SeparatorSet || c.DecimalSet || c.MinusSignSet
}
