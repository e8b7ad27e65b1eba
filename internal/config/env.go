// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the NUMFMT_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable
// overrides, grouped by value shape (string, numeric, bool).
var envOverrides = []envOverride{
	// String overrides
	{"LOCALE", []string{"locale", "l"}, func(c *AppConfig, v string) {
		c.LocaleName = v
	}},
	{"FORMAT", []string{"format"}, func(c *AppConfig, v string) {
		c.FormatName = v
	}},
	{"CONFIG", []string{"config"}, func(c *AppConfig, v string) {
		c.ConfigFile = v
	}},
	{"GROUPING", []string{"grouping"}, func(c *AppConfig, v string) {
		c.GroupingName = v
		c.GroupingSet = true
	}},
	{"SEPARATOR", []string{"separator"}, func(c *AppConfig, v string) {
		c.Separator = v
		c.SeparatorSet = true
	}},
	{"DECIMAL", []string{"decimal"}, func(c *AppConfig, v string) {
		c.Decimal = v
		c.DecimalSet = true
	}},
	{"MINUS", []string{"minus"}, func(c *AppConfig, v string) {
		c.MinusSign = v
		c.MinusSignSet = true
	}},

	// Numeric overrides
	{"JOBS", []string{"jobs"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Jobs = parsed
		}
	}},
	{"SAMPLE", []string{"sample"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Sample = parsed
		}
	}},

	// Boolean overrides
	{"SYSTEM", []string{"system"}, func(c *AppConfig, v string) {
		c.UseSystem = parseBoolEnv(v, c.UseSystem)
	}},
	{"BIG", []string{"big"}, func(c *AppConfig, v string) {
		c.Big = parseBoolEnv(v, c.Big)
	}},
	{"PROGRESS", []string{"progress"}, func(c *AppConfig, v string) {
		c.Progress = parseBoolEnv(v, c.Progress)
	}},
	{"VERBOSE", []string{"verbose", "v"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with NUMFMT_):
//   - LOCALE, FORMAT, CONFIG, GROUPING, SEPARATOR, DECIMAL, MINUS,
//     JOBS, SAMPLE, SYSTEM, BIG, PROGRESS, VERBOSE, QUIET, TUI, NO_COLOR
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
