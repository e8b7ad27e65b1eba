package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "name", "shell")
	IsFile    bool     // true if the flag takes a file path
	IsLocale  bool     // true if values come from the locale list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "locale", Short: "l", Help: "Format under a built-in locale", IsLocale: true, ValueName: "locale"},
	{Long: "system", Help: "Format under the OS numeric locale"},
	{Long: "format", Help: "Format under a named format from the config file", ValueName: "name"},
	{Long: "grouping", Help: "Override the grouping policy", Values: []string{"standard", "indian", "posix"}, ValueName: "policy"},
	{Long: "separator", Help: "Override the group separator symbol", ValueName: "symbol"},
	{Long: "decimal", Help: "Override the decimal symbol", ValueName: "symbol"},
	{Long: "minus", Help: "Override the minus-sign symbol", ValueName: "symbol"},
	{Long: "big", Help: "Parse values as arbitrary-precision integers"},
	{Long: "jobs", Help: "Stream-mode worker count", Values: []string{"1", "2", "4", "8", "16"}, ValueName: "count"},
	{Long: "progress", Help: "Show a spinner with a running count"},
	{Long: "list-locales", Help: "List the built-in locales"},
	{Long: "sample", Help: "Sample value for --list-locales", ValueName: "number"},
	{Long: "repl", Help: "Start the interactive prompt"},
	{Long: "tui", Help: "Start the full-screen locale explorer"},
	{Long: "config", Help: "YAML config file with named formats", IsFile: true, ValueName: "file"},
	{Long: "verbose", Short: "v", Help: "Log at debug level"},
	{Long: "quiet", Short: "q", Help: "Suppress everything except formatted output"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// zshHelpOverrides provides shell-specific help text overrides for zsh.
// Some flags have slightly different descriptions in zsh's _arguments format.
var zshHelpOverrides = map[string]string{
	"locale": "Built-in locale to format under",
	"sample": "Value rendered by --list-locales",
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - locales: List of built-in locale names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, locales []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, locales)
	case "zsh":
		return generateZshCompletion(out, locales)
	case "fish":
		return generateFishCompletion(out, locales)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, locales)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// formatLocaleList joins locale names with space separators.
func formatLocaleList(locales []string) string {
	return strings.Join(locales, " ")
}

// flagKey returns the identifier used for lookups: Long name if present, else Short.
func flagKey(f FlagCompletion) string {
	if f.Long != "" {
		return f.Long
	}
	return f.Short
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, locales []string) error {
	// Build opts string from registry
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	// Build case entries from registry.
	// Order: locale flags, then file flags, then static-value flags.
	type caseEntry struct {
		patterns []string
		body     string
	}
	var orderedCases []caseEntry

	for _, f := range flagRegistry {
		if f.IsLocale {
			patterns := []string{"--" + f.Long}
			if f.Short != "" {
				patterns = append(patterns, "-"+f.Short)
			}
			orderedCases = append(orderedCases, caseEntry{
				patterns: patterns,
				body:     `COMPREPLY=( $(compgen -W "${locales}" -- "${cur}") )`,
			})
		}
	}

	var filePatterns []string
	for _, f := range flagRegistry {
		if f.IsFile {
			if f.Long != "" {
				filePatterns = append(filePatterns, "--"+f.Long)
			}
			if f.Short != "" {
				filePatterns = append(filePatterns, "-"+f.Short)
			}
		}
	}
	if len(filePatterns) > 0 {
		orderedCases = append(orderedCases, caseEntry{
			patterns: filePatterns,
			body: `# File/directory completion
            COMPREPLY=( $(compgen -f -- "${cur}") )`,
		})
	}

	for _, f := range flagRegistry {
		if !f.IsLocale && !f.IsFile && len(f.Values) > 0 {
			orderedCases = append(orderedCases, caseEntry{
				patterns: []string{"--" + f.Long},
				body:     fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")),
			})
		}
	}

	// Format case entries
	var caseBody strings.Builder
	for _, c := range orderedCases {
		caseBody.WriteString("        ")
		caseBody.WriteString(strings.Join(c.patterns, "|"))
		caseBody.WriteString(")\n")
		caseBody.WriteString("            ")
		caseBody.WriteString(c.body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	localeList := formatLocaleList(locales)

	script := fmt.Sprintf(`# Bash completion script for numfmt
# Add this to your ~/.bashrc or ~/.bash_completion

_numfmt_completions() {
    local cur prev opts locales
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Built-in locales
    locales="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _numfmt_completions numfmt
`, strings.Join(opts, " "), localeList, caseBody.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, locales []string) error {
	// Build _arguments entries from registry
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	localeList := formatLocaleList(locales)

	script := fmt.Sprintf(`#compdef numfmt

# Zsh completion script for numfmt
# Add this to your ~/.zshrc or place in $fpath

_numfmt() {
    local -a locales
    locales=(%s)

    _arguments -s \
%s
}

_numfmt "$@"
`, localeList, strings.Join(args, " \\\n"))

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshHelp returns the help text for a flag in zsh, using an override if available.
func zshHelp(f FlagCompletion) string {
	key := flagKey(f)
	if override, ok := zshHelpOverrides[key]; ok {
		return override
	}
	return f.Help
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	help := zshHelp(f)

	// Build the value suffix
	valueSuffix := ""
	if f.IsFile {
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	} else if f.IsLocale {
		valueSuffix = fmt.Sprintf(":%s:($locales)", f.ValueName)
	} else if len(f.Values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	} else if f.ValueName != "" {
		// Value-taking flag with no suggestions (e.g., --separator)
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		// Has both short and long form
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, help, valueSuffix)
	}
	// Short only
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, locales []string) error {
	var lines []string

	lines = append(lines, "# Fish completion script for numfmt")
	lines = append(lines, "# Add this to ~/.config/fish/completions/numfmt.fish")
	lines = append(lines, "")
	lines = append(lines, "# Disable file completion by default")
	lines = append(lines, "complete -c numfmt -f")
	lines = append(lines, "")

	// Group flags into sections for comments.
	type section struct {
		comment string
		flags   []FlagCompletion
	}

	sections := []section{
		{comment: "# Help and version", flags: filterFlags("help", "version")},
		{comment: "# Format selection", flags: filterFlags("locale", "system", "format")},
		{comment: "# Symbol overrides", flags: filterFlags("grouping", "separator", "decimal", "minus")},
		{comment: "# Stream options", flags: filterFlags("big", "jobs", "progress")},
		{comment: "# Modes", flags: filterFlags("list-locales", "sample", "repl", "tui")},
		{comment: "# Other options", flags: filterFlags("config", "verbose", "quiet", "no-color", "completion")},
	}

	localeList := formatLocaleList(locales)

	for _, sec := range sections {
		lines = append(lines, sec.comment)
		for _, f := range sec.flags {
			lines = append(lines, fishCompleteLine(f, localeList))
		}
		lines = append(lines, "")
	}

	script := strings.Join(lines, "\n")

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// filterFlags returns flags from the registry matching the given identifiers.
// An identifier is a Long name, or "X_short" to match a flag by Short name only.
func filterFlags(ids ...string) []FlagCompletion {
	var result []FlagCompletion
	for _, id := range ids {
		if strings.HasSuffix(id, "_short") {
			short := strings.TrimSuffix(id, "_short")
			for _, f := range flagRegistry {
				if f.Short == short && f.Long == "" {
					result = append(result, f)
					break
				}
			}
		} else {
			for _, f := range flagRegistry {
				if f.Long == id {
					result = append(result, f)
					break
				}
			}
		}
	}
	return result
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, localeList string) string {
	var parts []string
	parts = append(parts, "complete -c numfmt")

	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	if f.IsFile {
		parts = append(parts, "-rF")
	} else if f.IsLocale {
		parts = append(parts, fmt.Sprintf("-xa '%s'", localeList))
	} else if len(f.Values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	} else if f.ValueName != "" {
		// Takes a value but no suggestions (e.g., --separator)
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}

// generatePowerShellCompletion generates a PowerShell completion script.
func generatePowerShellCompletion(out io.Writer, locales []string) error {
	// Build $options entries from registry
	var optionEntries []string
	for _, f := range flagRegistry {
		if f.Short != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '-%s'; Description = '%s' }", f.Short, f.Help))
		}
		if f.Long != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '--%s'; Description = '%s' }", f.Long, f.Help))
		}
	}

	// Build context-aware switch entries: locale flags first, then flags
	// with static values.
	var switchEntries []string

	psSwitchEntry := func(f FlagCompletion) string {
		var quotedVals []string
		for _, v := range f.Values {
			quotedVals = append(quotedVals, fmt.Sprintf("'%s'", v))
		}
		return fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quotedVals, ", "))
	}

	for _, f := range flagRegistry {
		if f.IsLocale {
			switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            $numfmtLocales | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long))
		}
	}

	for _, f := range flagRegistry {
		if !f.IsLocale && !f.IsFile && len(f.Values) > 0 {
			switchEntries = append(switchEntries, psSwitchEntry(f))
		}
	}

	// Format locale list for PowerShell
	psLocaleList := ""
	for i, loc := range locales {
		if i > 0 {
			psLocaleList += ", "
		}
		psLocaleList += fmt.Sprintf("'%s'", loc)
	}

	script := fmt.Sprintf(`# PowerShell completion script for numfmt
# Add this to your $PROFILE

$numfmtLocales = @(%s)

Register-ArgumentCompleter -CommandName 'numfmt' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $lastElement = if ($elements.Count -gt 1) { $elements[-1].ToString() } else { '' }
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    # Context-aware completions
    switch ($prevElement) {
%s
    }

    # Default: show options
    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, psLocaleList, strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}
