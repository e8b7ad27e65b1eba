// Package cli provides the REPL (Read-Eval-Print Loop) functionality
// for interactive number formatting.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	numformat "github.com/anacrolix/num-format"
	"github.com/anacrolix/num-format/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Format is the format the session starts with.
	Format numformat.Format
	// FormatName names the starting format for status display.
	FormatName string
	// Named maps config-file format names to their built formats.
	Named map[string]*numformat.CustomFormat
	// Big parses values as arbitrary-precision integers from the start.
	Big bool
}

// REPL represents an interactive number-formatting session.
type REPL struct {
	current     numformat.Format
	currentName string
	named       map[string]*numformat.CustomFormat
	big         bool
	signed      bool
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	current := config.Format
	name := config.FormatName
	if current == nil {
		current = numformat.LocaleEn
		name = numformat.LocaleEn.Name()
	}
	if name == "" {
		name = "custom"
	}

	return &REPL{
		current:     current,
		currentName: name,
		named:       config.Named,
		big:         config.Big,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorSuccess()+"numfmt> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorError(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorPrimary(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 numfmt - Interactive Locale Formatter%s             %s║%s\n",
		ui.ColorPrimary(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorPrimary(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorPrimary(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<value>%s        - Format an integer with the current format\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slocale <name>%s  - Switch to a built-in locale (BCP 47 tags match too)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssystem%s         - Switch to the operating system's numeric locale\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sformat <name>%s  - Switch to a named format from the config file\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scustom <k=v>%s   - Override symbols (separator, decimal, minus, plus, grouping)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssample%s         - Render a set of sample values\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s           - List built-in locales and named formats\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbig%s            - Toggle arbitrary-precision parsing\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssigned%s         - Toggle an explicit plus sign on positive values\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s         - Display the current format's symbols\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Exit interactive mode\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "locale", "l":
		r.cmdLocale(args)
	case "system", "sys":
		r.cmdSystem()
	case "format", "f":
		r.cmdFormat(args)
	case "custom", "set":
		r.cmdCustom(args)
	case "sample", "samples":
		r.cmdSample()
	case "list", "ls":
		r.cmdList()
	case "big":
		r.cmdBig()
	case "signed":
		r.cmdSigned()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorSuccess(), ui.ColorReset())
		return false
	default:
		// Bare input is formatted directly for quick exploration.
		r.formatToken(input)
	}

	return true
}

// formatToken renders one value under the current format and session
// toggles.
func (r *REPL) formatToken(tok string) {
	text, err := r.render(tok)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorError(), err, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorWarning(), ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorSuccess(), text, ui.ColorReset())
}

// render is the pure formatting step behind formatToken.
func (r *REPL) render(tok string) (string, error) {
	return FormatValueSigned(tok, r.current, r.big, r.signed)
}

// cmdLocale handles the "locale" command.
func (r *REPL) cmdLocale(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: locale <name>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	loc, err := numformat.MatchLocale(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown locale: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		fmt.Fprintf(r.out, "Type %slist%s to see the built-in locales.\n", ui.ColorWarning(), ui.ColorReset())
		return
	}

	r.current = loc
	r.currentName = loc.Name()
	fmt.Fprintf(r.out, "Locale changed to: %s%s%s\n", ui.ColorSuccess(), loc.Name(), ui.ColorReset())
}

// cmdSystem switches the session to the operating system's locale.
func (r *REPL) cmdSystem() {
	sys, err := numformat.CurrentSystemLocale()
	if err != nil {
		fmt.Fprintf(r.out, "%sCannot read the system locale: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}

	r.current = sys
	r.currentName = "system (" + sys.Name() + ")"
	fmt.Fprintf(r.out, "Using system locale: %s%s%s\n", ui.ColorSuccess(), sys.Name(), ui.ColorReset())
}

// cmdFormat handles the "format" command.
func (r *REPL) cmdFormat(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: format <name>%s\n", ui.ColorError(), ui.ColorReset())
		fmt.Fprintf(r.out, "Named formats: %s\n", r.namedList())
		return
	}

	name := args[0]
	f, ok := r.named[name]
	if !ok {
		fmt.Fprintf(r.out, "%sUnknown format: %s%s\n", ui.ColorError(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Named formats: %s\n", r.namedList())
		return
	}

	r.current = f
	r.currentName = name
	fmt.Fprintf(r.out, "Format changed to: %s%s%s\n", ui.ColorSuccess(), name, ui.ColorReset())
}

// namedList returns a comma-separated list of config-file format names.
func (r *REPL) namedList() string {
	if len(r.named) == 0 {
		return "(none loaded; pass --config)"
	}
	names := make([]string, 0, len(r.named))
	for name := range r.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// cmdCustom applies key=value symbol overrides on top of the current
// format through the checked builder, so invalid symbols are rejected
// with the library's own errors.
func (r *REPL) cmdCustom(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: custom <key=value>...%s\n", ui.ColorError(), ui.ColorReset())
		fmt.Fprintf(r.out, "Keys: separator, decimal, minus, plus, infinity, nan, grouping\n")
		return
	}

	b := numformat.CustomFormatFrom(r.current).ToBuilder()
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			fmt.Fprintf(r.out, "%sExpected key=value, got %q%s\n", ui.ColorError(), arg, ui.ColorReset())
			return
		}
		switch strings.ToLower(key) {
		case "separator", "sep":
			b.Separator(value)
		case "decimal", "dec":
			b.Decimal(value)
		case "minus":
			b.MinusSign(value)
		case "plus":
			b.PlusSign(value)
		case "infinity", "inf":
			b.Infinity(value)
		case "nan":
			b.NaN(value)
		case "grouping", "grp":
			g, err := numformat.ParseGrouping(value)
			if err != nil {
				fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorError(), err, ui.ColorReset())
				return
			}
			b.Grouping(g)
		default:
			fmt.Fprintf(r.out, "%sUnknown key: %s%s\n", ui.ColorError(), key, ui.ColorReset())
			return
		}
	}

	f, err := b.Build()
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}

	r.current = f
	r.currentName = "custom"
	fmt.Fprintf(r.out, "Custom format applied.\n")
}

// sampleValues are the magnitudes the "sample" command renders. The
// seven-digit value separates standard from Indian grouping, and the
// extremes exercise the sign and capacity paths.
var sampleValues = []string{
	"0",
	"42",
	"1234567",
	"-1234567",
	"9223372036854775807",
	"-9223372036854775808",
	"18446744073709551615",
}

// cmdSample renders the sample set under the current format.
func (r *REPL) cmdSample() {
	fmt.Fprintf(r.out, "\n%sSamples under %s:%s\n", ui.ColorBold(), r.currentName, ui.ColorReset())
	for _, tok := range sampleValues {
		text, err := r.render(tok)
		if err != nil {
			text = ui.ColorError() + err.Error() + ui.ColorReset()
		} else {
			text = ui.ColorSuccess() + text + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%20s%s  %s\n", ui.ColorSecondary(), tok, ui.ColorReset(), text)
	}
	fmt.Fprintln(r.out)
}

// cmdList lists the built-in locales and any named formats.
func (r *REPL) cmdList() {
	names := numformat.AvailableLocaleNames()
	fmt.Fprintf(r.out, "\n%sBuilt-in locales:%s\n", ui.ColorBold(), ui.ColorReset())
	for i, name := range names {
		marker := "  "
		if name == r.currentName {
			marker = ui.ColorSuccess() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-8s%s", marker, ui.ColorWarning(), name, ui.ColorReset())
		if (i+1)%6 == 0 {
			fmt.Fprintln(r.out)
		}
	}
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "\n%sNamed formats:%s %s\n\n", ui.ColorBold(), ui.ColorReset(), r.namedList())
}

// cmdBig toggles arbitrary-precision parsing.
func (r *REPL) cmdBig() {
	r.big = !r.big
	status := "disabled"
	if r.big {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Arbitrary-precision parsing: %s%s%s\n", ui.ColorSuccess(), status, ui.ColorReset())
}

// cmdSigned toggles the explicit plus sign on positive values.
func (r *REPL) cmdSigned() {
	r.signed = !r.signed
	status := "disabled"
	if r.signed {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Explicit plus sign: %s%s%s\n", ui.ColorSuccess(), status, ui.ColorReset())
}

// cmdStatus displays the current format and session toggles.
func (r *REPL) cmdStatus() {
	fmt.Fprintln(r.out)
	DisplayFormatDetails(r.currentName, r.current, r.out)
	onOff := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}
	fmt.Fprintf(r.out, "  Big:        %s%s%s\n", ui.ColorPrimary(), onOff(r.big), ui.ColorReset())
	fmt.Fprintf(r.out, "  Signed:     %s%s%s\n", ui.ColorPrimary(), onOff(r.signed), ui.ColorReset())
	fmt.Fprintln(r.out)
}
