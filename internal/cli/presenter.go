// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayValues], [DisplayLocaleTable], [DisplayFormatDetails].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatValue], [FormatSymbol], [FormatDuration].

package cli

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	numformat "github.com/anacrolix/num-format"
	"github.com/anacrolix/num-format/internal/ui"
)

// DisplayValues formats each argument under f and writes one rendering
// per line. It stops at the first token that fails to parse so that the
// exit status reflects the offending argument.
func DisplayValues(args []string, f numformat.Format, big bool, out io.Writer) error {
	for _, arg := range args {
		text, err := FormatValue(arg, f, big)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	}
	return nil
}

// FormatSymbol renders a symbol for tabular display. Symbols are quoted
// so that exotic separators (narrow no-break spaces, empty strings) stay
// visible in the table.
func FormatSymbol(s string) string {
	return strconv.Quote(s)
}

// DisplayLocaleTable prints every built-in locale with its grouping
// policy, its separator and minus-sign symbols, and a sample rendering.
// Uses manual padding to correctly handle ANSI color codes.
func DisplayLocaleTable(sample uint64, out io.Writer) {
	names := numformat.AvailableLocaleNames()

	type row struct {
		name, grouping, separator, minus, sample string
	}
	rows := make([]row, 0, len(names))

	// "Locale", "Grouping", "Separator", "Minus" header widths.
	nameLen, groupLen, sepLen, minusLen := 6, 8, 9, 5
	for _, name := range names {
		loc, err := numformat.LocaleFromName(name)
		if err != nil {
			continue
		}
		r := row{
			name:      name,
			grouping:  loc.Grouping().String(),
			separator: FormatSymbol(loc.Separator().String()),
			minus:     FormatSymbol(loc.MinusSign().String()),
			sample:    numformat.FormatUint(sample, loc),
		}
		rows = append(rows, r)
		if n := utf8.RuneCountInString(r.name); n > nameLen {
			nameLen = n
		}
		if n := utf8.RuneCountInString(r.grouping); n > groupLen {
			groupLen = n
		}
		if n := utf8.RuneCountInString(r.separator); n > sepLen {
			sepLen = n
		}
		if n := utf8.RuneCountInString(r.minus); n > minusLen {
			minusLen = n
		}
	}

	fmt.Fprintf(out, "%sLocale%s%s   %sGrouping%s%s   %sSeparator%s%s   %sMinus%s%s   %sSample%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", nameLen-6),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", groupLen-8),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", sepLen-9),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", minusLen-5),
		ui.ColorUnderline(), ui.ColorReset())

	for _, r := range rows {
		fmt.Fprintf(out, "%s%s%s%s   %s%s   %s%s   %s%s   %s%s%s\n",
			ui.ColorInfo(), r.name, ui.ColorReset(), padRight("", nameLen-utf8.RuneCountInString(r.name)),
			r.grouping, padRight("", groupLen-utf8.RuneCountInString(r.grouping)),
			r.separator, padRight("", sepLen-utf8.RuneCountInString(r.separator)),
			r.minus, padRight("", minusLen-utf8.RuneCountInString(r.minus)),
			ui.ColorSuccess(), r.sample, ui.ColorReset())
	}
	fmt.Fprintf(out, "\n%d locales.\n", len(rows))
}

// padRight returns s followed by the given number of spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// DisplayFormatDetails prints the properties of the active format: its
// grouping policy and each symbol the integer engine consumes.
func DisplayFormatDetails(name string, f numformat.Format, out io.Writer) {
	fmt.Fprintf(out, "%sActive format:%s %s%s%s\n", ui.ColorBold(), ui.ColorReset(), ui.ColorInfo(), name, ui.ColorReset())
	fmt.Fprintf(out, "  Grouping:   %s%s%s\n", ui.ColorPrimary(), f.Grouping(), ui.ColorReset())
	fmt.Fprintf(out, "  Separator:  %s%s%s\n", ui.ColorPrimary(), FormatSymbol(f.Separator().String()), ui.ColorReset())
	fmt.Fprintf(out, "  Decimal:    %s%s%s\n", ui.ColorPrimary(), FormatSymbol(f.Decimal().String()), ui.ColorReset())
	fmt.Fprintf(out, "  Minus sign: %s%s%s\n", ui.ColorPrimary(), FormatSymbol(f.MinusSign().String()), ui.ColorReset())
	fmt.Fprintf(out, "  Plus sign:  %s%s%s\n", ui.ColorPrimary(), FormatSymbol(f.PlusSign().String()), ui.ColorReset())
}
