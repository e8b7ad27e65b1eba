package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	numformat "github.com/anacrolix/num-format"
	apperrors "github.com/anacrolix/num-format/internal/errors"
	"github.com/anacrolix/num-format/internal/ui"
)

// plainTheme disables colors for the duration of a test so output
// assertions can match exact strings.
func plainTheme(t *testing.T) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })
}

func TestDisplayValues(t *testing.T) {
	plainTheme(t)

	var out bytes.Buffer
	err := DisplayValues([]string{"1234567", "-42", "0"}, numformat.LocaleEn, false, &out)
	if err != nil {
		t.Fatalf("DisplayValues: %v", err)
	}
	want := "1,234,567\n-42\n0\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestDisplayValuesStopsAtBadToken(t *testing.T) {
	plainTheme(t)

	var out bytes.Buffer
	err := DisplayValues([]string{"1", "bad", "3"}, numformat.LocaleEn, false, &out)
	if err == nil {
		t.Fatal("DisplayValues succeeded, want error")
	}
	var ie apperrors.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("error %v, want InputError", err)
	}
	if ie.Token != "bad" {
		t.Errorf("InputError.Token = %q, want %q", ie.Token, "bad")
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q, want %q", out.String(), "1\n")
	}
}

func TestDisplayLocaleTable(t *testing.T) {
	plainTheme(t)

	var out bytes.Buffer
	DisplayLocaleTable(1234567, &out)
	output := out.String()

	for _, s := range []string{
		"Locale", "Grouping", "Separator", "Minus", "Sample",
		"1,234,567", // en
		"1.234.567", // de
		"12,34,567", // hi (Indian grouping)
		"standard", "indian", "posix",
		"locales.",
	} {
		if !strings.Contains(output, s) {
			t.Errorf("table output missing %q:\n%s", s, output)
		}
	}

	// One line per locale plus header and the count footer.
	gotLines := strings.Count(output, "\n")
	wantLines := len(numformat.AvailableLocaleNames()) + 3
	if gotLines != wantLines {
		t.Errorf("table has %d lines, want %d", gotLines, wantLines)
	}
}

func TestDisplayFormatDetails(t *testing.T) {
	plainTheme(t)

	var out bytes.Buffer
	DisplayFormatDetails("en", numformat.LocaleEn, &out)
	output := out.String()

	for _, s := range []string{
		"Active format: en",
		"Grouping:   standard",
		`Separator:  ","`,
		`Decimal:    "."`,
		`Minus sign: "-"`,
		`Plus sign:  "+"`,
	} {
		if !strings.Contains(output, s) {
			t.Errorf("details output missing %q:\n%s", s, output)
		}
	}
}

func TestFormatSymbolQuotesInvisibleSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{",", `","`},
		{"", `""`},
		{"\u00a0", `"\u00a0"`},
	}
	for _, tt := range tests {
		if got := FormatSymbol(tt.in); got != tt.want {
			t.Errorf("FormatSymbol(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := padRight("ab", 3); got != "ab   " {
		t.Errorf("padRight(ab, 3) = %q", got)
	}
	if got := padRight("ab", 0); got != "ab" {
		t.Errorf("padRight(ab, 0) = %q", got)
	}
	if got := padRight("ab", -2); got != "ab" {
		t.Errorf("padRight(ab, -2) = %q", got)
	}
}
