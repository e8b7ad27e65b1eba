package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	numformat "github.com/anacrolix/num-format"
	apperrors "github.com/anacrolix/num-format/internal/errors"
)

func TestNewParsesFlags(t *testing.T) {
	application, err := New([]string{"numfmt", "--locale", "de", "--big"}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if application.Config.LocaleName != "de" {
		t.Errorf("expected locale de, got %q", application.Config.LocaleName)
	}
	if !application.Config.Big {
		t.Error("expected big mode on")
	}
	if application.Config.Jobs < 1 {
		t.Errorf("expected adaptive jobs to fill a positive worker count, got %d", application.Config.Jobs)
	}
}

func TestNewHelpError(t *testing.T) {
	_, err := New([]string{"numfmt", "--help"}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for --help")
	}
	if !IsHelpError(err) {
		t.Errorf("expected a help error, got %v", err)
	}
}

func TestNewRejectsUnknownFlag(t *testing.T) {
	_, err := New([]string{"numfmt", "--no-such-flag"}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
	if IsHelpError(err) {
		t.Error("unknown flag should not be reported as a help request")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numfmt.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestNewLoadsConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
default_locale: de
formats:
  under:
    separator: "_"
  indian:
    grouping: indian
`)

	application, err := New([]string{"numfmt", "--config", path}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if application.File == nil || application.File.DefaultLocale != "de" {
		t.Fatal("expected the config file default locale to be loaded")
	}
	if len(application.Named) != 2 {
		t.Fatalf("expected 2 named formats, got %d", len(application.Named))
	}
	if _, ok := application.Named["under"]; !ok {
		t.Error("expected the under format to be loaded")
	}
}

func TestNewRejectsInvalidConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
formats:
  broken:
    separator: "0"
`)

	var errBuf bytes.Buffer
	_, err := New([]string{"numfmt", "--config", path}, &errBuf)
	if err == nil {
		t.Fatal("expected an error for a digit separator")
	}
	if !strings.Contains(err.Error(), "forbidden") {
		t.Errorf("expected a forbidden-character error, got %v", err)
	}
}

func TestNewRejectsMissingConfigFile(t *testing.T) {
	_, err := New([]string{"numfmt", "--config", "/no/such/file.yaml"}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestResolveFormatDefaultsToEn(t *testing.T) {
	application, err := New([]string{"numfmt"}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	f, name, err := application.resolveFormat()
	if err != nil {
		t.Fatalf("resolveFormat failed: %v", err)
	}
	if name != "en" {
		t.Errorf("expected default format en, got %s", name)
	}
	if got := numformat.FormatUint(1234567, f); got != "1,234,567" {
		t.Errorf("expected 1,234,567, got %s", got)
	}
}

func TestResolveFormatLocaleFlag(t *testing.T) {
	application, err := New([]string{"numfmt", "--locale", "de_DE.UTF-8"}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	f, name, err := application.resolveFormat()
	if err != nil {
		t.Fatalf("resolveFormat failed: %v", err)
	}
	if name != "de" {
		t.Errorf("expected matched locale de, got %s", name)
	}
	if got := numformat.FormatUint(1234567, f); got != "1.234.567" {
		t.Errorf("expected 1.234.567, got %s", got)
	}
}

func TestResolveFormatUnknownLocale(t *testing.T) {
	application, err := New([]string{"numfmt", "--locale", "!!!"}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, _, err = application.resolveFormat()
	if err == nil {
		t.Fatal("expected an error for an unmatchable locale")
	}
	if exitCodeFor(err) != apperrors.ExitErrorLocale {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitErrorLocale, exitCodeFor(err))
	}
}

func TestResolveFormatNamed(t *testing.T) {
	path := writeConfigFile(t, `
formats:
  under:
    separator: "_"
    grouping: indian
`)

	application, err := New([]string{"numfmt", "--config", path, "--format", "under"}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	f, name, err := application.resolveFormat()
	if err != nil {
		t.Fatalf("resolveFormat failed: %v", err)
	}
	if name != "under" {
		t.Errorf("expected format name under, got %s", name)
	}
	if got := numformat.FormatUint(1234567, f); got != "12_34_567" {
		t.Errorf("expected 12_34_567, got %s", got)
	}
}

func TestResolveFormatUnknownNamed(t *testing.T) {
	path := writeConfigFile(t, `
formats:
  under:
    separator: "_"
`)

	application, err := New([]string{"numfmt", "--config", path, "--format", "missing"}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, _, err = application.resolveFormat()
	if err == nil {
		t.Fatal("expected an error for an unknown named format")
	}
	if !strings.Contains(err.Error(), "under") {
		t.Errorf("expected the error to list available formats, got %v", err)
	}
	if exitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitErrorConfig, exitCodeFor(err))
	}
}

func TestResolveFormatFileDefaultLocale(t *testing.T) {
	path := writeConfigFile(t, "default_locale: fr\n")

	application, err := New([]string{"numfmt", "--config", path}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, name, err := application.resolveFormat()
	if err != nil {
		t.Fatalf("resolveFormat failed: %v", err)
	}
	if name != "fr" {
		t.Errorf("expected config default locale fr, got %s", name)
	}
}

func TestResolveFormatFlagBeatsFileDefault(t *testing.T) {
	path := writeConfigFile(t, "default_locale: fr\n")

	application, err := New([]string{"numfmt", "--config", path, "--locale", "de"}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, name, err := application.resolveFormat()
	if err != nil {
		t.Fatalf("resolveFormat failed: %v", err)
	}
	if name != "de" {
		t.Errorf("expected the locale flag to win, got %s", name)
	}
}

func TestResolveFormatOverrides(t *testing.T) {
	application, err := New([]string{"numfmt", "--locale", "en", "--separator", " ", "--grouping", "indian"}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	f, _, err := application.resolveFormat()
	if err != nil {
		t.Fatalf("resolveFormat failed: %v", err)
	}
	if got := numformat.FormatUint(1234567, f); got != "12 34 567" {
		t.Errorf("expected 12 34 567, got %s", got)
	}
}

func TestResolveFormatRejectsBadOverride(t *testing.T) {
	application, err := New([]string{"numfmt", "--separator", "7"}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, _, err = application.resolveFormat()
	if err == nil {
		t.Fatal("expected an error for a digit separator")
	}
	if exitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitErrorConfig, exitCodeFor(err))
	}
}

func runApp(t *testing.T, args []string, stdin string) (int, string, string) {
	t.Helper()

	var errBuf bytes.Buffer
	opts := []AppOption{}
	if stdin != "" {
		opts = append(opts, WithInput(strings.NewReader(stdin)))
	}
	application, err := New(append([]string{"numfmt"}, args...), &errBuf, opts...)
	if err != nil {
		t.Fatalf("New failed: %v (stderr: %s)", err, errBuf.String())
	}

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	return code, out.String(), errBuf.String()
}

func TestRunArgsMode(t *testing.T) {
	code, out, _ := runApp(t, []string{"--locale", "de", "1234567", "-42"}, "")
	if code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit code %d", code)
	}
	if out != "1.234.567\n-42\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunArgsModeBadToken(t *testing.T) {
	code, _, errOut := runApp(t, []string{"frobnicate"}, "")
	if code != apperrors.ExitErrorInput {
		t.Fatalf("expected exit code %d, got %d", apperrors.ExitErrorInput, code)
	}
	if !strings.Contains(errOut, "cannot parse") {
		t.Errorf("expected a parse error on stderr, got %q", errOut)
	}
}

func TestRunStreamMode(t *testing.T) {
	code, out, _ := runApp(t, nil, "1000 2000\n3000")
	if code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit code %d", code)
	}
	if out != "1,000\n2,000\n3,000\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunStreamModeDash(t *testing.T) {
	code, out, _ := runApp(t, []string{"-"}, "1000 2000")
	if code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit code %d", code)
	}
	if out != "1,000\n2,000\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunStreamModeBadToken(t *testing.T) {
	code, _, errOut := runApp(t, nil, "1000 oops")
	if code != apperrors.ExitErrorInput {
		t.Fatalf("expected exit code %d, got %d", apperrors.ExitErrorInput, code)
	}
	if !strings.Contains(errOut, "token 2") {
		t.Errorf("expected the failing token position on stderr, got %q", errOut)
	}
}

func TestRunListLocales(t *testing.T) {
	code, out, _ := runApp(t, []string{"--list-locales"}, "")
	if code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit code %d", code)
	}
	for _, want := range []string{"en", "1,234,567", "1.234.567", "locales."} {
		if !strings.Contains(out, want) {
			t.Errorf("expected locale table to contain %q", want)
		}
	}
}

func TestRunCompletion(t *testing.T) {
	code, out, _ := runApp(t, []string{"--completion", "bash"}, "")
	if code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit code %d", code)
	}
	if !strings.Contains(out, "_numfmt_completions") {
		t.Error("expected a bash completion function")
	}
}

func TestRunCompletionUnknownShell(t *testing.T) {
	code, _, errOut := runApp(t, []string{"--completion", "tcsh"}, "")
	if code != apperrors.ExitErrorConfig {
		t.Fatalf("expected exit code %d, got %d", apperrors.ExitErrorConfig, code)
	}
	if !strings.Contains(errOut, "unsupported shell") {
		t.Errorf("expected an unsupported-shell error, got %q", errOut)
	}
}

func TestRunREPLMode(t *testing.T) {
	code, out, _ := runApp(t, []string{"--repl"}, "1234567\nexit\n")
	if code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit code %d", code)
	}
	if !strings.Contains(out, "1,234,567") {
		t.Error("expected the prompt to format the value")
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Error("expected the exit farewell")
	}
}

func TestRunUnknownBaseLocale(t *testing.T) {
	code, _, errOut := runApp(t, []string{"--locale", "!!!", "42"}, "")
	if code != apperrors.ExitErrorLocale {
		t.Fatalf("expected exit code %d, got %d", apperrors.ExitErrorLocale, code)
	}
	if !strings.Contains(errOut, "unknown locale") {
		t.Errorf("expected an unknown-locale error, got %q", errOut)
	}
}

func TestExitCodeFor(t *testing.T) {
	separatorErr := func() error {
		_, err := numformat.NewSeparator("0")
		return err
	}()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperrors.ExitSuccess},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"deadline", context.DeadlineExceeded, apperrors.ExitErrorCanceled},
		{"input", apperrors.InputError{Token: "x"}, apperrors.ExitErrorInput},
		{"wrapped input", apperrors.WrapError(apperrors.InputError{Token: "x"}, "input token 3"), apperrors.ExitErrorInput},
		{"locale", numformat.LocaleError{Name: "zz"}, apperrors.ExitErrorLocale},
		{"provider", numformat.ProviderError{Op: "environment"}, apperrors.ExitErrorLocale},
		{"config", apperrors.NewConfigError("bad"), apperrors.ExitErrorConfig},
		{"validation", apperrors.ValidationError{Field: "jobs"}, apperrors.ExitErrorConfig},
		{"symbol", separatorErr, apperrors.ExitErrorConfig},
		{"generic", io.ErrUnexpectedEOF, apperrors.ExitErrorGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCodeFor(tc.err); got != tc.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestHasVersionFlag(t *testing.T) {
	if !HasVersionFlag([]string{"--version"}) {
		t.Error("expected --version to be detected")
	}
	if !HasVersionFlag([]string{"--locale", "de", "-V"}) {
		t.Error("expected -V to be detected among other flags")
	}
	if HasVersionFlag([]string{"--locale", "de"}) {
		t.Error("expected no version flag")
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "numfmt") {
		t.Errorf("expected the version banner to name the tool, got %q", buf.String())
	}
}
