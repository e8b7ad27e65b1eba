//go:build windows

package numformat

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// intlKeyPath is where Windows keeps the current user's regional number
// settings, including any customizations made in the control panel.
const intlKeyPath = `Control Panel\International`

// currentSystemLocale reads the user's number formatting settings from
// the registry. Every symbol passes through the package's validating
// constructors; a value Windows reports that fails validation surfaces as
// a provider error rather than a malformed Format.
func currentSystemLocale() (*SystemLocale, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, intlKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return nil, ProviderError{Op: "registry", Cause: err}
	}
	defer k.Close()

	name, _, err := k.GetStringValue("LocaleName")
	if err != nil {
		return nil, ProviderError{Op: "registry", Cause: err}
	}
	dec, err := stringValue(k, "sDecimal")
	if err != nil {
		return nil, err
	}
	sep, err := stringValue(k, "sThousand")
	if err != nil {
		return nil, err
	}
	min, err := stringValue(k, "sNegativeSign")
	if err != nil {
		return nil, err
	}
	plus, err := stringValue(k, "sPositiveSign")
	if err != nil {
		return nil, err
	}
	grpStr, err := stringValue(k, "sGrouping")
	if err != nil {
		return nil, err
	}

	grp, err := parseWindowsGrouping(grpStr)
	if err != nil {
		return nil, err
	}
	decimal, err := NewDecimal(dec)
	if err != nil {
		return nil, ProviderError{Op: "validate", Cause: err}
	}
	separator, err := NewSeparator(sep)
	if err != nil {
		return nil, ProviderError{Op: "validate", Cause: err}
	}
	minus, err := NewMinusSign(min)
	if err != nil {
		return nil, ProviderError{Op: "validate", Cause: err}
	}
	plusSign, err := NewPlusSign(plus)
	if err != nil {
		return nil, ProviderError{Op: "validate", Cause: err}
	}

	loc := &SystemLocale{
		name: name,
		dec:  decimal,
		grp:  grp,
		min:  minus,
		plus: plusSign,
		sep:  separator,
	}
	// Windows reports no infinity or NaN tokens; start from the usual
	// defaults and let SetInfinity/SetNaN override.
	loc.inf, _ = NewInfinity("∞")
	loc.nan, _ = NewNaN("NaN")
	return loc, nil
}

// stringValue reads one registry string, translating failures into
// provider errors.
func stringValue(k registry.Key, name string) (string, error) {
	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", ProviderError{Op: "registry", Cause: fmt.Errorf("read %s: %w", name, err)}
	}
	return v, nil
}

// parseWindowsGrouping maps the registry's sGrouping notation onto a
// Grouping. The notation lists group sizes left of the decimal point,
// separated by semicolons, with a trailing 0 repeating the last size:
// "3;0" groups by threes, "3;2;0" is the Indian convention, "0" disables
// grouping. Anything else has no Grouping equivalent and fails.
func parseWindowsGrouping(s string) (Grouping, error) {
	switch strings.TrimSpace(s) {
	case "3;0":
		return GroupingStandard, nil
	case "3;2;0":
		return GroupingIndian, nil
	case "0":
		return GroupingPosix, nil
	}
	return GroupingStandard, ProviderError{Op: "grouping", Cause: fmt.Errorf("unsupported sGrouping %q", s)}
}

// systemLocaleFromName resolves a Windows locale name like "de-DE"
// against the built-in table. Only the current locale carries the user's
// registry customizations; named lookups format with stock CLDR symbols.
func systemLocaleFromName(name string) (*SystemLocale, error) {
	loc, err := MatchLocale(name)
	if err != nil {
		return nil, ProviderError{Op: "match", Cause: err}
	}
	return newSystemLocale(name, loc), nil
}

func systemLocaleNames() ([]string, error) {
	return AvailableLocaleNames(), nil
}
