//go:build !windows

package numformat

import "os"

// numericLocaleVars are the environment variables consulted for the
// numeric locale, highest precedence first, per POSIX: LC_ALL overrides
// LC_NUMERIC overrides LANG.
var numericLocaleVars = [...]string{"LC_ALL", "LC_NUMERIC", "LANG"}

// currentSystemLocale resolves the process environment to a locale. An
// empty numeric environment selects the C locale, mirroring setlocale's
// behavior; a set but unresolvable name is a provider failure, not a
// silent fallback.
func currentSystemLocale() (*SystemLocale, error) {
	for _, v := range numericLocaleVars {
		if val := os.Getenv(v); val != "" {
			return systemLocaleFromName(val)
		}
	}
	return newSystemLocale("C", LocaleC), nil
}

// systemLocaleFromName resolves a POSIX locale string like
// "fr_FR.UTF-8@euro" against the built-in table and carries the original
// name on the result. Symbol data comes from the CLDR table; querying
// libc's localeconv would need cgo, and the table covers the same ground.
func systemLocaleFromName(name string) (*SystemLocale, error) {
	loc, err := MatchLocale(name)
	if err != nil {
		return nil, ProviderError{Op: "environment", Cause: err}
	}
	return newSystemLocale(name, loc), nil
}

func systemLocaleNames() ([]string, error) {
	return AvailableLocaleNames(), nil
}
