package numformat

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one entry of the built-in, CLDR-derived locale table.
// A Locale is itself a Format, so it can be passed straight to the
// formatting engine:
//
//	numformat.FormatInt(1000000, numformat.LocaleDe) // 1.000.000
//
// The zero value is LocaleC, the POSIX C locale (no separators).
type Locale int

const (
	LocaleC Locale = iota
	LocaleAr
	LocaleBg
	LocaleBn
	LocaleCs
	LocaleDa
	LocaleDe
	LocaleEl
	LocaleEn
	LocaleEnIN
	LocaleEs
	LocaleEt
	LocaleFa
	LocaleFi
	LocaleFr
	LocaleGu
	LocaleHe
	LocaleHi
	LocaleHr
	LocaleHu
	LocaleId
	LocaleIt
	LocaleJa
	LocaleKn
	LocaleKo
	LocaleLt
	LocaleLv
	LocaleMr
	LocaleNb
	LocaleNl
	LocalePl
	LocalePt
	LocalePtPT
	LocaleRo
	LocaleRu
	LocaleSk
	LocaleSl
	LocaleSr
	LocaleSv
	LocaleSw
	LocaleTa
	LocaleTe
	LocaleTh
	LocaleTr
	LocaleUk
	LocaleUr
	LocaleVi
	LocaleZh
	LocaleZhHant

	numLocales // sentinel, keep last
)

var _ Format = LocaleEn

// entry returns the locale's table row. An out-of-range Locale panics,
// like any out-of-range index.
func (l Locale) entry() *localeEntry { return &localeTable[l] }

// Name returns the locale's identifier, such as "en" or "pt-PT".
func (l Locale) Name() string { return l.entry().name }

// String returns the locale's identifier.
func (l Locale) String() string { return l.Name() }

// Decimal returns the locale's decimal-point symbol.
func (l Locale) Decimal() Decimal { return Decimal{str: l.entry().dec} }

// Grouping returns the locale's digit-grouping policy.
func (l Locale) Grouping() Grouping { return l.entry().grp }

// Infinity returns the locale's infinity token.
func (l Locale) Infinity() Infinity { return Infinity{str: l.entry().inf} }

// MinusSign returns the locale's minus-sign symbol.
func (l Locale) MinusSign() MinusSign { return MinusSign{str: l.entry().min} }

// NaN returns the locale's not-a-number token.
func (l Locale) NaN() NaN { return NaN{str: l.entry().nan} }

// PlusSign returns the locale's plus-sign symbol.
func (l Locale) PlusSign() PlusSign { return PlusSign{str: l.entry().plus} }

// Separator returns the locale's digit-group separator symbol.
func (l Locale) Separator() Separator { return Separator{str: l.entry().sep} }

// MarshalText encodes the locale as its Name, for text-based
// configuration formats.
func (l Locale) MarshalText() ([]byte, error) { return []byte(l.Name()), nil }

// UnmarshalText decodes a locale from its exact Name.
func (l *Locale) UnmarshalText(text []byte) error {
	loc, err := LocaleFromName(string(text))
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

// localeByName indexes the table by identifier, plus the customary POSIX
// alias.
var localeByName = func() map[string]Locale {
	m := make(map[string]Locale, numLocales+1)
	for l := LocaleC; l < numLocales; l++ {
		m[l.Name()] = l
	}
	m["POSIX"] = LocaleC
	return m
}()

// LocaleFromName returns the locale whose identifier is exactly name
// ("POSIX" is accepted for LocaleC). The match is case-sensitive; use
// MatchLocale for lenient matching of OS-style locale strings.
func LocaleFromName(name string) (Locale, error) {
	if l, ok := localeByName[name]; ok {
		return l, nil
	}
	return LocaleC, LocaleError{Name: name}
}

// AvailableLocaleNames returns the identifiers of every built-in locale,
// sorted.
func AvailableLocaleNames() []string {
	names := make([]string, 0, numLocales)
	for l := LocaleC; l < numLocales; l++ {
		names = append(names, l.Name())
	}
	sort.Strings(names)
	return names
}

// localeMatcher maps BCP-47 tags onto table entries; matcherLocales keeps
// the Locale for each tag handed to the matcher, in the same order.
var localeMatcher, matcherLocales = newLocaleMatcher()

func newLocaleMatcher() (language.Matcher, []Locale) {
	tags := make([]language.Tag, 0, numLocales)
	locs := make([]Locale, 0, numLocales)
	for l := LocaleC; l < numLocales; l++ {
		if l == LocaleC {
			// "C" is not a language tag.
			continue
		}
		tag, err := language.Parse(l.Name())
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		locs = append(locs, l)
	}
	return language.NewMatcher(tags), locs
}

// MatchLocale finds the built-in locale best matching name, which may be
// a BCP-47 tag ("fr-CA"), a POSIX locale string ("fr_FR.UTF-8@euro"), or
// "C"/"POSIX". The codeset and modifier suffixes are ignored and the
// underscore separator is treated as a hyphen. When no entry matches with
// any confidence, a LocaleError wrapping ErrUnknownLocale is returned.
func MatchLocale(name string) (Locale, error) {
	normalized := normalizeLocaleName(name)
	if normalized == "" {
		return LocaleC, LocaleError{Name: name}
	}
	if l, ok := localeByName[normalized]; ok {
		return l, nil
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return LocaleC, LocaleError{Name: name}
	}
	_, index, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return LocaleC, LocaleError{Name: name}
	}
	return matcherLocales[index], nil
}

// normalizeLocaleName strips the codeset and modifier of a POSIX locale
// string ("fr_FR.UTF-8@euro" becomes "fr_FR") and canonicalizes the
// underscore separator to the BCP-47 hyphen.
func normalizeLocaleName(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
}
