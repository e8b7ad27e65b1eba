package numformat

import (
	"errors"
	"sort"
	"testing"
)

// TestLocaleTableValid pushes every table row through the checked symbol
// constructors. The accessors skip validation for speed, so this test is
// what guarantees that no built-in locale can ever hand the write path a
// symbol a CustomFormat would have rejected.
func TestLocaleTableValid(t *testing.T) {
	t.Parallel()
	seen := make(map[string]Locale, numLocales)
	for l := LocaleC; l < numLocales; l++ {
		name := l.Name()
		if name == "" {
			t.Errorf("locale %d has an empty name", int(l))
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("locales %d and %d share the name %q", int(prev), int(l), name)
		}
		seen[name] = l

		if _, err := NewDecimal(l.Decimal().String()); err != nil {
			t.Errorf("%s: decimal %q: %v", name, l.Decimal(), err)
		}
		if _, err := NewSeparator(l.Separator().String()); err != nil {
			t.Errorf("%s: separator %q: %v", name, l.Separator(), err)
		}
		if _, err := NewMinusSign(l.MinusSign().String()); err != nil {
			t.Errorf("%s: minus sign %q: %v", name, l.MinusSign(), err)
		}
		if _, err := NewPlusSign(l.PlusSign().String()); err != nil {
			t.Errorf("%s: plus sign %q: %v", name, l.PlusSign(), err)
		}
		if _, err := NewInfinity(l.Infinity().String()); err != nil {
			t.Errorf("%s: infinity %q: %v", name, l.Infinity(), err)
		}
		if _, err := NewNaN(l.NaN().String()); err != nil {
			t.Errorf("%s: NaN %q: %v", name, l.NaN(), err)
		}
		if grp := l.Grouping(); grp != GroupingStandard && grp != GroupingIndian && grp != GroupingPosix {
			t.Errorf("%s: unknown grouping %d", name, int(grp))
		}
	}
}

func TestLocaleFormats(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		locale Locale
		value  int64
		want   string
	}{
		{LocaleC, 1000000, "1000000"},
		{LocaleEn, 1000000, "1,000,000"},
		{LocaleDe, 1000000, "1.000.000"},
		{LocaleHi, 1000000, "10,00,000"},
		{LocaleEnIN, 123456789, "12,34,56,789"},
		{LocaleFr, 1234567, "1 234 567"},
		{LocaleFi, -1234567, "−1 234 567"},
		{LocaleRu, -1234567, "-1 234 567"},
		{LocaleBn, 9876543210, "9,87,65,43,210"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.locale.Name(), func(t *testing.T) {
			t.Parallel()
			if got := FormatInt(tc.value, tc.locale); got != tc.want {
				t.Errorf("FormatInt(%d, %s) = %q, want %q", tc.value, tc.locale, got, tc.want)
			}
		})
	}
}

func TestLocaleSymbols(t *testing.T) {
	t.Parallel()
	if got := LocaleC.Separator().String(); got != "" {
		t.Errorf("C separator = %q, want empty", got)
	}
	if got := LocaleC.Grouping(); got != GroupingPosix {
		t.Errorf("C grouping = %v, want posix", got)
	}
	if got := LocaleAr.Decimal().String(); got != "٫" {
		t.Errorf("ar decimal = %q, want U+066B", got)
	}
	if got := LocaleAr.Separator().String(); got != "٬" {
		t.Errorf("ar separator = %q, want U+066C", got)
	}
	if got := LocaleAr.MinusSign().String(); got != "؜-" {
		t.Errorf("ar minus sign = %q, want U+061C plus hyphen", got)
	}
	if got := LocaleFi.NaN().String(); got != "epäluku" {
		t.Errorf("fi NaN = %q", got)
	}
	if got := LocaleRu.NaN().String(); got != "не число" {
		t.Errorf("ru NaN = %q", got)
	}
	if got := LocaleZhHant.NaN().String(); got != "非數值" {
		t.Errorf("zh-Hant NaN = %q", got)
	}
	if got := LocaleEn.Infinity().String(); got != "∞" {
		t.Errorf("en infinity = %q", got)
	}
}

func TestLocaleFromName(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		want Locale
		ok   bool
	}{
		{"en", LocaleEn, true},
		{"pt-PT", LocalePtPT, true},
		{"zh-Hant", LocaleZhHant, true},
		{"C", LocaleC, true},
		{"POSIX", LocaleC, true},
		{"EN", 0, false}, // exact lookup is case-sensitive
		{"en_US", 0, false},
		{"xx", 0, false},
		{"", 0, false},
	}

	for _, tc := range testCases {
		got, err := LocaleFromName(tc.name)
		if tc.ok {
			if err != nil {
				t.Errorf("LocaleFromName(%q) failed: %v", tc.name, err)
				continue
			}
			if got != tc.want {
				t.Errorf("LocaleFromName(%q) = %v, want %v", tc.name, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("LocaleFromName(%q) = %v, want error", tc.name, got)
			continue
		}
		if !errors.Is(err, ErrUnknownLocale) {
			t.Errorf("LocaleFromName(%q) error %v does not wrap ErrUnknownLocale", tc.name, err)
		}
		var locErr LocaleError
		if !errors.As(err, &locErr) {
			t.Errorf("LocaleFromName(%q) error %v is not a LocaleError", tc.name, err)
		} else if locErr.Name != tc.name {
			t.Errorf("LocaleError.Name = %q, want %q", locErr.Name, tc.name)
		}
	}
}

func TestMatchLocale(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		want Locale
		ok   bool
	}{
		{"en", LocaleEn, true},
		{"en_US.UTF-8", LocaleEn, true},
		{"en-IN", LocaleEnIN, true},
		{"fr-CA", LocaleFr, true},
		{"fr_FR.UTF-8@euro", LocaleFr, true},
		{"de_DE@euro", LocaleDe, true},
		{"de-AT", LocaleDe, true},
		{"hi_IN.UTF-8", LocaleHi, true},
		{"pt_BR", LocalePt, true},
		{"sv_SE", LocaleSv, true},
		{"C", LocaleC, true},
		{"POSIX", LocaleC, true},
		{"  en  ", LocaleEn, true},
		{"", 0, false},
		{"!!!", 0, false},
		{"zz-ZZ", 0, false},
	}

	for _, tc := range testCases {
		got, err := MatchLocale(tc.name)
		if tc.ok {
			if err != nil {
				t.Errorf("MatchLocale(%q) failed: %v", tc.name, err)
				continue
			}
			if got != tc.want {
				t.Errorf("MatchLocale(%q) = %v, want %v", tc.name, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("MatchLocale(%q) = %v, want error", tc.name, got)
			continue
		}
		if !errors.Is(err, ErrUnknownLocale) {
			t.Errorf("MatchLocale(%q) error %v does not wrap ErrUnknownLocale", tc.name, err)
		}
	}
}

func TestAvailableLocaleNames(t *testing.T) {
	t.Parallel()
	names := AvailableLocaleNames()
	if len(names) != int(numLocales) {
		t.Fatalf("got %d names, want %d", len(names), int(numLocales))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("names are not sorted")
	}
	for _, name := range names {
		if _, err := LocaleFromName(name); err != nil {
			t.Errorf("listed name %q does not resolve: %v", name, err)
		}
	}
}

func TestLocaleTextRoundTrip(t *testing.T) {
	t.Parallel()
	for l := LocaleC; l < numLocales; l++ {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatalf("%s: MarshalText failed: %v", l, err)
		}
		var back Locale
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("%s: UnmarshalText(%q) failed: %v", l, text, err)
		}
		if back != l {
			t.Errorf("round trip %s -> %q -> %s", l, text, back)
		}
	}

	var l Locale
	if err := l.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText accepted an unknown name")
	} else if !errors.Is(err, ErrUnknownLocale) {
		t.Errorf("UnmarshalText error %v does not wrap ErrUnknownLocale", err)
	}
}
