package numformat

// SystemLocale is a Format whose symbols came from the operating system
// rather than the built-in table. Obtain one with CurrentSystemLocale or
// SystemLocaleFromName; both backends validate every symbol through this
// package's constructors before returning, so a SystemLocale in hand
// formats without error like any other Format.
//
// The only mutation points are SetInfinity and SetNaN, which exist
// because no platform reports those two tokens. Mutate before sharing.
type SystemLocale struct {
	name string
	dec  Decimal
	grp  Grouping
	inf  Infinity
	min  MinusSign
	nan  NaN
	plus PlusSign
	sep  Separator
}

var _ Format = (*SystemLocale)(nil)

// Name returns the platform's name for the locale, such as
// "fr_FR.UTF-8" on Unix or "de-DE" on Windows.
func (s *SystemLocale) Name() string { return s.name }

// Decimal returns the locale's decimal-point symbol.
func (s *SystemLocale) Decimal() Decimal { return s.dec }

// Grouping returns the locale's digit-grouping policy.
func (s *SystemLocale) Grouping() Grouping { return s.grp }

// Infinity returns the locale's infinity token.
func (s *SystemLocale) Infinity() Infinity { return s.inf }

// MinusSign returns the locale's minus-sign symbol.
func (s *SystemLocale) MinusSign() MinusSign { return s.min }

// NaN returns the locale's not-a-number token.
func (s *SystemLocale) NaN() NaN { return s.nan }

// PlusSign returns the locale's plus-sign symbol.
func (s *SystemLocale) PlusSign() PlusSign { return s.plus }

// Separator returns the locale's digit-group separator symbol.
func (s *SystemLocale) Separator() Separator { return s.sep }

// SetInfinity replaces the infinity token after validating the candidate.
func (s *SystemLocale) SetInfinity(v string) error {
	inf, err := NewInfinity(v)
	if err != nil {
		return err
	}
	s.inf = inf
	return nil
}

// SetNaN replaces the not-a-number token after validating the candidate.
func (s *SystemLocale) SetNaN(v string) error {
	nan, err := NewNaN(v)
	if err != nil {
		return err
	}
	s.nan = nan
	return nil
}

// CurrentSystemLocale returns the numeric locale the operating system
// reports for the current process: the POSIX LC_ALL/LC_NUMERIC/LANG
// resolution on Unix, the user's international settings on Windows. The
// query may read the environment or the registry, so callers formatting
// on a hot path should fetch it once and reuse it.
//
// The returned error matches ErrProviderUnavailable whenever the platform
// reports no usable locale or reports symbols that fail validation.
func CurrentSystemLocale() (*SystemLocale, error) { return currentSystemLocale() }

// SystemLocaleFromName returns the system locale for a platform-specific
// name, such as "nl_NL.UTF-8" on Unix or "nl-NL" on Windows.
func SystemLocaleFromName(name string) (*SystemLocale, error) { return systemLocaleFromName(name) }

// SystemLocaleNames returns the locale names the platform can resolve,
// sorted.
func SystemLocaleNames() ([]string, error) { return systemLocaleNames() }

// newSystemLocale copies a table entry into a SystemLocale carrying the
// platform-reported name.
func newSystemLocale(name string, loc Locale) *SystemLocale {
	return &SystemLocale{
		name: name,
		dec:  loc.Decimal(),
		grp:  loc.Grouping(),
		inf:  loc.Infinity(),
		min:  loc.MinusSign(),
		nan:  loc.NaN(),
		plus: loc.PlusSign(),
		sep:  loc.Separator(),
	}
}
