package numformat

// CustomFormat is a caller-assembled Format. Build one with
// NewCustomFormatBuilder, or derive one from an existing Format with
// CustomFormatFrom; a built CustomFormat is immutable.
type CustomFormat struct {
	dec  Decimal
	grp  Grouping
	inf  Infinity
	min  MinusSign
	nan  NaN
	plus PlusSign
	sep  Separator
}

var _ Format = (*CustomFormat)(nil)

// Decimal returns the format's decimal-point symbol.
func (f *CustomFormat) Decimal() Decimal { return f.dec }

// Grouping returns the format's digit-grouping policy.
func (f *CustomFormat) Grouping() Grouping { return f.grp }

// Infinity returns the format's infinity token.
func (f *CustomFormat) Infinity() Infinity { return f.inf }

// MinusSign returns the format's minus-sign symbol.
func (f *CustomFormat) MinusSign() MinusSign { return f.min }

// NaN returns the format's not-a-number token.
func (f *CustomFormat) NaN() NaN { return f.nan }

// PlusSign returns the format's plus-sign symbol.
func (f *CustomFormat) PlusSign() PlusSign { return f.plus }

// Separator returns the format's digit-group separator symbol.
func (f *CustomFormat) Separator() Separator { return f.sep }

// ToBuilder returns a builder seeded with f's symbols, for deriving a
// variant of an existing format.
func (f *CustomFormat) ToBuilder() *CustomFormatBuilder {
	return &CustomFormatBuilder{
		dec:  f.dec.str,
		grp:  f.grp,
		inf:  f.inf.str,
		min:  f.min.str,
		nan:  f.nan.str,
		plus: f.plus.str,
		sep:  f.sep.str,
	}
}

// CustomFormatFrom copies the symbols of any Format into a CustomFormat.
// Combined with ToBuilder, it tweaks an existing format:
//
//	f, err := numformat.CustomFormatFrom(numformat.LocaleEn).
//		ToBuilder().
//		Separator(" ").
//		Build()
//
// No validation runs because the source symbols are validated types
// already.
func CustomFormatFrom(f Format) *CustomFormat {
	return &CustomFormat{
		dec:  f.Decimal(),
		grp:  f.Grouping(),
		inf:  f.Infinity(),
		min:  f.MinusSign(),
		nan:  f.NaN(),
		plus: f.PlusSign(),
		sep:  f.Separator(),
	}
}

// CustomFormatBuilder assembles a CustomFormat from symbol overrides.
// Setters chain and never fail; Build performs all validation. Fields
// never set keep the POSIX-flavored ASCII defaults: "." decimal, ","
// separator, "-" minus sign, no plus sign, "inf", "NaN", standard
// grouping.
type CustomFormatBuilder struct {
	dec  string
	grp  Grouping
	inf  string
	min  string
	nan  string
	plus string
	sep  string
}

// NewCustomFormatBuilder returns a builder holding the default symbols.
func NewCustomFormatBuilder() *CustomFormatBuilder {
	return &CustomFormatBuilder{
		dec:  ".",
		grp:  GroupingStandard,
		inf:  "inf",
		min:  "-",
		nan:  "NaN",
		plus: "",
		sep:  ",",
	}
}

// Decimal sets the decimal-point symbol candidate.
func (b *CustomFormatBuilder) Decimal(s string) *CustomFormatBuilder { b.dec = s; return b }

// Grouping sets the digit-grouping policy.
func (b *CustomFormatBuilder) Grouping(g Grouping) *CustomFormatBuilder { b.grp = g; return b }

// Infinity sets the infinity token candidate.
func (b *CustomFormatBuilder) Infinity(s string) *CustomFormatBuilder { b.inf = s; return b }

// MinusSign sets the minus-sign symbol candidate.
func (b *CustomFormatBuilder) MinusSign(s string) *CustomFormatBuilder { b.min = s; return b }

// NaN sets the not-a-number token candidate.
func (b *CustomFormatBuilder) NaN(s string) *CustomFormatBuilder { b.nan = s; return b }

// PlusSign sets the plus-sign symbol candidate.
func (b *CustomFormatBuilder) PlusSign(s string) *CustomFormatBuilder { b.plus = s; return b }

// Separator sets the digit-group separator symbol candidate.
func (b *CustomFormatBuilder) Separator(s string) *CustomFormatBuilder { b.sep = s; return b }

// Build validates every candidate and returns the assembled format. The
// first violated rule is returned as a SymbolError and no format is
// produced; there is no partially valid result.
func (b *CustomFormatBuilder) Build() (*CustomFormat, error) {
	dec, err := NewDecimal(b.dec)
	if err != nil {
		return nil, err
	}
	inf, err := NewInfinity(b.inf)
	if err != nil {
		return nil, err
	}
	min, err := NewMinusSign(b.min)
	if err != nil {
		return nil, err
	}
	nan, err := NewNaN(b.nan)
	if err != nil {
		return nil, err
	}
	plus, err := NewPlusSign(b.plus)
	if err != nil {
		return nil, err
	}
	sep, err := NewSeparator(b.sep)
	if err != nil {
		return nil, err
	}
	return &CustomFormat{
		dec:  dec,
		grp:  b.grp,
		inf:  inf,
		min:  min,
		nan:  nan,
		plus: plus,
		sep:  sep,
	}, nil
}
