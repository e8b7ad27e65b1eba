package numformat

import "unicode/utf8"

// Maximum encoded byte lengths for each symbol kind. The Buffer capacity
// is derived from these, so a symbol that passed validation can never
// overflow the formatting path.
const (
	MaxDecimalLen   = 8
	MaxSeparatorLen = 8
	MaxMinusSignLen = 8
	MaxPlusSignLen  = 8
	MaxInfinityLen  = 128
	MaxNaNLen       = 64
)

// validateSymbol enforces the shared rules for symbols that sit next to
// digits: encoded length within limit, valid UTF-8, and no ASCII digit
// characters (a digit inside a separator or sign would make formatted
// output ambiguous to parse back).
func validateSymbol(kind SymbolKind, s string, limit int) error {
	if len(s) > limit {
		return errSymbolTooLong(kind, s, limit)
	}
	if !utf8.ValidString(s) {
		return errSymbolForbidden(kind, s, limit)
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return errSymbolForbidden(kind, s, limit)
		}
	}
	return nil
}

// validateToken enforces the rules for standalone tokens (infinity, NaN),
// which never neighbor digits: encoded length within limit and valid
// UTF-8.
func validateToken(kind SymbolKind, s string, limit int) error {
	if len(s) > limit {
		return errSymbolTooLong(kind, s, limit)
	}
	if !utf8.ValidString(s) {
		return errSymbolForbidden(kind, s, limit)
	}
	return nil
}

// Decimal is a locale's decimal-point symbol. Construct one with
// NewDecimal; the zero value is the empty symbol.
type Decimal struct{ str string }

// NewDecimal validates s as a decimal-point symbol: at most MaxDecimalLen
// bytes, non-empty, valid UTF-8, no ASCII digits.
func NewDecimal(s string) (Decimal, error) {
	if err := validateSymbol(SymbolDecimal, s, MaxDecimalLen); err != nil {
		return Decimal{}, err
	}
	if s == "" {
		return Decimal{}, errSymbolForbidden(SymbolDecimal, s, MaxDecimalLen)
	}
	return Decimal{str: s}, nil
}

// String returns the symbol's content.
func (d Decimal) String() string { return d.str }

// Separator is a locale's digit-group separator symbol. Construct one
// with NewSeparator; the zero value is the empty symbol, which suppresses
// separators entirely.
type Separator struct{ str string }

// NewSeparator validates s as a group separator: at most MaxSeparatorLen
// bytes, valid UTF-8, no ASCII digits. The empty string is allowed and
// means "no separator".
func NewSeparator(s string) (Separator, error) {
	if err := validateSymbol(SymbolSeparator, s, MaxSeparatorLen); err != nil {
		return Separator{}, err
	}
	return Separator{str: s}, nil
}

// String returns the symbol's content.
func (s Separator) String() string { return s.str }

// MinusSign is a locale's negative-sign symbol. Construct one with
// NewMinusSign; the zero value is the empty symbol.
type MinusSign struct{ str string }

// NewMinusSign validates s as a minus sign: at most MaxMinusSignLen
// bytes, valid UTF-8, no ASCII digits. The empty string is allowed.
func NewMinusSign(s string) (MinusSign, error) {
	if err := validateSymbol(SymbolMinusSign, s, MaxMinusSignLen); err != nil {
		return MinusSign{}, err
	}
	return MinusSign{str: s}, nil
}

// String returns the symbol's content.
func (m MinusSign) String() string { return m.str }

// PlusSign is a locale's positive-sign symbol, emitted only by the
// eagerly-signed write variants. Construct one with NewPlusSign; the zero
// value is the empty symbol.
type PlusSign struct{ str string }

// NewPlusSign validates s as a plus sign: at most MaxPlusSignLen bytes,
// valid UTF-8, no ASCII digits. The empty string is allowed.
func NewPlusSign(s string) (PlusSign, error) {
	if err := validateSymbol(SymbolPlusSign, s, MaxPlusSignLen); err != nil {
		return PlusSign{}, err
	}
	return PlusSign{str: s}, nil
}

// String returns the symbol's content.
func (p PlusSign) String() string { return p.str }

// Infinity is a locale's infinity token. The integer engine never emits
// it; it is carried for float-formatting adapters built on top of this
// package. Construct one with NewInfinity.
type Infinity struct{ str string }

// NewInfinity validates s as an infinity token: at most MaxInfinityLen
// bytes of valid UTF-8.
func NewInfinity(s string) (Infinity, error) {
	if err := validateToken(SymbolInfinity, s, MaxInfinityLen); err != nil {
		return Infinity{}, err
	}
	return Infinity{str: s}, nil
}

// String returns the token's content.
func (i Infinity) String() string { return i.str }

// NaN is a locale's not-a-number token. Like Infinity, it is carried for
// float-formatting adapters and never emitted by the integer engine.
// Construct one with NewNaN.
type NaN struct{ str string }

// NewNaN validates s as a not-a-number token: at most MaxNaNLen bytes of
// valid UTF-8.
func NewNaN(s string) (NaN, error) {
	if err := validateToken(SymbolNaN, s, MaxNaNLen); err != nil {
		return NaN{}, err
	}
	return NaN{str: s}, nil
}

// String returns the token's content.
func (n NaN) String() string { return n.str }
