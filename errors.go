package numformat

import (
	"errors"
	"fmt"
)

// Validation and lookup failures surfaced by this package. Every failure
// is reported at construction, build or lookup time; once a Format exists,
// formatting with it cannot fail.
var (
	// ErrExceedsMaxLen reports a symbol candidate whose encoded byte
	// length is over the limit for its kind.
	ErrExceedsMaxLen = errors.New("symbol exceeds maximum length")

	// ErrForbiddenChar reports a symbol candidate containing a character
	// its kind disallows (an ASCII digit, or bytes that are not valid
	// UTF-8), or an empty candidate where emptiness is disallowed.
	ErrForbiddenChar = errors.New("symbol contains a forbidden character")

	// ErrInvalidFormat reports a format description that cannot be
	// assembled, such as an unknown grouping name.
	ErrInvalidFormat = errors.New("invalid format description")

	// ErrUnknownLocale reports a locale lookup that matched nothing.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrProviderUnavailable reports that the operating system did not
	// yield a usable locale.
	ErrProviderUnavailable = errors.New("system locale unavailable")
)

// SymbolKind identifies which locale symbol a SymbolError is about.
// The kinds correspond one-to-one with the accessors of Format.
type SymbolKind int

const (
	SymbolDecimal SymbolKind = iota
	SymbolSeparator
	SymbolMinusSign
	SymbolPlusSign
	SymbolInfinity
	SymbolNaN
)

// String returns the human-readable name of the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case SymbolDecimal:
		return "decimal"
	case SymbolSeparator:
		return "separator"
	case SymbolMinusSign:
		return "minus sign"
	case SymbolPlusSign:
		return "plus sign"
	case SymbolInfinity:
		return "infinity"
	case SymbolNaN:
		return "nan"
	default:
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
}

// SymbolError describes a rejected symbol candidate. It wraps either
// ErrExceedsMaxLen or ErrForbiddenChar, so callers can test the class of
// failure with errors.Is and recover the details with errors.As.
type SymbolError struct {
	// Kind is the symbol kind that rejected the candidate.
	Kind SymbolKind
	// Candidate is the rejected input.
	Candidate string
	// Limit is the maximum encoded byte length for this kind.
	Limit int
	// reason is the sentinel naming the violated rule.
	reason error
}

// Error returns a message naming the symbol kind, the candidate and the
// violated rule.
func (e SymbolError) Error() string {
	return fmt.Sprintf("%s symbol %q: %v", e.Kind, e.Candidate, e.reason)
}

// Unwrap returns the sentinel naming the violated rule.
func (e SymbolError) Unwrap() error { return e.reason }

// errSymbolTooLong builds the SymbolError for a candidate over its limit.
func errSymbolTooLong(kind SymbolKind, candidate string, limit int) error {
	return SymbolError{Kind: kind, Candidate: candidate, Limit: limit, reason: ErrExceedsMaxLen}
}

// errSymbolForbidden builds the SymbolError for a candidate with
// disallowed content.
func errSymbolForbidden(kind SymbolKind, candidate string, limit int) error {
	return SymbolError{Kind: kind, Candidate: candidate, Limit: limit, reason: ErrForbiddenChar}
}

// LocaleError reports a locale name that matched no entry.
type LocaleError struct {
	// Name is the name that was looked up.
	Name string
}

// Error returns a message naming the unmatched locale.
func (e LocaleError) Error() string { return fmt.Sprintf("unknown locale %q", e.Name) }

// Unwrap returns ErrUnknownLocale so that errors.Is matches.
func (e LocaleError) Unwrap() error { return ErrUnknownLocale }

// ProviderError reports a failure to obtain a locale from the operating
// system. It always matches ErrProviderUnavailable under errors.Is; the
// platform-specific cause, when there is one, stays on the chain too.
type ProviderError struct {
	// Op names the step that failed, such as "environment" or "registry".
	Op string
	// Cause is the underlying failure. May be nil.
	Cause error
}

// Error returns a message naming the failed step and its cause.
func (e ProviderError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("system locale %s: %v", e.Op, ErrProviderUnavailable)
	}
	return fmt.Sprintf("system locale %s: %v", e.Op, e.Cause)
}

// Unwrap returns ErrProviderUnavailable together with the platform cause,
// so errors.Is matches either.
func (e ProviderError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrProviderUnavailable}
	}
	return []error{ErrProviderUnavailable, e.Cause}
}
