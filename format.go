package numformat

// Format is the capability contract the formatting engine consumes: one
// locale's grouping policy plus its symbol for each role. Locale,
// *SystemLocale and *CustomFormat all implement it.
//
// Because every accessor returns a bounded symbol type constructed through
// this package's validating constructors, any Format, including one
// implemented outside this package, can only hand the engine symbols that
// already passed validation. That is what makes the write path infallible.
//
// Implementations must be immutable once constructed; an immutable Format
// is safe for concurrent use by any number of goroutines.
type Format interface {
	// Decimal returns the decimal-point symbol. The integer engine never
	// emits it; it parameterizes float adapters.
	Decimal() Decimal
	// Grouping returns the digit-grouping policy.
	Grouping() Grouping
	// Infinity returns the infinity token, for float adapters.
	Infinity() Infinity
	// MinusSign returns the symbol written before negative values.
	MinusSign() MinusSign
	// NaN returns the not-a-number token, for float adapters.
	NaN() NaN
	// PlusSign returns the symbol written before positive values by the
	// eagerly-signed write variants.
	PlusSign() PlusSign
	// Separator returns the digit-group separator symbol.
	Separator() Separator
}
