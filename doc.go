// Package numformat produces locale-aware string representations of
// integers: thousands separators, Indian-style lakh/crore grouping, and
// per-locale sign symbols, without heap allocation on the hot path.
//
// The engine is the fixed-capacity Buffer, which writes digits, group
// separators and signs back-to-front. It is parameterized by a Format, the
// capability contract describing one locale's conventions. Formats come
// from three sources: the built-in CLDR-derived Locale table, the
// operating system (SystemLocale), or a caller-assembled CustomFormat.
//
//	var buf numformat.Buffer
//	buf.WriteInt(-1000000, numformat.LocaleEn)
//	fmt.Println(buf.String()) // -1,000,000
//
// Package-level helpers mirror the strconv surface for callers that do not
// manage a Buffer themselves:
//
//	numformat.FormatInt(1000000, numformat.LocaleHi) // 10,00,000
//	numformat.AppendUint(dst, 250000, numformat.LocaleFr)
//
// Every symbol a Format exposes is a bounded, validated value constructed
// through this package (NewSeparator, NewMinusSign, ...). Validation
// happens once, at construction or build time; the formatting path itself
// has no error cases and a statically sufficient buffer capacity, even for
// math.MinInt64.
package numformat
