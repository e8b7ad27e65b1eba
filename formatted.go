package numformat

import (
	"io"
	"strings"
)

// FormatInt returns v formatted under f. It is the allocating convenience
// over Buffer.WriteInt; reuse a Buffer to avoid the per-call string copy.
func FormatInt(v int64, f Format) string {
	var b Buffer
	b.WriteInt(v, f)
	return b.String()
}

// FormatUint returns v formatted under f.
func FormatUint(v uint64, f Format) string {
	var b Buffer
	b.WriteUint(v, f)
	return b.String()
}

// AppendInt appends v formatted under f to dst and returns the extended
// slice, in the manner of strconv.AppendInt.
func AppendInt(dst []byte, v int64, f Format) []byte {
	var b Buffer
	b.WriteInt(v, f)
	return append(dst, b.Bytes()...)
}

// AppendUint appends v formatted under f to dst and returns the extended
// slice.
func AppendUint(dst []byte, v uint64, f Format) []byte {
	var b Buffer
	b.WriteUint(v, f)
	return append(dst, b.Bytes()...)
}

// WriteIntTo writes v formatted under f to w and returns the number of
// bytes written.
func WriteIntTo(w io.Writer, v int64, f Format) (int, error) {
	var b Buffer
	b.WriteInt(v, f)
	return w.Write(b.Bytes())
}

// WriteUintTo writes v formatted under f to w and returns the number of
// bytes written.
func WriteUintTo(w io.Writer, v uint64, f Format) (int, error) {
	var b Buffer
	b.WriteUint(v, f)
	return w.Write(b.Bytes())
}

// BigInt is the slice of an arbitrary-precision integer's behavior the
// growable formatting path needs. Both *math/big.Int and *gmp.Int satisfy
// it.
type BigInt interface {
	// Sign returns -1 for negative values, 0 for zero, +1 for positive.
	Sign() int
	// String returns the value's base-10 digits, with a leading "-" when
	// negative.
	String() string
}

// FormatBig returns x formatted under f. Unbounded magnitudes fall
// outside the Buffer's capacity guarantee, so this path assembles its
// output in a growable allocation instead of the fixed-capacity engine.
func FormatBig(x BigInt, f Format) string {
	return string(AppendBig(nil, x, f))
}

// AppendBig appends x formatted under f to dst and returns the extended
// slice.
func AppendBig(dst []byte, x BigInt, f Format) []byte {
	digits := strings.TrimPrefix(x.String(), "-")
	if digits == "0" {
		return append(dst, '0')
	}
	if x.Sign() < 0 {
		dst = append(dst, f.MinusSign().str...)
	}

	// Digits arrive most-significant first, so this path walks
	// left-to-right: a separator follows any digit with a grouping
	// boundary at its right-hand offset.
	sep := f.Separator().str
	grouping := f.Grouping()
	n := len(digits)
	for i := 0; i < n; i++ {
		dst = append(dst, digits[i])
		if off := n - 1 - i; off > 0 && len(sep) != 0 && grouping.boundaryAfter(off) {
			dst = append(dst, sep...)
		}
	}
	return dst
}

// WriteBigTo writes x formatted under f to w and returns the number of
// bytes written.
func WriteBigTo(w io.Writer, x BigInt, f Format) (int, error) {
	return w.Write(AppendBig(nil, x, f))
}
