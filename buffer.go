package numformat

// Buffer capacity, derived from documented worst cases so that no write
// can overflow:
//
//	maxDigitCount    20  digits of MaxUint64 ("18446744073709551615")
//	maxSeparatorRuns  9  Indian-grouping boundaries among 20 digits
//	                     (offsets 3, 5, 7, ..., 19)
//
// plus one maximum-length separator per boundary and one maximum-length
// sign. 20 + 9*8 + 8 = 100 bytes. The widest signed magnitude,
// MinInt64, needs 19 digits + 8 boundaries + a sign and fits with room to
// spare.
const (
	maxDigitCount    = 20
	maxSeparatorRuns = 9

	// MaxBufLen is the capacity of a Buffer in bytes, sufficient for any
	// supported value under any valid Format.
	MaxBufLen = maxDigitCount + maxSeparatorRuns*MaxSeparatorLen + MaxMinusSignLen
)

// Buffer is a fixed-capacity, reusable formatting destination. Output is
// assembled back-to-front, so the valid region always ends at the
// buffer's tail and no reversal pass is needed. The zero value is an
// empty buffer ready for use; there is no heap allocation on any write.
//
// A Buffer belongs to one goroutine at a time. Share Formats, not
// buffers.
type Buffer struct {
	buf [MaxBufLen]byte
	n   int // byte length of the valid region at the tail of buf
}

// NewBuffer returns an empty heap-allocated Buffer. Declaring a Buffer
// variable directly keeps it on the stack and works just as well.
func NewBuffer() *Buffer { return new(Buffer) }

// Reset discards the buffer's content. Bytes beyond the valid region are
// garbage and never read, so no zeroing happens.
func (b *Buffer) Reset() { b.n = 0 }

// Len returns the byte length of the current content.
func (b *Buffer) Len() int { return b.n }

// Bytes returns the current content as a read-only view into the buffer.
// The view is valid until the next write or Reset on the same buffer;
// copy it out to keep it longer.
func (b *Buffer) Bytes() []byte { return b.buf[len(b.buf)-b.n:] }

// String returns a copy of the current content.
func (b *Buffer) String() string { return string(b.Bytes()) }

// WriteInt formats v under f, replacing any previous content, and returns
// the number of bytes written. Negative values are prefixed with f's
// minus sign; non-negative values carry no sign.
func (b *Buffer) WriteInt(v int64, f Format) int {
	if v == 0 {
		return b.writeZero()
	}
	// Negation happens in unsigned space: -uint64(MinInt64) is MinInt64's
	// magnitude, which has no int64 representation.
	u := uint64(v)
	var sign string
	if v < 0 {
		u = -u
		sign = f.MinusSign().str
	}
	return b.write(u, sign, f)
}

// WriteIntSigned formats v like WriteInt but eagerly signs positive
// values with f's plus-sign symbol. Zero stays unsigned, so stripping
// signs and separators from the output always parses back to v.
func (b *Buffer) WriteIntSigned(v int64, f Format) int {
	if v == 0 {
		return b.writeZero()
	}
	u := uint64(v)
	var sign string
	if v < 0 {
		u = -u
		sign = f.MinusSign().str
	} else {
		sign = f.PlusSign().str
	}
	return b.write(u, sign, f)
}

// WriteUint formats v under f, replacing any previous content, and
// returns the number of bytes written.
func (b *Buffer) WriteUint(v uint64, f Format) int {
	if v == 0 {
		return b.writeZero()
	}
	return b.write(v, "", f)
}

// writeZero writes the single digit 0: no sign, no separator, under any
// grouping.
func (b *Buffer) writeZero() int {
	b.buf[len(b.buf)-1] = '0'
	b.n = 1
	return 1
}

// write assembles sign and the digits of u (> 0) back-to-front, inserting
// the separator at each grouping boundary.
func (b *Buffer) write(u uint64, sign string, f Format) int {
	sep := f.Separator().str
	grouping := f.Grouping()

	pos := len(b.buf)
	count := 0
	for {
		pos--
		b.buf[pos] = byte('0' + u%10)
		u /= 10
		count++
		if u == 0 {
			break
		}
		if len(sep) != 0 && grouping.boundaryAfter(count) {
			pos -= len(sep)
			copy(b.buf[pos:], sep)
		}
	}
	pos -= len(sign)
	copy(b.buf[pos:], sign)

	b.n = len(b.buf) - pos
	return b.n
}
