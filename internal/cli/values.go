package cli

import (
	"errors"
	"math/big"
	"strconv"

	numformat "github.com/anacrolix/num-format"
	apperrors "github.com/anacrolix/num-format/internal/errors"
)

// errNotInteger reports a token that is not a base-10 integer at all, as
// opposed to one that merely overflows the machine widths.
var errNotInteger = errors.New("not a base-10 integer")

// FormatValue renders one numeric token under f. Signed values take the
// int64 fast path through the fixed-capacity engine; positive values
// beyond MaxInt64 fall back to uint64. With forceBig set, or for
// magnitudes outside both machine widths, the token goes through the
// arbitrary-precision path instead.
//
// A token that cannot be parsed is reported as an InputError carrying
// the offending text.
func FormatValue(tok string, f numformat.Format, forceBig bool) (string, error) {
	if forceBig {
		x, ok := new(big.Int).SetString(tok, 10)
		if !ok {
			return "", apperrors.InputError{Token: tok, Cause: errNotInteger}
		}
		return numformat.FormatBig(x, f), nil
	}

	v, err := strconv.ParseInt(tok, 10, 64)
	if err == nil {
		return numformat.FormatInt(v, f), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		// Positive values up to MaxUint64 still fit the fixed-capacity
		// engine; anything further needs --big.
		if u, uerr := strconv.ParseUint(tok, 10, 64); uerr == nil {
			return numformat.FormatUint(u, f), nil
		}
	}
	return "", apperrors.InputError{Token: tok, Cause: errors.Unwrap(err)}
}

// FormatValueSigned renders tok like FormatValue, except that with
// signed set, positive values that fit int64 carry an explicit plus
// sign. Values outside int64, and all values in big mode, fall back to
// the unsigned rendering.
func FormatValueSigned(tok string, f numformat.Format, forceBig, signed bool) (string, error) {
	if signed && !forceBig {
		if v, err := strconv.ParseInt(tok, 10, 64); err == nil {
			var buf numformat.Buffer
			buf.WriteIntSigned(v, f)
			return buf.String(), nil
		}
	}
	return FormatValue(tok, f, forceBig)
}
