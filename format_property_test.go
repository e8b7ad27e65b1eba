package numformat

import (
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// propertyLocales exercises one locale per symbol peculiarity: no
// separators, single-byte ASCII, Indian grouping, a multi-byte minus
// sign, a narrow no-break space, and fully non-ASCII Arabic symbols.
var propertyLocales = []Locale{LocaleC, LocaleEn, LocaleEnIN, LocaleFi, LocaleFr, LocaleAr}

// stripGrouped undoes a locale's decoration: it trims the minus sign,
// removes every separator, and returns the bare ASCII digits.
func stripGrouped(s string, f Format) (neg bool, digits string) {
	if min := f.MinusSign().String(); min != "" && strings.HasPrefix(s, min) {
		neg = true
		s = s[len(min):]
	}
	if sep := f.Separator().String(); sep != "" {
		s = strings.ReplaceAll(s, sep, "")
	}
	return neg, s
}

func TestFormatProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("stripping a formatted int64 recovers its digits", prop.ForAll(
		func(v int64) bool {
			mag := uint64(v)
			if v < 0 {
				mag = -mag
			}
			for _, loc := range propertyLocales {
				neg, digits := stripGrouped(FormatInt(v, loc), loc)
				if neg != (v < 0) {
					return false
				}
				parsed, err := strconv.ParseUint(digits, 10, 64)
				if err != nil || parsed != mag {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("stripping a formatted uint64 recovers its digits", prop.ForAll(
		func(v uint64) bool {
			for _, loc := range propertyLocales {
				_, digits := stripGrouped(FormatUint(v, loc), loc)
				parsed, err := strconv.ParseUint(digits, 10, 64)
				if err != nil || parsed != v {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.Property("output is never empty and never exceeds MaxBufLen", prop.ForAll(
		func(v int64) bool {
			for l := LocaleC; l < numLocales; l++ {
				var b Buffer
				n := b.WriteInt(v, l)
				if n <= 0 || n > MaxBufLen || n != b.Len() {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("separator count follows the digit count", prop.ForAll(
		func(v uint64) bool {
			digits := len(strconv.FormatUint(v, 10))

			wantStd := (digits - 1) / 3
			if got := strings.Count(FormatUint(v, LocaleEn), ","); got != wantStd {
				return false
			}

			wantIndian := 0
			if digits > 3 {
				wantIndian = 1 + (digits-4)/2
			}
			return strings.Count(FormatUint(v, LocaleHi), ",") == wantIndian
		},
		gen.UInt64(),
	))

	properties.Property("fixed and growable engines agree on int64", prop.ForAll(
		func(v int64) bool {
			x := big.NewInt(v)
			for _, loc := range propertyLocales {
				if FormatBig(x, loc) != FormatInt(v, loc) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestPositionsProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("positions are strictly increasing interior offsets", prop.ForAll(
		func(digits int) bool {
			for _, g := range []Grouping{GroupingStandard, GroupingIndian, GroupingPosix} {
				prev := 0
				for _, off := range g.Positions(digits) {
					if off <= prev || off >= digits {
						return false
					}
					prev = off
				}
				if g == GroupingPosix && len(g.Positions(digits)) != 0 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, maxDigitCount),
	))

	properties.Property("positions match the separators actually written", prop.ForAll(
		func(v uint64) bool {
			s := FormatUint(v, LocaleEnIN)
			digits := len(strconv.FormatUint(v, 10))
			return strings.Count(s, ",") == len(GroupingIndian.Positions(digits))
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
