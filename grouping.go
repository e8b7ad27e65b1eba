package numformat

import (
	"fmt"
	"strings"
)

// Grouping is a Format's digit-grouping policy: where separator symbols
// are inserted among the digits of a number.
type Grouping int

const (
	// GroupingStandard inserts a separator every three digits, counting
	// from the right: 1,000,000.
	GroupingStandard Grouping = iota
	// GroupingIndian inserts a separator after the first three digits and
	// then every two, the lakh/crore convention: 10,00,000.
	GroupingIndian
	// GroupingPosix never inserts separators: 1000000.
	GroupingPosix
)

// String returns the lowercase name of the grouping policy.
func (g Grouping) String() string {
	switch g {
	case GroupingStandard:
		return "standard"
	case GroupingIndian:
		return "indian"
	case GroupingPosix:
		return "posix"
	default:
		return fmt.Sprintf("Grouping(%d)", int(g))
	}
}

// ParseGrouping returns the grouping policy named by s. Recognized names
// are "standard", "indian" and "posix" (alias "none"), case-insensitive.
func ParseGrouping(s string) (Grouping, error) {
	switch strings.ToLower(s) {
	case "standard":
		return GroupingStandard, nil
	case "indian":
		return GroupingIndian, nil
	case "posix", "none":
		return GroupingPosix, nil
	}
	return GroupingStandard, fmt.Errorf("%w: unknown grouping %q", ErrInvalidFormat, s)
}

// MarshalText encodes the grouping policy as its name.
func (g Grouping) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText decodes a grouping policy from its name.
func (g *Grouping) UnmarshalText(text []byte) error {
	parsed, err := ParseGrouping(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Positions returns the separator insertion offsets for a number of the
// given digit count. Offsets count whole digits from the least-significant
// end, so an offset of 3 puts a separator between the third and fourth
// digit from the right. Counts of 0 and 1 yield no offsets, and no offset
// ever equals the digit count itself (no separator before the first
// digit).
func (g Grouping) Positions(digitCount int) []int {
	var offs []int
	for off := 1; off < digitCount; off++ {
		if g.boundaryAfter(off) {
			offs = append(offs, off)
		}
	}
	return offs
}

// boundaryAfter reports whether a separator belongs immediately to the
// left of the digit at 1-based offset off from the right. The Buffer
// evaluates this incrementally, digit by digit, instead of materializing
// Positions.
func (g Grouping) boundaryAfter(off int) bool {
	switch g {
	case GroupingStandard:
		return off%3 == 0
	case GroupingIndian:
		return off == 3 || (off > 3 && (off-3)%2 == 0)
	default:
		return false
	}
}
