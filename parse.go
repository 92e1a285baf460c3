package fractions

import (
	"strconv"
	"strings"
)

// Operand = [ Whole '_' ] Frac
// Whole   = ['-' | '+'] digits
// Frac    = Int [ '/' Int ]
// Int     = ['-' | '+'] digits
//
// A Frac following a Whole must be unsigned; it takes the sign of the Whole.

// ParseMixed parses a number in mixed-number notation, e.g. "3", "-1/2",
// "2_3/4", or "-3_3/4" (which means -(3 + 3/4)). Errors are *NumberError
// values wrapping InvalidFormat, InvalidNumeric, or InvalidArgument.
func ParseMixed(s string) (Rational, error) {
	parts := strings.Split(s, "_")
	if len(parts) > 2 {
		return Rational{}, &NumberError{Text: s, Kind: InvalidFormat}
	}
	// The fractional part is last whether or not there is a whole part.
	frac := strings.Split(parts[len(parts)-1], "/")
	if len(frac) > 2 {
		return Rational{}, &NumberError{Text: s, Kind: InvalidFormat}
	}
	if len(parts) == 2 {
		for _, f := range frac {
			if strings.HasPrefix(f, "-") || strings.HasPrefix(f, "+") {
				return Rational{}, &NumberError{Text: s, Kind: InvalidFormat}
			}
		}
	}

	num, err := strconv.ParseInt(frac[0], 10, 64)
	if err != nil {
		return Rational{}, &NumberError{Text: s, Kind: InvalidNumeric}
	}
	var den int64 = 1
	if len(frac) == 2 {
		den, err = strconv.ParseInt(frac[1], 10, 64)
		if err != nil {
			return Rational{}, &NumberError{Text: s, Kind: InvalidNumeric}
		}
	}
	var whole int64
	if len(parts) == 2 {
		whole, err = strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return Rational{}, &NumberError{Text: s, Kind: InvalidNumeric}
		}
	}
	if den == 0 {
		return Rational{}, &NumberError{Text: s, Kind: InvalidArgument}
	}

	if whole < 0 {
		num = -num
	}
	num += whole * den
	// den is nonzero, so New cannot fail.
	r, _ := New(num, den)
	return r, nil
}
