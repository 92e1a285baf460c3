package fractions

import (
	"strconv"
	"strings"
)

// Rational is an exact fraction of two int64 values. A Rational is always in
// canonical form: the denominator is positive and shares no factor with the
// numerator. Rationals are values; methods never modify their receivers.
//
// The zero value is the number 0.
type Rational struct {
	num int64
	// den is the denominator, except that 0 means 1 so that the zero value is
	// usable.
	den int64
}

// New creates the canonical form of num/den. The only error is
// InvalidArgument, when den is zero.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, InvalidArgument
	}
	// Reduce first: negating den overflows only for math.MinInt64.
	g := int64(gcd(uabs(num), uabs(den)))
	num, den = num/g, den/g
	if den < 0 {
		num, den = -num, -den
	}
	return Rational{num: num, den: den}, nil
}

// Int returns the Rational with value n.
func Int(n int64) Rational {
	return Rational{num: n, den: 1}
}

// gcd computes the greatest common divisor of a and positive b by the
// Euclidean algorithm. gcd(0, b) is b, so a zero numerator always reduces to
// 0/1.
func gcd(a, b uint64) uint64 {
	for a != 0 && b != 0 {
		if a > b {
			a %= b
		} else {
			b %= a
		}
	}
	if a == 0 {
		return b
	}
	return a
}

// uabs returns the magnitude of x, which is representable even for
// math.MinInt64.
func uabs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Num returns the numerator of x.
func (x Rational) Num() int64 {
	return x.num
}

// Den returns the denominator of x, which is always positive.
func (x Rational) Den() int64 {
	if x.den == 0 {
		return 1
	}
	return x.den
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Rational) Sign() int {
	switch {
	case x.num < 0:
		return -1
	case x.num > 0:
		return 1
	default:
		return 0
	}
}

// Add returns x + y. When the denominators match, the numerators are summed
// directly so that the intermediate denominator does not grow.
func (x Rational) Add(y Rational) (Rational, error) {
	xd, yd := x.Den(), y.Den()
	if xd == yd {
		return New(x.num+y.num, xd)
	}
	return New(x.num*yd+y.num*xd, xd*yd)
}

// Neg returns -x.
func (x Rational) Neg() Rational {
	// Negating the numerator preserves canonical form.
	return Rational{num: -x.num, den: x.Den()}
}

// Sub returns x - y.
func (x Rational) Sub(y Rational) (Rational, error) {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Rational) Mul(y Rational) (Rational, error) {
	return New(x.num*y.num, x.Den()*y.Den())
}

// Quo returns x / y. The error is DivisionByZero if y is zero, no matter how
// it was written.
func (x Rational) Quo(y Rational) (Rational, error) {
	if y.num == 0 {
		return Rational{}, DivisionByZero
	}
	return New(x.num*y.Den(), x.Den()*y.num)
}

// String formats x in mixed-number notation: "0", "3", "-1/2", or "-2_1/2".
// The whole part truncates toward zero, and the sign is written only once.
func (x Rational) String() string {
	if x.num == 0 {
		return "0"
	}
	d := x.Den()
	whole := x.num / d
	rem := x.num - whole*d
	var b strings.Builder
	if whole != 0 {
		b.WriteString(strconv.FormatInt(whole, 10))
		if rem == 0 {
			return b.String()
		}
		b.WriteByte('_')
		rem = abs(rem)
	}
	b.WriteString(strconv.FormatInt(rem, 10))
	b.WriteByte('/')
	b.WriteString(strconv.FormatInt(d, 10))
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the same notation as
// String.
func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with ParseMixed.
func (x *Rational) UnmarshalText(text []byte) error {
	r, err := ParseMixed(string(text))
	if err != nil {
		return err
	}
	*x = r
	return nil
}
