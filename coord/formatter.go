package coord

import (
	"math"
	"strconv"

	"github.com/arloliu/geoprint/format"
)

const (
	// MinFixedMagnitude is the smallest non-zero magnitude rendered in fixed notation.
	MinFixedMagnitude = 1e-8
	// MaxFixedMagnitude is the largest magnitude rendered in fixed notation.
	MaxFixedMagnitude = 1e15
)

// Tokens written for non-finite values.
const (
	NaNToken    = "nan"
	PosInfToken = "inf"
	NegInfToken = "-inf"
)

// shortestBufSize fits strconv's shortest 'e' output for any float64:
// 17 digits, '.', 'e', exponent sign and 3 exponent digits.
const shortestBufSize = 24

// decimal is the shortest round-trip decimal form of |v|:
// digits[0].digits[1:n] x 10^exp.
type decimal struct {
	digits [17]byte
	n      int
	exp    int
}

// shortest computes the shortest round-trip digits of |v| without heap allocation.
// v must be finite.
func shortest(v float64) decimal {
	var buf [shortestBufSize]byte
	b := strconv.AppendFloat(buf[:0], math.Abs(v), 'e', -1, 64)

	var d decimal
	i := 0
	for ; b[i] != 'e'; i++ {
		if b[i] != '.' {
			d.digits[d.n] = b[i]
			d.n++
		}
	}

	exp := 0
	for _, c := range b[i+2:] {
		exp = exp*10 + int(c-'0')
	}
	if b[i+1] == '-' {
		exp = -exp
	}
	d.exp = exp

	return d
}

// fixedFrac returns the number of fractional digits of d in fixed notation.
func (d *decimal) fixedFrac() int {
	if f := d.n - 1 - d.exp; f > 0 {
		return f
	}

	return 0
}

// sciFrac returns the number of fractional mantissa digits of d in scientific notation.
func (d *decimal) sciFrac() int {
	return d.n - 1
}

func (d *decimal) appendFixed(dst []byte, neg bool) []byte {
	if neg {
		dst = append(dst, '-')
	}

	digits := d.digits[:d.n]
	if d.exp < 0 {
		dst = append(dst, '0', '.')
		for i := -1; i > d.exp; i-- {
			dst = append(dst, '0')
		}

		return append(dst, digits...)
	}

	intLen := d.exp + 1
	if intLen >= d.n {
		dst = append(dst, digits...)
		for i := d.n; i < intLen; i++ {
			dst = append(dst, '0')
		}

		return dst
	}

	dst = append(dst, digits[:intLen]...)
	dst = append(dst, '.')

	return append(dst, digits[intLen:]...)
}

func (d *decimal) appendScientific(dst []byte, neg bool) []byte {
	if neg {
		dst = append(dst, '-')
	}

	dst = append(dst, d.digits[0])
	if d.n > 1 {
		dst = append(dst, '.')
		dst = append(dst, d.digits[1:d.n]...)
	}

	return appendExponent(dst, d.exp)
}

// appendExponent writes e±NN with at least two exponent digits, the same
// shape strconv uses for the 'e' format.
func appendExponent(dst []byte, exp int) []byte {
	dst = append(dst, 'e')
	if exp < 0 {
		dst = append(dst, '-')
		exp = -exp
	} else {
		dst = append(dst, '+')
	}
	if exp < 10 {
		dst = append(dst, '0')
	}

	return strconv.AppendInt(dst, int64(exp), 10)
}

// NotationOf returns the notation used to render v.
//
// Zero is fixed. Infinities are scientific; NaN reports fixed but is always
// rendered as a token.
func NotationOf(v float64) format.Notation {
	a := math.Abs(v)
	if a == 0 {
		return format.NotationFixed
	}
	if a < MinFixedMagnitude || a > MaxFixedMagnitude {
		return format.NotationScientific
	}

	return format.NotationFixed
}

// MinPrecision returns the smallest precision at which Format(v, precision)
// returns the shortest round-trip form of v. Any larger precision gives the
// same output. Non-finite values return 0.
func MinPrecision(v float64) uint {
	if !isFinite(v) {
		return 0
	}

	d := shortest(v)
	if NotationOf(v) == format.NotationFixed {
		return uint(d.fixedFrac())
	}

	return uint(d.sciFrac())
}

// Format renders v keeping at most precision digits after the decimal point.
//
// Parameters:
//   - v: Value to render
//   - precision: Maximum fractional digits of the chosen notation
//
// Returns:
//   - string: Shortest round-trip text when precision >= MinPrecision(v),
//     otherwise the shortest digits rounded half to even at precision
//     fractional digits
func Format(v float64, precision uint) string {
	var buf [32]byte
	return string(Append(buf[:0], v, precision))
}

// Append appends the rendering of v to dst and returns the extended buffer.
//
// The only writes are into dst; when dst has enough capacity (32 bytes cover
// every fixed and scientific rendering) Append does not allocate.
func Append(dst []byte, v float64, precision uint) []byte {
	if tok, ok := nonFiniteToken(v); ok {
		return append(dst, tok...)
	}

	d := shortest(v)
	neg := math.Signbit(v)

	if NotationOf(v) == format.NotationFixed {
		if uint(d.fixedFrac()) > precision {
			// digits kept: the integer part plus precision fractional digits
			if !d.round(d.exp + 1 + int(precision)) {
				return append(dst, '0')
			}
		}

		return d.appendFixed(dst, neg)
	}

	if uint(d.sciFrac()) > precision {
		d.round(1 + int(precision))
	}

	return d.appendScientific(dst, neg)
}

// round cuts d to its first keep digits, rounding half to even on the
// shortest digits, and drops trailing zeros. A carry out of the leading digit
// raises the exponent. keep may be zero or negative when every digit lies
// below the cut. Returns false when the result is zero.
func (d *decimal) round(keep int) bool {
	if keep >= d.n {
		return true
	}
	if keep < 0 {
		d.n = 0
		return false
	}

	up := false
	switch c := d.digits[keep]; {
	case c > '5':
		up = true
	case c == '5':
		// shortest digits carry no trailing zeros, so any digit after the 5
		// makes it more than half
		if keep+1 < d.n {
			up = true
		} else {
			up = keep > 0 && (d.digits[keep-1]-'0')%2 == 1
		}
	}

	d.n = keep
	if up {
		i := keep - 1
		for ; i >= 0 && d.digits[i] == '9'; i-- {
			d.digits[i] = '0'
		}
		if i < 0 {
			// all nines, or nothing kept: the result is the next power of ten
			d.digits[0] = '1'
			d.n = 1
			d.exp++

			return true
		}
		d.digits[i]++
	}

	for d.n > 0 && d.digits[d.n-1] == '0' {
		d.n--
	}

	return d.n > 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonFiniteToken(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return NaNToken, true
	case math.IsInf(v, 1):
		return PosInfToken, true
	case math.IsInf(v, -1):
		return NegInfToken, true
	default:
		return "", false
	}
}
