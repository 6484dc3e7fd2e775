package arith

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultPlaces is the number of digits after the decimal point that Format
// keeps unless told otherwise.
const DefaultPlaces = 4

// FormatOption is an option for formatting results.
type FormatOption interface {
	fmtOption()
}

type placesopt int32

func (placesopt) fmtOption() {}

// Places sets the maximum number of digits after the decimal point. Panics
// if n is negative.
func Places(n int) FormatOption {
	if n < 0 || n > math.MaxInt32 {
		panic("arith: invalid number of places " + strconv.Itoa(n))
	}
	return placesopt(n)
}

// Format renders a value as a decimal string with '.' as the decimal mark
// regardless of locale. Integers have no decimal point. Other values are
// rounded toward positive infinity to at most DefaultPlaces digits after the
// point, and trailing zeros are removed, so 1/3 is "0.3334" and -1/3 is
// "-0.3333".
//
// Rounding starts from the shortest decimal representation that converts
// back to x exactly, not from x's binary expansion.
//
// Format panics if x is infinite or NaN.
func Format(x float64, opts ...FormatOption) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		panic("arith: cannot format " + strconv.FormatFloat(x, 'g', -1, 64))
	}
	places := int32(DefaultPlaces)
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case placesopt:
			places = int32(opt)
		default:
			panic("arith: unknown option type")
		}
	}
	if x == 0 {
		// Includes negative zero.
		return "0"
	}
	d := decimal.NewFromFloat(x)
	if x == math.Trunc(x) {
		return d.String()
	}
	return d.RoundCeil(places).String()
}
