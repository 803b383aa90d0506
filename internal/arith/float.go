package arith

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultDivScale is the number of fractional digits Div keeps.
const DefaultDivScale = 10

// FromFloat converts v through its shortest printed decimal form, so 0.1
// becomes exactly 0.1 rather than the binary value closest to it.
func FromFloat(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%v: %w", v, ErrNonFinite)
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'g', -1, 64))
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert %v: %w", v, err)
	}
	return d, nil
}

// ToFloat returns the float64 nearest to d.
func ToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func fromFloats(a, b float64) (decimal.Decimal, decimal.Decimal, error) {
	da, err := FromFloat(a)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	db, err := FromFloat(b)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return da, db, nil
}

// Add returns a + b computed in decimal.
func Add(a, b float64) (float64, error) {
	da, db, err := fromFloats(a, b)
	if err != nil {
		return 0, err
	}
	return ToFloat(AddDec(da, db)), nil
}

// Sub returns a - b computed in decimal.
func Sub(a, b float64) (float64, error) {
	da, db, err := fromFloats(a, b)
	if err != nil {
		return 0, err
	}
	return ToFloat(SubDec(da, db)), nil
}

// Mul returns a * b computed in decimal.
func Mul(a, b float64) (float64, error) {
	da, db, err := fromFloats(a, b)
	if err != nil {
		return 0, err
	}
	return ToFloat(MulDec(da, db)), nil
}

// Div returns a / b rounded half-up to DefaultDivScale fractional digits.
func Div(a, b float64) (float64, error) {
	return DivScale(a, b, DefaultDivScale)
}

// DivScale returns a / b rounded half-up to scale fractional digits.
// A negative scale is rejected before the divisor is looked at.
func DivScale(a, b float64, scale int) (float64, error) {
	if err := checkScale(scale); err != nil {
		return 0, err
	}
	da, db, err := fromFloats(a, b)
	if err != nil {
		return 0, err
	}
	q, err := DivDecScale(da, db, scale, RoundHalfUp)
	if err != nil {
		return 0, err
	}
	return ToFloat(q), nil
}

// Round rounds v half-up to scale fractional digits.
func Round(v float64, scale int) (float64, error) {
	return roundFloat(v, scale, RoundHalfUp)
}

// Floor rounds v toward negative infinity at scale fractional digits.
func Floor(v float64, scale int) (float64, error) {
	return roundFloat(v, scale, RoundFloor)
}

func roundFloat(v float64, scale int, mode RoundingMode) (float64, error) {
	if err := checkScale(scale); err != nil {
		return 0, err
	}
	d, err := FromFloat(v)
	if err != nil {
		return 0, err
	}
	r, err := RoundDec(d, scale, mode)
	if err != nil {
		return 0, err
	}
	return ToFloat(r), nil
}

// Compare returns 1 if a > b, 0 if a == b and -1 if a < b, comparing the
// decimal forms of the inputs.
func Compare(a, b float64) (int, error) {
	da, db, err := fromFloats(a, b)
	if err != nil {
		return 0, err
	}
	return CompareDec(da, db), nil
}
