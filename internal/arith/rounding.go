package arith

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how a value is brought to a target scale.
type RoundingMode int

const (
	// RoundHalfUp rounds to the nearest neighbour; ties go away from zero.
	RoundHalfUp RoundingMode = iota
	// RoundHalfEven rounds to the nearest neighbour; ties go to the even digit.
	RoundHalfEven
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundDown rounds toward zero.
	RoundDown
	// RoundUp rounds away from zero.
	RoundUp
)

func (m RoundingMode) String() string {
	switch m {
	case RoundHalfUp:
		return "half_up"
	case RoundHalfEven:
		return "half_even"
	case RoundFloor:
		return "floor"
	case RoundCeiling:
		return "ceiling"
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	default:
		return "unknown"
	}
}

// ParseRoundingMode resolves a mode name as printed by RoundingMode.String.
func ParseRoundingMode(name string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "half_up", "halfup", "":
		return RoundHalfUp, nil
	case "half_even", "halfeven", "bank":
		return RoundHalfEven, nil
	case "floor":
		return RoundFloor, nil
	case "ceiling", "ceil":
		return RoundCeiling, nil
	case "down", "trunc":
		return RoundDown, nil
	case "up":
		return RoundUp, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownRoundingMode)
	}
}

// RoundDec brings d to scale fractional digits using mode.
func RoundDec(d decimal.Decimal, scale int, mode RoundingMode) (decimal.Decimal, error) {
	if err := checkScale(scale); err != nil {
		return decimal.Zero, err
	}
	places := int32(scale)
	switch mode {
	case RoundHalfUp:
		return d.Round(places), nil
	case RoundHalfEven:
		return d.RoundBank(places), nil
	case RoundFloor:
		return d.RoundFloor(places), nil
	case RoundCeiling:
		return d.RoundCeil(places), nil
	case RoundDown:
		return d.RoundDown(places), nil
	case RoundUp:
		return d.RoundUp(places), nil
	default:
		return decimal.Zero, ErrUnknownRoundingMode
	}
}

// adjust finishes a truncated quotient q with remainder r of a division by divisor.
// sign is the sign of the exact quotient and ulp is one unit at the target scale.
func adjust(q, r, divisor, ulp decimal.Decimal, sign int, mode RoundingMode) (decimal.Decimal, error) {
	if r.IsZero() {
		return q, nil
	}
	away := q.Add(ulp.Mul(decimal.NewFromInt(int64(sign))))
	switch mode {
	case RoundDown:
		return q, nil
	case RoundUp:
		return away, nil
	case RoundFloor:
		if sign < 0 {
			return away, nil
		}
		return q, nil
	case RoundCeiling:
		if sign > 0 {
			return away, nil
		}
		return q, nil
	case RoundHalfUp, RoundHalfEven:
		// 2|r| against |divisor|*ulp tells below, at, or past the midpoint.
		half := r.Abs().Mul(two).Cmp(divisor.Abs().Mul(ulp))
		switch {
		case half > 0:
			return away, nil
		case half < 0:
			return q, nil
		case mode == RoundHalfUp:
			return away, nil
		}
		if q.Shift(-ulp.Exponent()).Abs().BigInt().Bit(0) == 1 {
			return away, nil
		}
		return q, nil
	default:
		return decimal.Zero, ErrUnknownRoundingMode
	}
}
