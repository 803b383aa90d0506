package arith

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)

	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// AddDec returns the exact sum of a and b.
func AddDec(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// SubDec returns the exact difference a - b.
func SubDec(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

// MulDec returns the exact product of a and b.
func MulDec(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// CompareDec returns 1 if a > b, 0 if they are numerically equal and -1 if a < b.
// Trailing zeros do not matter: 1.0 and 1.00 compare equal.
func CompareDec(a, b decimal.Decimal) int {
	return a.Cmp(b)
}

// DivDec returns the exact quotient a / b.
//
// It fails with ErrDivisionByZero when b is zero and with ErrNonTerminating
// when the quotient has no finite decimal expansion (1/3, for example). Use
// DivDecScale when a rounded result is acceptable.
func DivDec(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	if a.IsZero() {
		return decimal.Zero, nil
	}

	num := a.Coefficient()
	den := b.Coefficient()
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	num.Quo(num, gcd)
	den.Quo(den, gcd)

	// den must be 2^x * 5^y; max(x, y) extra digits make the quotient an integer.
	rest := new(big.Int).Set(den)
	twos := stripFactor(rest, bigTwo)
	fives := stripFactor(rest, bigFive)
	if rest.Cmp(big.NewInt(1)) != 0 {
		return decimal.Zero, ErrNonTerminating
	}
	digits := max(twos, fives)

	scaled := new(big.Int).Exp(bigTen, big.NewInt(int64(digits)), nil)
	scaled.Mul(scaled, num)
	scaled.Quo(scaled, den)
	return decimal.NewFromBigInt(scaled, a.Exponent()-b.Exponent()-int32(digits)), nil
}

// DivDecScale returns a / b brought to scale fractional digits with mode.
func DivDecScale(a, b decimal.Decimal, scale int, mode RoundingMode) (decimal.Decimal, error) {
	if err := checkScale(scale); err != nil {
		return decimal.Zero, err
	}
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	places := int32(scale)
	q, r := a.QuoRem(b, places)
	return adjust(q, r, b, decimal.New(1, -places), a.Sign()*b.Sign(), mode)
}

// stripFactor divides f out of n as many times as it goes and reports the count.
func stripFactor(n, f *big.Int) int {
	count := 0
	q, m := new(big.Int), new(big.Int)
	for {
		q.QuoRem(n, f, m)
		if m.Sign() != 0 {
			return count
		}
		n.Set(q)
		count++
	}
}
