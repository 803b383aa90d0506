package arith

import "github.com/shopspring/decimal"

// DiscountDec applies the tiered "spend over the threshold" promotion: once
// fee exceeds threshold the customer earns one step, plus one more step for
// every full 100 above the threshold. A fee at or below the threshold earns
// nothing.
func DiscountDec(fee, threshold, step decimal.Decimal) decimal.Decimal {
	if fee.Cmp(threshold) <= 0 {
		return decimal.Zero
	}
	// The divisor is a non-zero constant and the scale is zero, so no error is possible.
	tiers, _ := DivDecScale(fee.Sub(threshold), hundred, 0, RoundFloor)
	return tiers.Add(decimal.NewFromInt(1)).Mul(step)
}

// Discount is the float form of DiscountDec.
func Discount(fee, threshold, step float64) (float64, error) {
	df, dt, err := fromFloats(fee, threshold)
	if err != nil {
		return 0, err
	}
	ds, err := FromFloat(step)
	if err != nil {
		return 0, err
	}
	return ToFloat(DiscountDec(df, dt, ds)), nil
}
