package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-arith/internal/arith"
)

// Money represents a monetary value as an exact decimal.
type Money = decimal.Decimal

// MoneyScale is the number of fractional digits kept on computed tax.
const MoneyScale = 2

var basisPoints = decimal.NewFromInt(10_000)

// Item describes a line item used for pricing calculation.
type Item struct {
	Qty       int
	UnitPrice Money
}

// Summary aggregates computed pricing components.
type Summary struct {
	Subtotal Money
	Discount Money
	Tax      Money
	Shipping Money
	Total    Money
}

// Compute calculates cart totals given the provided inputs. Tax is charged in
// basis points on the discounted subtotal and rounded half-up to MoneyScale.
func Compute(items []Item, voucher Money, taxBps int, shipping Money) (Summary, error) {
	subtotal := decimal.Zero
	for _, it := range items {
		if it.Qty <= 0 {
			continue
		}
		subtotal = arith.AddDec(subtotal, arith.MulDec(decimal.NewFromInt(int64(it.Qty)), it.UnitPrice))
	}
	if arith.CompareDec(voucher, subtotal) > 0 {
		voucher = subtotal
	}
	if voucher.IsNegative() {
		voucher = decimal.Zero
	}
	taxable := arith.SubDec(subtotal, voucher)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	tax, err := arith.DivDecScale(arith.MulDec(taxable, decimal.NewFromInt(int64(taxBps))), basisPoints, MoneyScale, arith.RoundHalfUp)
	if err != nil {
		return Summary{}, err
	}
	total := arith.AddDec(arith.AddDec(taxable, tax), shipping)
	return Summary{
		Subtotal: subtotal,
		Discount: voucher,
		Tax:      tax,
		Shipping: shipping,
		Total:    total,
	}, nil
}
