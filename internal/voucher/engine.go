package voucher

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-arith/internal/arith"
)

// Voucher kinds understood by Compute.
const (
	KindFixed   = "fixed"
	KindPercent = "percent"
	KindTiered  = "tiered"
)

// MoneyScale is the number of fractional digits kept on computed discounts.
const MoneyScale = 2

var (
	// ErrNotEligible is returned when the voucher cannot be applied to the provided context.
	ErrNotEligible = errors.New("voucher not eligible")
	// ErrUsageLimitReached indicates the voucher has exhausted the global usage quota.
	ErrUsageLimitReached = errors.New("voucher usage limit reached")
	// ErrPerUserLimitReached indicates the caller has exceeded the per-user allowance.
	ErrPerUserLimitReached = errors.New("voucher per-user usage limit reached")
	// ErrVoucherInactive is returned when attempting to use a voucher outside of its active window.
	ErrVoucherInactive = errors.New("voucher not active")
	// ErrVoucherExpired is returned when the voucher has already expired.
	ErrVoucherExpired = errors.New("voucher expired")
	// ErrMinimumSpendUnmet indicates the order total did not meet the voucher requirement.
	ErrMinimumSpendUnmet = errors.New("voucher minimum spend not met")
	// ErrUnknownKind is returned by Compute for a kind it cannot price.
	ErrUnknownKind = errors.New("voucher kind unknown")
)

var basisPoints = decimal.NewFromInt(10_000)

// Rule captures the runtime constraints of a voucher.
type Rule struct {
	Code       string
	Kind       string
	Value      decimal.Decimal
	PercentBps *int32
	// Threshold and StepValue drive tiered vouchers: one step once the
	// eligible amount passes Threshold, plus one per full 100 above it.
	Threshold      decimal.Decimal
	StepValue      decimal.Decimal
	MinSpend       decimal.Decimal
	UsageLimit     *int32
	UsedCount      int32
	PerUserLimit   *int32
	ValidFrom      *time.Time
	ValidTo        *time.Time
	ProductIDs     []uuid.UUID
	CategoryIDs    []uuid.UUID
	BrandIDs       []uuid.UUID
	DefaultLimit   int
	PerUserUsed    int32
	EffectiveLimit int32
}

// Item represents a line eligible for voucher calculation.
type Item struct {
	ProductID  *uuid.UUID
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
	Subtotal   decimal.Decimal
}

// Validate ensures the rule can be applied at the provided instant and order total.
func (r Rule) Validate(now time.Time, cartTotal decimal.Decimal) error {
	if cartTotal.LessThan(r.MinSpend) {
		return ErrMinimumSpendUnmet
	}
	if r.ValidFrom != nil && now.Before(*r.ValidFrom) {
		return ErrVoucherInactive
	}
	if r.ValidTo != nil && now.After(*r.ValidTo) {
		return ErrVoucherExpired
	}
	if r.UsageLimit != nil && *r.UsageLimit >= 0 && r.UsedCount >= *r.UsageLimit {
		return ErrUsageLimitReached
	}
	if r.EffectiveLimit > 0 && r.PerUserUsed >= r.EffectiveLimit {
		return ErrPerUserLimitReached
	}
	return nil
}

// EligibleSubtotal calculates the portion of the cart total that is affected by the voucher rule.
func EligibleSubtotal(items []Item, r Rule) decimal.Decimal {
	total := decimal.Zero
	scoped := len(r.ProductIDs) > 0 || len(r.CategoryIDs) > 0 || len(r.BrandIDs) > 0
	for _, it := range items {
		if !it.Subtotal.IsPositive() {
			continue
		}
		if !scoped || ruleMatchesItem(r, it) {
			total = arith.AddDec(total, it.Subtotal)
		}
	}
	return total
}

func ruleMatchesItem(r Rule, it Item) bool {
	if len(r.ProductIDs) > 0 && containsID(r.ProductIDs, it.ProductID) {
		return true
	}
	if len(r.CategoryIDs) > 0 && containsID(r.CategoryIDs, it.CategoryID) {
		return true
	}
	if len(r.BrandIDs) > 0 && containsID(r.BrandIDs, it.BrandID) {
		return true
	}
	return false
}

func containsID(ids []uuid.UUID, id *uuid.UUID) bool {
	if id == nil {
		return false
	}
	for _, candidate := range ids {
		if candidate == *id {
			return true
		}
	}
	return false
}

// Compute determines the discount amount based on the rule and eligible subtotal.
// The result never exceeds the eligible amount and is never negative.
func Compute(eligible decimal.Decimal, r Rule) (decimal.Decimal, error) {
	if !eligible.IsPositive() {
		return decimal.Zero, nil
	}
	var discount decimal.Decimal
	switch strings.ToLower(strings.TrimSpace(r.Kind)) {
	case KindFixed, "":
		discount = r.Value
	case KindPercent:
		if r.PercentBps == nil || *r.PercentBps <= 0 {
			return decimal.Zero, nil
		}
		scaled := arith.MulDec(eligible, decimal.NewFromInt32(*r.PercentBps))
		var err error
		discount, err = arith.DivDecScale(scaled, basisPoints, MoneyScale, arith.RoundHalfUp)
		if err != nil {
			return decimal.Zero, err
		}
	case KindTiered:
		discount = arith.DiscountDec(eligible, r.Threshold, r.StepValue)
	default:
		return decimal.Zero, ErrUnknownKind
	}
	if arith.CompareDec(discount, eligible) > 0 {
		discount = eligible
	}
	if discount.IsNegative() {
		return decimal.Zero, nil
	}
	return discount, nil
}
