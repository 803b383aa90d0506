package voucher

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputePercent(t *testing.T) {
	percent := int32(2000)
	rule := Rule{Kind: KindPercent, PercentBps: &percent}
	discount, err := Compute(money("100000"), rule)
	require.NoError(t, err)
	require.True(t, discount.Equal(money("20000")), "got %s", discount)
}

func TestComputePercentRoundsHalfUpToCents(t *testing.T) {
	percent := int32(1250)
	rule := Rule{Kind: KindPercent, PercentBps: &percent}
	// 12.5% of 0.99 = 0.12375
	discount, err := Compute(money("0.99"), rule)
	require.NoError(t, err)
	require.Equal(t, "0.12", discount.String())

	// 12.5% of 1.00 = 0.125
	discount, err = Compute(money("1.00"), rule)
	require.NoError(t, err)
	require.Equal(t, "0.13", discount.String())
}

func TestComputeTiered(t *testing.T) {
	rule := Rule{Kind: KindTiered, Threshold: money("100"), StepValue: money("10")}

	discount, err := Compute(money("250"), rule)
	require.NoError(t, err)
	require.True(t, discount.Equal(money("20")))

	discount, err = Compute(money("50"), rule)
	require.NoError(t, err)
	require.True(t, discount.IsZero())
}

func TestComputeCapsAtEligible(t *testing.T) {
	rule := Rule{Kind: KindFixed, Value: money("75")}
	discount, err := Compute(money("40.50"), rule)
	require.NoError(t, err)
	require.True(t, discount.Equal(money("40.50")))

	rule = Rule{Kind: KindFixed, Value: money("-5")}
	discount, err = Compute(money("40"), rule)
	require.NoError(t, err)
	require.True(t, discount.IsZero())
}

func TestComputeUnknownKind(t *testing.T) {
	_, err := Compute(money("10"), Rule{Kind: "bogus"})
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestEligibleSubtotalScoped(t *testing.T) {
	prodID := uuidMust("11111111-1111-1111-1111-111111111111")
	otherProd := uuidMust("22222222-2222-2222-2222-222222222222")
	rule := Rule{ProductIDs: []uuid.UUID{prodID}}
	items := []Item{
		{ProductID: &prodID, Subtotal: money("500.10")},
		{ProductID: &otherProd, Subtotal: money("700")},
		{Subtotal: money("10")},
	}
	eligible := EligibleSubtotal(items, rule)
	require.True(t, eligible.Equal(money("500.10")), "got %s", eligible)
}

func TestEligibleSubtotalUnscopedSkipsNonPositive(t *testing.T) {
	items := []Item{
		{Subtotal: money("0.1")},
		{Subtotal: money("0.2")},
		{Subtotal: money("-3")},
	}
	require.Equal(t, "0.3", EligibleSubtotal(items, Rule{}).String())
}

func TestValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	zero := int32(0)

	require.ErrorIs(t, Rule{MinSpend: money("100")}.Validate(now, money("99.99")), ErrMinimumSpendUnmet)
	require.NoError(t, Rule{MinSpend: money("100")}.Validate(now, money("100.00")))
	require.ErrorIs(t, Rule{ValidFrom: &future}.Validate(now, money("1")), ErrVoucherInactive)
	require.ErrorIs(t, Rule{ValidTo: &past}.Validate(now, money("1")), ErrVoucherExpired)
	require.ErrorIs(t, Rule{UsageLimit: &zero}.Validate(now, money("1")), ErrUsageLimitReached)
	require.ErrorIs(t, Rule{EffectiveLimit: 1, PerUserUsed: 1}.Validate(now, money("1")), ErrPerUserLimitReached)
}

func uuidMust(value string) uuid.UUID {
	id, err := uuid.Parse(value)
	if err != nil {
		panic(err)
	}
	return id
}
