package arith_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-arith/internal/arith"
)

func TestDiscountTiers(t *testing.T) {
	tests := []struct {
		fee, threshold, step float64
		want                 float64
	}{
		{250, 100, 10, 20},
		{50, 100, 10, 0},
		{100, 100, 10, 0},
		{100.01, 100, 10, 10},
		{199.99, 100, 10, 10},
		{200, 100, 10, 20},
		{300, 100, 10, 30},
		{1000, 0, 2.5, 27.5},
	}
	for _, tt := range tests {
		got, err := arith.Discount(tt.fee, tt.threshold, tt.step)
		require.NoError(t, err)
		require.Equalf(t, tt.want, got, "Discount(%v, %v, %v)", tt.fee, tt.threshold, tt.step)
	}
}

func TestDiscountDec(t *testing.T) {
	got := arith.DiscountDec(dec("0.3"), dec("0.1"), dec("0.1"))
	require.Equal(t, "0.1", got.String())

	got = arith.DiscountDec(dec("350.50"), dec("150"), dec("15"))
	require.True(t, got.Equal(dec("45")))
}

func TestDiscountRejectsNonFinite(t *testing.T) {
	_, err := arith.Discount(250, 100, math.NaN())
	require.ErrorIs(t, err, arith.ErrNonFinite)
}
