package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-arith/internal/arith"
	"github.com/noah-isme/toko-arith/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:            "test",
		DivScale:          10,
		MoneyScale:        2,
		DiscountThreshold: decimal.NewFromInt(100),
		DiscountStep:      decimal.NewFromInt(10),
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := NewRootCmd(testConfig(), zerolog.New(&logs))
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return strings.TrimSpace(out.String()), logs.String(), err
}

func TestFloatCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "0.1", "0.2"}, "0.3"},
		{[]string{"sub", "1", "0.9"}, "0.1"},
		{[]string{"mul", "1.1", "1.1"}, "1.21"},
		{[]string{"div", "1", "3"}, "0.3333333333"},
		{[]string{"div", "--scale", "2", "1", "3"}, "0.33"},
		{[]string{"round", "--scale", "2", "2.345"}, "2.35"},
		{[]string{"round", "--scale", "2", "--", "-2.345"}, "-2.35"},
		{[]string{"floor", "--scale", "2", "1.999"}, "1.99"},
		{[]string{"cmp", "2", "1"}, "1"},
		{[]string{"cmp", "1", "1.0"}, "0"},
		{[]string{"discount", "250"}, "20"},
		{[]string{"discount", "50"}, "0"},
		{[]string{"discount", "--threshold", "0", "--step", "5", "99"}, "5"},
	}
	for _, tt := range tests {
		out, _, err := run(t, tt.args...)
		require.NoErrorf(t, err, "args %v", tt.args)
		require.Equalf(t, tt.want, out, "args %v", tt.args)
	}
}

func TestDivByZeroIsReportedAndLogged(t *testing.T) {
	out, logs, err := run(t, "div", "1", "0")
	require.ErrorIs(t, err, arith.ErrDivisionByZero)
	require.Empty(t, out)
	require.Contains(t, logs, `"op":"div"`)
	require.Contains(t, logs, "division by zero")
}

func TestNegativeScaleRejected(t *testing.T) {
	_, _, err := run(t, "floor", "--scale=-1", "1.5")
	require.ErrorIs(t, err, arith.ErrInvalidArgument)
}

func TestBadNumber(t *testing.T) {
	_, _, err := run(t, "add", "one", "2")
	require.ErrorContains(t, err, `parse "one"`)
}

func TestQuote(t *testing.T) {
	out, _, err := run(t, "quote", "--exact", "1", "8")
	require.NoError(t, err)
	require.Equal(t, "0.125", out)

	_, _, err = run(t, "quote", "--exact", "1", "3")
	require.ErrorIs(t, err, arith.ErrNonTerminating)

	out, _, err = run(t, "quote", "--scale", "2", "--mode", "half_even", "1", "8")
	require.NoError(t, err)
	require.Equal(t, "0.12", out)

	_, _, err = run(t, "quote", "--mode", "sideways", "1", "8")
	require.ErrorIs(t, err, arith.ErrUnknownRoundingMode)
}

func TestCheckout(t *testing.T) {
	out, _, err := run(t, "checkout",
		"--item", "2:100",
		"--item", "1:50.5",
		"--tax-bps", "1100",
		"--shipping", "7.5",
	)
	require.NoError(t, err)
	// subtotal 250.50 earns two steps of 10; tax 11% of 230.50 = 25.355
	require.Equal(t, strings.Join([]string{
		"subtotal 250.50",
		"discount 20.00",
		"tax      25.36",
		"shipping 7.50",
		"total    263.36",
	}, "\n"), out)
}

func TestCheckoutBelowThresholdAndNoCode(t *testing.T) {
	out, _, err := run(t, "checkout", "--item", "1:80")
	require.NoError(t, err)
	require.Contains(t, out, "discount 0.00")
	require.Contains(t, out, "total    80.00")

	out, _, err = run(t, "checkout", "--code", "", "--item", "3:100")
	require.NoError(t, err)
	require.Contains(t, out, "discount 0.00")
}

func TestCheckoutRequiresItems(t *testing.T) {
	_, _, err := run(t, "checkout")
	require.ErrorContains(t, err, "--item")

	_, _, err = run(t, "checkout", "--item", "two:5")
	require.Error(t, err)

	_, _, err = run(t, "checkout", "--item", "1:5", "--user", "not-a-uuid")
	require.ErrorContains(t, err, "invalid user id")
}
