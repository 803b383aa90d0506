package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/noah-isme/toko-arith/internal/arith"
)

func (a *app) quoteCmd() *cobra.Command {
	var (
		exact bool
		scale int
		mode  string
	)
	c := &cobra.Command{
		Use:   "quote <a> <b>",
		Short: "Divide two decimals exactly or with an explicit scale and rounding mode",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := decimal.NewFromString(args[0])
			if err != nil {
				return a.fail("quote", fmt.Errorf("parse %q: %w", args[0], err))
			}
			den, err := decimal.NewFromString(args[1])
			if err != nil {
				return a.fail("quote", fmt.Errorf("parse %q: %w", args[1], err))
			}
			var q decimal.Decimal
			if exact {
				q, err = arith.DivDec(num, den)
			} else {
				var m arith.RoundingMode
				if m, err = arith.ParseRoundingMode(mode); err == nil {
					q, err = arith.DivDecScale(num, den, scale, m)
				}
			}
			if err != nil {
				return a.fail("quote", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), q.String())
			return nil
		},
	}
	c.Flags().BoolVar(&exact, "exact", false, "Fail unless the quotient terminates")
	c.Flags().IntVar(&scale, "scale", a.cfg.DivScale, "Fractional digits to keep")
	c.Flags().StringVar(&mode, "mode", arith.RoundHalfUp.String(), "Rounding mode: half_up, half_even, floor, ceiling, down, up")
	return c
}
