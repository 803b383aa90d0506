package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/toko-arith/internal/arith"
)

type binaryOp func(a, b float64) (float64, error)

var (
	addOp binaryOp = arith.Add
	subOp binaryOp = arith.Sub
	mulOp binaryOp = arith.Mul
)

type scaledOp func(v float64, scale int) (float64, error)

var (
	roundOp scaledOp = arith.Round
	floorOp scaledOp = arith.Floor
)

func (a *app) binaryCmd(use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return a.fail(use, err)
			}
			res, err := op(vals[0], vals[1])
			if err != nil {
				return a.fail(use, err)
			}
			a.logger.Debug().Str("op", use).Strs("args", args).Float64("result", res).Msg("arith_done")
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(res))
			return nil
		},
	}
}

func (a *app) divCmd() *cobra.Command {
	var scale int
	c := &cobra.Command{
		Use:   "div <a> <b>",
		Short: "Decimal quotient rounded half-up to --scale digits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return a.fail("div", err)
			}
			res, err := arith.DivScale(vals[0], vals[1], scale)
			if err != nil {
				return a.fail("div", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(res))
			return nil
		},
	}
	c.Flags().IntVar(&scale, "scale", a.cfg.DivScale, "Fractional digits to keep")
	return c
}

func (a *app) roundCmd(use, short string, op scaledOp) *cobra.Command {
	var scale int
	c := &cobra.Command{
		Use:   use + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return a.fail(use, err)
			}
			res, err := op(vals[0], scale)
			if err != nil {
				return a.fail(use, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(res))
			return nil
		},
	}
	c.Flags().IntVar(&scale, "scale", 0, "Fractional digits to keep")
	return c
}

func (a *app) cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Print 1, 0 or -1 as a is greater, equal or less than b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return a.fail("cmp", err)
			}
			res, err := arith.Compare(vals[0], vals[1])
			if err != nil {
				return a.fail("cmp", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (a *app) discountCmd() *cobra.Command {
	threshold, _ := a.cfg.DiscountThreshold.Float64()
	step, _ := a.cfg.DiscountStep.Float64()
	c := &cobra.Command{
		Use:   "discount <fee>",
		Short: "Tiered discount: one --step past --threshold, one more per full 100",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return a.fail("discount", err)
			}
			res, err := arith.Discount(vals[0], threshold, step)
			if err != nil {
				return a.fail("discount", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(res))
			return nil
		},
	}
	c.Flags().Float64Var(&threshold, "threshold", threshold, "Fee the customer must exceed")
	c.Flags().Float64Var(&step, "step", step, "Discount granted per tier")
	return c
}
