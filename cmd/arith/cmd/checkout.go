package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/noah-isme/toko-arith/internal/pricing"
	"github.com/noah-isme/toko-arith/internal/voucher"
)

// tieredCode names the voucher built from DISCOUNT_THRESHOLD and DISCOUNT_STEP.
const tieredCode = "TIERED"

func (a *app) checkoutCmd() *cobra.Command {
	var (
		items    []string
		code     string
		userID   string
		taxBps   int
		shipping string
	)
	c := &cobra.Command{
		Use:   "checkout --item <qty>:<price> [--item ...]",
		Short: "Price a cart with the tiered voucher, tax and shipping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := parseItems(items)
			if err != nil {
				return a.fail("checkout", err)
			}
			ship, err := decimal.NewFromString(shipping)
			if err != nil {
				return a.fail("checkout", fmt.Errorf("parse shipping %q: %w", shipping, err))
			}
			var user *uuid.UUID
			if strings.TrimSpace(userID) != "" {
				id, err := uuid.Parse(strings.TrimSpace(userID))
				if err != nil {
					return a.fail("checkout", fmt.Errorf("invalid user id: %w", err))
				}
				user = &id
			}

			subtotal, err := pricing.Compute(lines, decimal.Zero, 0, decimal.Zero)
			if err != nil {
				return a.fail("checkout", err)
			}
			discount := decimal.Zero
			if code != "" {
				discount, err = a.previewVoucher(cmd, code, user, subtotal.Subtotal)
				if err != nil {
					return a.fail("checkout", err)
				}
			}
			sum, err := pricing.Compute(lines, discount, taxBps, ship)
			if err != nil {
				return a.fail("checkout", err)
			}

			places := int32(a.cfg.MoneyScale)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "subtotal %s\n", sum.Subtotal.StringFixed(places))
			fmt.Fprintf(out, "discount %s\n", sum.Discount.StringFixed(places))
			fmt.Fprintf(out, "tax      %s\n", sum.Tax.StringFixed(places))
			fmt.Fprintf(out, "shipping %s\n", sum.Shipping.StringFixed(places))
			fmt.Fprintf(out, "total    %s\n", sum.Total.StringFixed(places))
			return nil
		},
	}
	c.Flags().StringArrayVar(&items, "item", nil, "Cart line as quantity:unit_price, repeatable")
	c.Flags().StringVar(&code, "code", tieredCode, "Voucher code to apply, empty for none")
	c.Flags().StringVar(&userID, "user", "", "Customer id for per-user voucher limits")
	c.Flags().IntVar(&taxBps, "tax-bps", 0, "Tax rate in basis points")
	c.Flags().StringVar(&shipping, "shipping", "0", "Shipping fee")
	return c
}

// previewVoucher returns the discount for code, or zero when the cart does not qualify.
func (a *app) previewVoucher(cmd *cobra.Command, code string, user *uuid.UUID, subtotal decimal.Decimal) (decimal.Decimal, error) {
	store := voucher.NewMemoryStore(voucher.Rule{
		Code:      tieredCode,
		Kind:      voucher.KindTiered,
		Threshold: a.cfg.DiscountThreshold,
		StepValue: a.cfg.DiscountStep,
	})
	svc := &voucher.Service{Store: store, Logger: &a.logger}
	res, err := svc.Preview(cmd.Context(), code, user, subtotal, []voucher.Item{{Subtotal: subtotal}})
	switch {
	case err == nil:
		return res.Discount, nil
	case errors.Is(err, voucher.ErrNotEligible):
		a.logger.Debug().Str("code", code).Msg("voucher_not_applied")
		return decimal.Zero, nil
	default:
		return decimal.Zero, err
	}
}

func parseItems(raw []string) ([]pricing.Item, error) {
	if len(raw) == 0 {
		return nil, errors.New("at least one --item is required")
	}
	out := make([]pricing.Item, 0, len(raw))
	for _, entry := range raw {
		qtyPart, pricePart, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("item %q: want quantity:price", entry)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(qtyPart))
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", entry, err)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(pricePart))
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", entry, err)
		}
		out = append(out, pricing.Item{Qty: qty, UnitPrice: price})
	}
	return out, nil
}
