package cmd

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/noah-isme/toko-arith/internal/config"
)

// app carries the dependencies shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	verbose bool
}

// NewRootCmd builds the arith command tree.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger}

	root := &cobra.Command{
		Use:   "arith",
		Short: "Decimal-safe arithmetic for prices and discounts",
		Long: `arith evaluates money arithmetic in exact decimal.

Float arguments are read through their printed decimal form, so
"arith add 0.1 0.2" prints 0.3 rather than 0.30000000000000004.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.logger = a.logger.Level(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(
		a.binaryCmd("add", "Exact decimal sum", addOp),
		a.binaryCmd("sub", "Exact decimal difference", subOp),
		a.binaryCmd("mul", "Exact decimal product", mulOp),
		a.divCmd(),
		a.roundCmd("round", "Round half-up to --scale digits", roundOp),
		a.roundCmd("floor", "Round toward negative infinity at --scale digits", floorOp),
		a.cmpCmd(),
		a.discountCmd(),
		a.quoteCmd(),
		a.checkoutCmd(),
	)
	return root
}

// fail logs err against the operation and hands it back to cobra.
func (a *app) fail(op string, err error) error {
	a.logger.Error().Str("op", op).Err(err).Msg("arith_failed")
	return err
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
