// cmd/machin/main.go — CLI for the Machin-like formula search.
//
// Usage:
//
//	machin search [--min 100] [--max 463] [--workers 4]
//	machin digits 0 100
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	machin "github.com/njchilds90/go-machin"
)

var (
	verbose bool
	minTerm int
	maxTerm int
	workers int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "machin",
	Short: "Machin-like formula search for pi",
	Long: `machin hunts for 6-term Machin-like formulas: integer relations

	total / 4 = c1*arctan(1/a1) + ... + c6*arctan(1/a6)

where total is a multiple of pi. Denominators are restricted to a bounded
range and to values a whose a²+1 factors over a chosen set of six primes;
coefficients come from the exact integer kernel of the signed prime-exponent
matrix. It can also print decimal digits of pi.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run the search and print every accepted formula",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := machin.Options{
			MinTerm: minTerm,
			MaxTerm: maxTerm,
			Workers: workers,
			Logger:  logger,
		}
		return machin.Search(cmd.Context(), opt, func(f machin.Formula) {
			fmt.Println(f)
		})
	},
}

var digitsCmd = &cobra.Command{
	Use:   "digits START [END]",
	Short: "Print decimal digits of pi (accurate through position 17400)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := strconv.Atoi(args[0])
		if err != nil || start < 0 {
			return fmt.Errorf("invalid start position %q", args[0])
		}
		end := start
		if len(args) == 2 {
			if end, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid end position %q", args[1])
			}
		}
		fmt.Println(machin.Digits(start, end))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	searchCmd.Flags().IntVar(&minTerm, "min", machin.DefaultMinTerm, "smallest arctangent denominator")
	searchCmd.Flags().IntVar(&maxTerm, "max", machin.DefaultMaxTerm, "largest arctangent denominator")
	searchCmd.Flags().IntVar(&workers, "workers", 1, "prime-subset workers; output order is unchanged")
	rootCmd.AddCommand(searchCmd, digitsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
