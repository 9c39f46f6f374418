package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/snakeoutgen/generator/internal/api"
)

var (
	genArrowCount   int
	genRows, genCol int
	genMinLen       int
	genMaxLen       int
	genMinBends     int
	genMaxBends     int
	genStrategy     string
	genBonusFill    bool
	genSeed         int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new level and print its JSON to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = " generating level..."
		s.Start()
		defer s.Stop()

		req := api.GenerateRequest{
			ArrowCount: genArrowCount,
			Rows:       genRows, Cols: genCol,
			MinLength: genMinLen, MaxLength: genMaxLen,
			MinBends: genMinBends, MaxBends: genMaxBends,
			Strategy:  genStrategy,
			BonusFill: genBonusFill,
			Seed:      genSeed,
		}

		resp, err := api.Generate(req, slog.Default())
		s.Stop()
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		if resp.IsSolvable {
			color.Green("level solvable (stuck=%d)", resp.StuckCount)
		} else {
			color.Red("level NOT solvable (stuck=%d)", resp.StuckCount)
		}
		for _, l := range resp.Logs {
			fmt.Fprintln(os.Stderr, l)
		}

		return json.NewEncoder(os.Stdout).Encode(resp)
	},
}

func init() {
	generateCmd.Flags().IntVar(&genArrowCount, "arrows", 5, "number of snakes to place")
	generateCmd.Flags().IntVar(&genRows, "rows", 10, "grid rows")
	generateCmd.Flags().IntVar(&genCol, "cols", 10, "grid cols")
	generateCmd.Flags().IntVar(&genMinLen, "min-length", 2, "minimum snake length")
	generateCmd.Flags().IntVar(&genMaxLen, "max-length", 5, "maximum snake length")
	generateCmd.Flags().IntVar(&genMinBends, "min-bends", 0, "minimum bend count")
	generateCmd.Flags().IntVar(&genMaxBends, "max-bends", 2, "maximum bend count")
	generateCmd.Flags().StringVar(&genStrategy, "strategy", "SMART_DYNAMIC", "generation strategy")
	generateCmd.Flags().BoolVar(&genBonusFill, "bonus-fill", false, "run the strategy's bonus fill pass")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "RNG seed")
}
