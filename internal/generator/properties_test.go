package generator_test

import (
	"io"
	"log/slog"
	"testing"

	"pgregory.net/rapid"

	"github.com/snakeoutgen/generator/internal/generator"
	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/snake"
	"github.com/snakeoutgen/generator/internal/strategy"
)

// Property-based coverage for the universal invariants of §8: every
// generated level, under every random grid/arrow/length/bend combination,
// must satisfy disjointness, connectivity, in-bounds playability, and the
// requested length/bend ranges.
func TestGeneratedLevelsSatisfyUniversalProperties(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rapid.Check(t, func(rt *rapid.T) {
		rows := rapid.IntRange(2, 8).Draw(rt, "rows")
		cols := rapid.IntRange(2, 8).Draw(rt, "cols")
		arrowCount := rapid.IntRange(1, 4).Draw(rt, "arrowCount")
		lengthMin := rapid.IntRange(2, 4).Draw(rt, "lengthMin")
		lengthMax := lengthMin + rapid.IntRange(0, 3).Draw(rt, "lengthSpan")
		bendMin := rapid.IntRange(0, 1).Draw(rt, "bendMin")
		bendMax := bendMin + rapid.IntRange(0, 2).Draw(rt, "bendSpan")
		seed := rapid.Int64().Draw(rt, "seed")

		g, err := grid.New(rows, cols, nil, nil)
		if err != nil {
			rt.Fatalf("unexpected grid construction error: %v", err)
		}

		req := generator.Request{
			Strategy: strategy.RandomAdaptive,
			Params: strategy.Params{
				ArrowCount: arrowCount,
				LengthMin:  lengthMin, LengthMax: lengthMax,
				BendMin: bendMin, BendMax: bendMax,
				NodeBudget: 400,
			},
			Seed: seed,
		}

		outcome := generator.Run(g, req, logger)
		snakes := outcome.Best.Snakes

		checkDisjoint(rt, snakes)
		checkConnected(rt, snakes)
		checkInBoundsAndPlayable(rt, g, snakes)
		checkLengthBounds(rt, snakes, lengthMin, lengthMax)
		checkBendBounds(rt, snakes, bendMin, bendMax)
	})
}

func checkDisjoint(rt *rapid.T, snakes []snake.Snake) {
	seen := map[geom.Cell]bool{}
	for _, sn := range snakes {
		for _, c := range sn.Cells() {
			if seen[c] {
				rt.Fatalf("cell %v occupied by more than one snake", c)
			}
			seen[c] = true
		}
	}
}

func checkConnected(rt *rapid.T, snakes []snake.Snake) {
	for _, sn := range snakes {
		cells := sn.Cells()
		for i := 1; i < len(cells); i++ {
			dr := cells[i].Row - cells[i-1].Row
			dc := cells[i].Col - cells[i-1].Col
			if dr*dr+dc*dc != 1 {
				rt.Fatalf("snake cells %v and %v are not 4-adjacent", cells[i-1], cells[i])
			}
		}
	}
}

func checkInBoundsAndPlayable(rt *rapid.T, g *grid.Grid, snakes []snake.Snake) {
	for _, sn := range snakes {
		for _, c := range sn.Cells() {
			if !g.IsPlayable(c) {
				rt.Fatalf("snake cell %v is not playable", c)
			}
		}
	}
}

func checkLengthBounds(rt *rapid.T, snakes []snake.Snake, lengthMin, lengthMax int) {
	for _, sn := range snakes {
		if sn.Len() < lengthMin || sn.Len() > lengthMax {
			rt.Fatalf("snake length %d outside [%d,%d]", sn.Len(), lengthMin, lengthMax)
		}
	}
}

func checkBendBounds(rt *rapid.T, snakes []snake.Snake, bendMin, bendMax int) {
	for _, sn := range snakes {
		if b := sn.Bends(); b < bendMin || b > bendMax {
			rt.Fatalf("snake bend count %d outside [%d,%d]", b, bendMin, bendMax)
		}
	}
}
