package strategy

import (
	"fmt"
	"math/rand"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/snake"
)

const (
	fillMaxTotalAttempts   = 100
	fillMaxConsecutiveMiss = 12
	fillBatchSize          = 20
)

// runMultiPassFill implements the shared structure behind both named fill
// passes (§4.5): three passes over shrinking length ranges — (Lmin,Lmax),
// (2,Lmax), (2,min(4,Lmax)) — each sampling a batch of remaining cells,
// splitting into an exit-ready pool and the rest, and trying a
// strategy-independent "tight" neighbor sort through the kernel.
//
// onlyExitReady distinguishes MinFragment fill (true: never starts a snake
// from a cell with no immediate exit, since doing so tends to strand a
// fragment of the remaining space) from the Default multi-pass fill
// (false: falls back to the non-exit-ready pool within the same pass).
// This is the canonical 3-pass schedule chosen for the "two diverging
// _bonus_fill implementations" open question in §9 (2-pass vs 3-pass);
// the 3-pass schedule is used here, as instructed.
func runMultiPassFill(g *grid.Grid, occ *grid.Occupancy, placed *[]snake.Snake, fp FillParams, colorer *Colorer, rng *rand.Rand, onlyExitReady bool) []string {
	maxLen4 := fp.LengthMax
	if maxLen4 > 4 {
		maxLen4 = 4
	}
	passes := [3][2]int{
		{fp.LengthMin, fp.LengthMax},
		{2, fp.LengthMax},
		{2, maxLen4},
	}

	var logs []string
	attemptsUsed := 0
	totalAdded := 0

	for passIdx, lr := range passes {
		if attemptsUsed >= fillMaxTotalAttempts {
			break
		}
		added := 0
		consecutiveMisses := 0

		for attemptsUsed < fillMaxTotalAttempts && consecutiveMisses < fillMaxConsecutiveMiss {
			remaining := unoccupiedPlayableCells(g, occ)
			if len(remaining) == 0 {
				break
			}
			rng.Shuffle(len(remaining), func(i, j int) { remaining[i], remaining[j] = remaining[j], remaining[i] })
			batchSize := fillBatchSize
			if batchSize > len(remaining) {
				batchSize = len(remaining)
			}
			batch := remaining[:batchSize]

			var exitReady, notReady []geom.Cell
			for _, c := range batch {
				if hasImmediateExit(g, occ, c) {
					exitReady = append(exitReady, c)
				} else {
					notReady = append(notReady, c)
				}
			}
			pool := exitReady
			if !onlyExitReady {
				pool = append(pool, notReady...)
			}
			if len(pool) == 0 {
				consecutiveMisses++
				attemptsUsed++
				continue
			}

			placedOne := false
			for _, start := range pool {
				if occ.Occupied(start) {
					continue
				}
				attemptsUsed++
				constraints := kernel.Constraints{
					LengthMin: lr[0], LengthMax: lr[1],
					BendMin: fp.BendMin, BendMax: fp.BendMax,
					NodeBudget: fp.NodeBudget,
				}
				path, ok := kernel.Search(g, occ, start, constraints, tightOrderer{}, rng)
				if ok {
					sn := snake.Snake{Path: path, ColorID: colorer.Next()}
					occ.Add(path...)
					*placed = append(*placed, sn)
					added++
					totalAdded++
					placedOne = true
					consecutiveMisses = 0
					break
				}
				if attemptsUsed >= fillMaxTotalAttempts {
					break
				}
			}
			if !placedOne {
				consecutiveMisses++
			}
		}

		logs = append(logs, fmt.Sprintf("fill pass %d (L=[%d,%d]): added %d snakes", passIdx+1, lr[0], lr[1], added))
	}

	logs = append(logs, fmt.Sprintf("fill: %d snakes added across %d passes", totalAdded, len(passes)))
	return logs
}

func unoccupiedPlayableCells(g *grid.Grid, occ *grid.Occupancy) []geom.Cell {
	var out []geom.Cell
	for _, c := range g.PlayableCells() {
		if !occ.Occupied(c) {
			out = append(out, c)
		}
	}
	return out
}
