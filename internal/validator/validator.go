// Package validator implements the Solvability Validator (§4.7): a
// fixpoint simulation that removes every snake whose head can currently
// raycast clear to the grid boundary, batched per step, until a step
// removes nothing.
package validator

import (
	"fmt"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/raycast"
	"github.com/snakeoutgen/generator/internal/snake"
)

// Result is the validator's full output: solvability plus the diagnostics
// the difficulty scorer and the external Validate entry point both need.
type Result struct {
	IsSolvable    bool
	RemainedCount int
	TotalSnakes   int
	Steps         int
	Logs          []string
	AvgStuckRatio float64
}

// Run simulates batched per-step removal over snakes, treating every obstacle
// cell that blocks (walls, wall breaks, holes, tunnels) as a static,
// never-removed occupant. Tunnels are not used as movement aids here, per
// §4.7 — they behave as plain blockers during validation, same as during
// generation.
func Run(g *grid.Grid, snakes []snake.Snake) Result {
	active := make(map[int]*snake.Snake, len(snakes))
	for i := range snakes {
		sn := snakes[i]
		active[i] = &sn
	}

	occ := grid.NewOccupancy(g)
	for _, sn := range active {
		occ.Add(sn.Cells()...)
	}

	var logs []string
	var stuckRatios []float64
	steps := 0

	for len(active) > 0 {
		stuck := 0
		removable := make([]int, 0)

		for id, sn := range active {
			if !canExitDuringValidation(g, occ, sn) {
				stuck++
				continue
			}
			removable = append(removable, id)
		}

		stuckRatios = append(stuckRatios, float64(stuck)/float64(len(active)))

		if len(removable) == 0 {
			break
		}

		for _, id := range removable {
			occ.Remove(active[id].Cells()...)
			delete(active, id)
		}
		steps++
		logs = append(logs, fmt.Sprintf("step %d: removed %d snake(s), %d remain", steps, len(removable), len(active)))
	}

	var avgStuck float64
	if len(stuckRatios) > 0 {
		var sum float64
		for _, r := range stuckRatios {
			sum += r
		}
		avgStuck = sum / float64(len(stuckRatios))
	}

	remained := len(active)
	solvable := remained == 0
	if solvable {
		logs = append(logs, "all snakes cleared")
	} else {
		logs = append(logs, fmt.Sprintf("stuck: %d snake(s) never gained a clear exit", remained))
	}

	return Result{
		IsSolvable:    solvable,
		RemainedCount: remained,
		TotalSnakes:   len(snakes),
		Steps:         steps,
		Logs:          logs,
		AvgStuckRatio: avgStuck,
	}
}

// canExitDuringValidation tests sn's head against an occupancy that
// excludes only sn's own cells — every other active snake and every
// blocking obstacle still counts (§9 "raycast with self-exclusion": the
// validator's removal predicate excludes nothing but the snake itself,
// unlike the placement-time predicate which also forbids the ray from
// piercing its own body further down the path — moot here since the head
// is the only cell tested, but the exclusion set still must be sn's cells
// so its own body never blocks its own exit check).
func canExitDuringValidation(g *grid.Grid, occ *grid.Occupancy, sn *snake.Snake) bool {
	own := make(map[geom.Cell]struct{}, sn.Len())
	for _, c := range sn.Cells() {
		own[c] = struct{}{}
	}
	blockers := raycast.Excluding(occ, own)
	return raycast.CanExit(g, blockers, sn.Head(), sn.Facing())
}

// Describe renders a Result as a human-readable one-line outcome summary,
// in the cascading-conditional style the teacher uses to describe a
// finished game (outcome.go's describeGameOutcome).
func Describe(r Result) string {
	switch {
	case r.TotalSnakes == 0:
		return "empty level: vacuously solvable"
	case r.IsSolvable && r.Steps == r.TotalSnakes:
		return fmt.Sprintf("solvable: all %d snakes cleared one per step", r.TotalSnakes)
	case r.IsSolvable:
		return fmt.Sprintf("solvable: %d snakes cleared in %d batched steps", r.TotalSnakes, r.Steps)
	case r.RemainedCount == r.TotalSnakes:
		return "unsolvable: no snake ever gained a clear exit"
	default:
		return fmt.Sprintf("unsolvable: %d of %d snakes stuck after %d steps", r.RemainedCount, r.TotalSnakes, r.Steps)
	}
}
