// Package fill implements Smart Fill (§4.9): gap-filling an already
// constructed, already-solvable level with additional snakes while never
// breaking solvability.
package fill

import (
	"fmt"
	"math/rand"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/snake"
	"github.com/snakeoutgen/generator/internal/validator"
)

// MaxAdditions bounds the total number of snakes Smart Fill may add.
const MaxAdditions = 200

// attemptsPerRound is how many kernel tries a single outer round makes
// before giving up on that round (§4.9 "for up to 50 attempts").
const attemptsPerRound = 50

// Params carries the length/bend constraints for fill-generated snakes.
type Params struct {
	LengthMin, LengthMax int
	BendMin, BendMax     int
	NodeBudget           int
}

// neutralOrderer applies no heuristic preference: the kernel still needs
// a NeighborOrderer, but Smart Fill's own acceptance rule is the full
// solvability re-check, not any strategy's bias (§4.9 "without the
// per-placement exit predicate" — the kernel's own tryAccept still runs,
// Smart Fill just doesn't layer a heuristic on top of it).
type neutralOrderer struct{}

func (neutralOrderer) OrderNeighbors(_ kernel.NeighborContext, candidates []geom.Cell) []geom.Cell {
	return candidates
}

// Colorer hands out color ids for newly added snakes; internal/strategy's
// Colorer is reused via the same round-robin contract by the caller.
type Colorer interface {
	Next() int
}

// Run attempts up to MaxAdditions additional placements on top of an
// already-solvable level, per §4.9: each outer round shuffles the
// remaining playable cells, tries up to attemptsPerRound kernel searches
// from a random remainder cell, tentatively appends any found path, and
// keeps it only if the whole level re-validates as solvable. Stops when a
// whole round adds nothing. occ is the caller's occupancy for the level
// as already placed (obstacles + existing snakes); occ is mutated to
// reflect every accepted addition.
func Run(g *grid.Grid, occ *grid.Occupancy, existing []snake.Snake, p Params, colorer Colorer, rng *rand.Rand) ([]snake.Snake, []string) {
	added := make([]snake.Snake, 0)
	current := append([]snake.Snake(nil), existing...)
	var logs []string

	constraints := kernel.Constraints{
		LengthMin: p.LengthMin, LengthMax: p.LengthMax,
		BendMin: p.BendMin, BendMax: p.BendMax,
		NodeBudget: p.NodeBudget,
	}

	for len(added) < MaxAdditions {
		roundAdded := false

		remainder := g.PlayableCells()
		filtered := remainder[:0]
		for _, c := range remainder {
			if !occ.Occupied(c) {
				filtered = append(filtered, c)
			}
		}
		remainder = filtered
		rng.Shuffle(len(remainder), func(i, j int) { remainder[i], remainder[j] = remainder[j], remainder[i] })

		tries := attemptsPerRound
		if tries > len(remainder) {
			tries = len(remainder)
		}

		for i := 0; i < tries && len(added) < MaxAdditions; i++ {
			start := remainder[i]
			path, ok := kernel.Search(g, occ, start, constraints, neutralOrderer{}, rng)
			if !ok {
				continue
			}

			candidate := snake.Snake{Path: path, ColorID: colorer.Next()}
			trial := append(append([]snake.Snake(nil), current...), candidate)
			result := validator.Run(g, trial)
			if !result.IsSolvable {
				continue
			}

			occ.Add(path...)
			current = trial
			added = append(added, candidate)
			roundAdded = true
		}

		if !roundAdded {
			break
		}
	}

	logs = append(logs, fmt.Sprintf("smart fill added %d snake(s) while preserving solvability", len(added)))
	return added, logs
}
