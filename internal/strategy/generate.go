package strategy

import (
	"fmt"
	"math/rand"

	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/snake"
)

// Generate runs the shared placement loop for any Strategy: repeatedly ask
// PickStarts for an ordered candidate list, try the kernel from each until
// one yields a satisfying path, commit it, and repeat until ArrowCount
// snakes are placed or every start candidate is exhausted (§4.4's "caller
// tries another start" on kernel failure).
func Generate(s Strategy, g *grid.Grid, occ *grid.Occupancy, p Params, rng *rand.Rand) ([]snake.Snake, []string) {
	var placed []snake.Snake
	var logs []string
	colorer := NewColorer(p.Colors)

	constraints := kernel.Constraints{
		LengthMin:  p.LengthMin,
		LengthMax:  p.LengthMax,
		BendMin:    p.BendMin,
		BendMax:    p.BendMax,
		NodeBudget: p.NodeBudget,
	}

	for len(placed) < p.ArrowCount {
		starts := s.PickStarts(g, occ, rng)
		if len(starts) == 0 {
			logs = append(logs, fmt.Sprintf("%s: no start candidates remain after placing %d/%d snakes", s.ID(), len(placed), p.ArrowCount))
			break
		}

		grower, isJoint := s.(JointGrower)

		foundThisRound := false
		for _, start := range starts {
			if occ.Occupied(start) {
				continue
			}

			if isJoint {
				paths, ok := grower.GrowJoint(g, occ, start, constraints, rng)
				if !ok {
					continue
				}
				for _, path := range paths {
					sn := snake.Snake{Path: path, ColorID: colorer.Next()}
					occ.Add(path...)
					placed = append(placed, sn)
				}
				foundThisRound = true
				break
			}

			path, ok := kernel.Search(g, occ, start, constraints, s, rng)
			if !ok {
				continue
			}
			sn := snake.Snake{Path: path, ColorID: colorer.Next()}
			occ.Add(path...)
			placed = append(placed, sn)
			foundThisRound = true
			break
		}

		if !foundThisRound {
			logs = append(logs, fmt.Sprintf("%s: search exhausted all start candidates for snake %d/%d", s.ID(), len(placed)+1, p.ArrowCount))
			break
		}
	}

	if len(placed) < p.ArrowCount {
		logs = append(logs, fmt.Sprintf("%s: generation underfill, placed %d/%d", s.ID(), len(placed), p.ArrowCount))
	}

	if p.BonusFill {
		if runner, ok := s.(FillRunner); ok {
			fillParams := FillParams{
				LengthMin: p.LengthMin, LengthMax: p.LengthMax,
				BendMin: p.BendMin, BendMax: p.BendMax,
				NodeBudget: p.NodeBudget,
			}
			fillLogs := runner.RunFill(g, occ, &placed, fillParams, colorer, rng)
			logs = append(logs, fillLogs...)
		}
	}

	return placed, logs
}
