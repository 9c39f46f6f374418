package strategy

import (
	"math/rand"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/snake"
)

// randomAdaptive shuffles the full playable remainder for starts and
// orders neighbors randomly (§4.5). Runs the Default multi-pass fill.
type randomAdaptive struct {
	edgeBias      bool
	excludeCorner bool
}

func newRandomAdaptive(_ *grid.Grid) Strategy {
	return &randomAdaptive{edgeBias: false, excludeCorner: false}
}

func (s *randomAdaptive) ID() ID { return RandomAdaptive }

func (s *randomAdaptive) PickStarts(g *grid.Grid, occ *grid.Occupancy, rng *rand.Rand) []geom.Cell {
	cells := unoccupiedPlayableCells(g, occ)
	if s.excludeCorner {
		filtered := cells[:0]
		for _, c := range cells {
			if !isCorner(g, c) {
				filtered = append(filtered, c)
			}
		}
		cells = filtered
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	if s.edgeBias {
		sortStableBy(cells, func(a, b geom.Cell) bool { return edgeDistance(g, a) < edgeDistance(g, b) })
	}
	return cells
}

func (s *randomAdaptive) OrderNeighbors(ctx kernel.NeighborContext, candidates []geom.Cell) []geom.Cell {
	out := append([]geom.Cell(nil), candidates...)
	ctx.Rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (s *randomAdaptive) RunFill(g *grid.Grid, occ *grid.Occupancy, placed *[]snake.Snake, fp FillParams, colorer *Colorer, rng *rand.Rand) []string {
	return runMultiPassFill(g, occ, placed, fp, colorer, rng, false)
}
