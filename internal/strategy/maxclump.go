package strategy

import (
	"math/rand"
	"sort"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/snake"
)

// maxClump requires a minimum free-neighbor count for starts (favoring
// open pockets) and prefers expansion (more free neighbors) for the next
// step (§4.5). Runs MinFragment fill.
type maxClump struct {
	minAreaSize      int
	excludeEdgeStart bool
}

func newMaxClump(_ *grid.Grid) Strategy {
	return &maxClump{minAreaSize: 3, excludeEdgeStart: false}
}

func (s *maxClump) ID() ID { return MaxClump }

func (s *maxClump) PickStarts(g *grid.Grid, occ *grid.Occupancy, rng *rand.Rand) []geom.Cell {
	var cells []geom.Cell
	for _, c := range unoccupiedPlayableCells(g, occ) {
		if freeNeighborCount(g, occ, c) < s.minAreaSize {
			continue
		}
		if s.excludeEdgeStart && edgeDistance(g, c) == 0 {
			continue
		}
		cells = append(cells, c)
	}
	if len(cells) == 0 {
		return nil
	}

	sort.SliceStable(cells, func(i, j int) bool {
		return freeNeighborCount(g, occ, cells[i]) > freeNeighborCount(g, occ, cells[j])
	})

	top := topN(cells, 0.15)
	rng.Shuffle(len(top), func(i, j int) { top[i], top[j] = top[j], top[i] })
	return append(top, cells[len(top):]...)
}

func (s *maxClump) OrderNeighbors(ctx kernel.NeighborContext, candidates []geom.Cell) []geom.Cell {
	out := append([]geom.Cell(nil), candidates...)
	sort.SliceStable(out, func(i, j int) bool {
		return freeNeighborCount(ctx.Grid, ctx.Occ, out[i]) > freeNeighborCount(ctx.Grid, ctx.Occ, out[j])
	})
	return out
}

func (s *maxClump) RunFill(g *grid.Grid, occ *grid.Occupancy, placed *[]snake.Snake, fp FillParams, colorer *Colorer, rng *rand.Rand) []string {
	return runMultiPassFill(g, occ, placed, fp, colorer, rng, true)
}
