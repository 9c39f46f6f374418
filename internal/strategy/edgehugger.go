package strategy

import (
	"math/rand"
	"sort"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/snake"
)

// edgeHugger keeps only cells within dMax of any edge, penalizes corners,
// and biases neighbor choice toward edge-proximity (§4.5). Runs
// MinFragment fill.
type edgeHugger struct {
	dMax             int
	wallFollowStrength float64
}

func newEdgeHugger(g *grid.Grid) Strategy {
	dMax := g.Rows / 3
	if g.Cols/3 > dMax {
		dMax = g.Cols / 3
	}
	if dMax < 2 {
		dMax = 2
	}
	return &edgeHugger{dMax: dMax, wallFollowStrength: 0.7}
}

func (s *edgeHugger) ID() ID { return EdgeHugger }

func edgeDistance(g *grid.Grid, c geom.Cell) int {
	d := c.Row
	if v := g.Rows - 1 - c.Row; v < d {
		d = v
	}
	if v := c.Col; v < d {
		d = v
	}
	if v := g.Cols - 1 - c.Col; v < d {
		d = v
	}
	return d
}

func isCorner(g *grid.Grid, c geom.Cell) bool {
	return (c.Row == 0 || c.Row == g.Rows-1) && (c.Col == 0 || c.Col == g.Cols-1)
}

func (s *edgeHugger) PickStarts(g *grid.Grid, occ *grid.Occupancy, rng *rand.Rand) []geom.Cell {
	var cells []geom.Cell
	for _, c := range unoccupiedPlayableCells(g, occ) {
		if edgeDistance(g, c) <= s.dMax {
			cells = append(cells, c)
		}
	}
	if len(cells) == 0 {
		return nil
	}

	weight := make(map[geom.Cell]float64, len(cells))
	for _, c := range cells {
		w := -float64(edgeDistance(g, c))
		if isCorner(g, c) {
			w -= 1000 // strong negative offset
		}
		weight[c] = w
	}
	sort.SliceStable(cells, func(i, j int) bool { return weight[cells[i]] > weight[cells[j]] })

	top := topN(cells, 0.3)
	rng.Shuffle(len(top), func(i, j int) { top[i], top[j] = top[j], top[i] })
	return append(top, cells[len(top):]...)
}

func (s *edgeHugger) OrderNeighbors(ctx kernel.NeighborContext, candidates []geom.Cell) []geom.Cell {
	out := append([]geom.Cell(nil), candidates...)
	weight := make(map[geom.Cell]float64, len(out))
	for _, c := range out {
		edgeScore := -float64(edgeDistance(ctx.Grid, c))
		noise := ctx.Rand.Float64()
		weight[c] = edgeScore*s.wallFollowStrength + noise*(1-s.wallFollowStrength)
	}
	sort.SliceStable(out, func(i, j int) bool { return weight[out[i]] > weight[out[j]] })
	return out
}

func (s *edgeHugger) RunFill(g *grid.Grid, occ *grid.Occupancy, placed *[]snake.Snake, fp FillParams, colorer *Colorer, rng *rand.Rand) []string {
	return runMultiPassFill(g, occ, placed, fp, colorer, rng, true)
}
