package strategy

import (
	"math/rand"
	"sort"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/snake"
)

// spiralFill orders starts by Manhattan distance from either the grid
// center or the top-left corner (0,0), and orders neighbors to strongly favor
// continuing a cyclic turn sequence (§4.5). The center-vs-corner and
// CW-vs-CCW choices are resolved once, lazily, on the strategy's first use
// — "once per generate call" — rather than per PickStarts invocation.
type spiralFill struct {
	tightness float64

	resolved    bool
	centerFirst bool
	clockwise   bool
}

func newSpiralFill(_ *grid.Grid) Strategy {
	return &spiralFill{tightness: 0.8}
}

func (s *spiralFill) ID() ID { return SpiralFill }

func (s *spiralFill) resolve(rng *rand.Rand) {
	if s.resolved {
		return
	}
	s.centerFirst = rng.Float64() < 0.5
	s.clockwise = rng.Float64() < 0.5
	s.resolved = true
}

// cyclicDirections returns the direction sequence in turn order, CW or
// CCW, starting from Up.
func cyclicDirections(clockwise bool) []geom.Direction {
	if clockwise {
		return []geom.Direction{geom.Up, geom.Right, geom.Down, geom.Left}
	}
	return []geom.Direction{geom.Up, geom.Left, geom.Down, geom.Right}
}

func manhattan(a, b geom.Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

func (s *spiralFill) PickStarts(g *grid.Grid, occ *grid.Occupancy, rng *rand.Rand) []geom.Cell {
	s.resolve(rng)
	cells := unoccupiedPlayableCells(g, occ)
	if len(cells) == 0 {
		return nil
	}

	var anchor geom.Cell
	if s.centerFirst {
		anchor = geom.Cell{Row: g.Rows / 2, Col: g.Cols / 2}
	} else {
		// Nearest-corner ordering: anchor at the corner closest to the
		// grid's own center of mass is arbitrary, so pick (0,0) and let
		// ties fall where they fall; all four corners are symmetric for
		// a rectangular grid's Manhattan metric up to reflection.
		anchor = geom.Cell{Row: 0, Col: 0}
	}

	sort.SliceStable(cells, func(i, j int) bool {
		return manhattan(cells[i], anchor) < manhattan(cells[j], anchor)
	})
	return cells
}

func (s *spiralFill) OrderNeighbors(ctx kernel.NeighborContext, candidates []geom.Cell) []geom.Cell {
	out := append([]geom.Cell(nil), candidates...)
	if len(ctx.Path) < 2 {
		// No established heading yet; the order is shuffled with the
		// attempt's RNG.
		rng := ctx.Rand
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}

	lastDir := ctx.Path[len(ctx.Path)-1].Sub(ctx.Path[len(ctx.Path)-2])
	seq := cyclicDirections(s.clockwise)
	idx := -1
	for i, d := range seq {
		if d == lastDir {
			idx = i
			break
		}
	}

	weight := make(map[geom.Cell]float64, len(out))
	for _, c := range out {
		dir := c.Sub(ctx.Path[len(ctx.Path)-1])
		w := 0.0
		switch {
		case idx >= 0 && dir == seq[(idx+1)%4]:
			w = 4 // next cyclic direction: strongly preferred
		case dir == lastDir:
			w = 2 // same direction
		case idx >= 0 && dir == seq[(idx+3)%4]:
			w = -4 // previous cyclic direction: heavily penalized (near-reverse turn)
		case dir == lastDir.Opposite():
			w = -8 // reverse: heaviest penalty
		}
		w = w*s.tightness + ctx.Rand.Float64()*(1-s.tightness)
		weight[c] = w
	}
	sort.SliceStable(out, func(i, j int) bool { return weight[out[i]] > weight[out[j]] })
	return out
}

func (s *spiralFill) RunFill(g *grid.Grid, occ *grid.Occupancy, placed *[]snake.Snake, fp FillParams, colorer *Colorer, rng *rand.Rand) []string {
	return runMultiPassFill(g, occ, placed, fp, colorer, rng, true)
}
