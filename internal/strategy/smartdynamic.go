package strategy

import (
	"math/rand"
	"sort"

	"github.com/snakeoutgen/generator/internal/distmap"
	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
)

// smartDynamic biases starts toward deep, constrained cells and neighbors
// toward constrainedness blended with noise (§4.5). No fill pass: "the
// kernel is already greedy enough".
type smartDynamic struct {
	depthPriority float64 // weight in [0,1] blending constrainedness (free-neighbor count) vs. noise for neighbor order
	startFraction float64 // top fraction of ranked starts to shuffle among
}

func newSmartDynamic(_ *grid.Grid) Strategy {
	return &smartDynamic{depthPriority: 0.6, startFraction: 0.3}
}

func (s *smartDynamic) ID() ID { return SmartDynamic }

type scoredCell struct {
	Cell geom.Cell
	Key  float64
}

func (s *smartDynamic) PickStarts(g *grid.Grid, occ *grid.Occupancy, rng *rand.Rand) []geom.Cell {
	dm := distmap.Compute(g, occ)
	cells := unoccupiedPlayableCells(g, occ)
	if len(cells) == 0 {
		return nil
	}

	scored := make([]scoredCell, 0, len(cells))
	for _, c := range cells {
		depth, _ := dm.DepthOf(c)
		free := freeNeighborCount(g, occ, c)
		// Priority: deepest first, then most constrained (fewer free
		// neighbors) as a tiebreaker, matching §4.5's
		// "(depth*w, free-neighbor count)" ordering key.
		scored = append(scored, scoredCell{Cell: c, Key: float64(depth)*1000 - float64(free)})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Key > scored[j].Key })

	ordered := make([]geom.Cell, len(scored))
	for i, sc := range scored {
		ordered[i] = sc.Cell
	}

	frac := s.startFraction
	if frac < 0.1 {
		frac = 0.1
	}
	if frac > 0.5 {
		frac = 0.5
	}
	top := topN(ordered, frac)
	rng.Shuffle(len(top), func(i, j int) { top[i], top[j] = top[j], top[i] })
	return append(top, ordered[len(top):]...)
}

func (s *smartDynamic) OrderNeighbors(ctx kernel.NeighborContext, candidates []geom.Cell) []geom.Cell {
	out := append([]geom.Cell(nil), candidates...)
	weight := make(map[geom.Cell]float64, len(out))
	for _, c := range out {
		free := float64(freeNeighborCount(ctx.Grid, ctx.Occ, c))
		noise := ctx.Rand.Float64()
		// Lower free-neighbor count (more constrained) ranks first; noise
		// is blended by (1-depthPriority) to avoid fully deterministic
		// ordering, per §4.5.
		weight[c] = -free*s.depthPriority + noise*(1-s.depthPriority)
	}
	sort.SliceStable(out, func(i, j int) bool { return weight[out[i]] > weight[out[j]] })
	return out
}

// topN returns the first n = len(cells)*frac cells (at least 1 if cells is
// non-empty).
func topN(cells []geom.Cell, frac float64) []geom.Cell {
	n := int(float64(len(cells)) * frac)
	if n < 1 && len(cells) > 0 {
		n = 1
	}
	if n > len(cells) {
		n = len(cells)
	}
	return cells[:n:n]
}
