package strategy

import (
	"math/rand"
	"sort"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/raycast"
)

// sortStableBy sorts cells in place using less, preserving relative order
// of equal elements.
func sortStableBy(cells []geom.Cell, less func(a, b geom.Cell) bool) {
	sort.SliceStable(cells, func(i, j int) bool { return less(cells[i], cells[j]) })
}

// freeNeighborCount returns the number of cell's neighbors that are
// playable and unoccupied, the "constrainedness" measure several
// heuristics order by.
func freeNeighborCount(g *grid.Grid, occ *grid.Occupancy, cell geom.Cell) int {
	n := 0
	for _, d := range geom.AllDirections {
		nb := cell.Add(d)
		if g.IsPlayable(nb) && !occ.Occupied(nb) {
			n++
		}
	}
	return n
}

// hasImmediateExit reports whether a snake starting at cell would have at
// least one facing direction that raycasts clear to the grid boundary
// under the current occupancy (excluding cell itself, since it has not
// been placed).
func hasImmediateExit(g *grid.Grid, occ *grid.Occupancy, cell geom.Cell) bool {
	blockers := raycast.Excluding(occ, map[geom.Cell]struct{}{cell: {}})
	for _, d := range geom.AllDirections {
		if raycast.Cast(g, blockers, cell, d) {
			return true
		}
	}
	return false
}

// shuffleTopFraction shuffles the first frac (0,1] portion of cells in
// place, leaving the rest in their existing order. Used by several start
// orderings that sort by priority, then only randomize among the leaders.
func shuffleTopFraction(cells []geom.Cell, frac float64, rng *rand.Rand) {
	n := int(float64(len(cells)) * frac)
	if n < 1 && len(cells) > 0 {
		n = 1
	}
	if n > len(cells) {
		n = len(cells)
	}
	rng.Shuffle(n, func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
}

// tightOrderer is a kernel.NeighborOrderer that prefers the most
// constrained admissible neighbor (fewest free neighbors of its own),
// installed temporarily during bonus fill passes regardless of the active
// strategy's normal ordering (§4.5 "Temporarily install a tight neighbor
// sort").
type tightOrderer struct{}

func (tightOrderer) OrderNeighbors(ctx kernel.NeighborContext, candidates []geom.Cell) []geom.Cell {
	out := append([]geom.Cell(nil), candidates...)
	sortByConstrainedness(ctx, out, true)
	return out
}

// sortByConstrainedness orders cells by free-neighbor count, ascending
// (most constrained first) when mostConstrainedFirst, descending otherwise.
func sortByConstrainedness(ctx kernel.NeighborContext, cells []geom.Cell, mostConstrainedFirst bool) {
	counts := make(map[geom.Cell]int, len(cells))
	for _, c := range cells {
		counts[c] = freeNeighborCount(ctx.Grid, ctx.Occ, c)
	}
	sortStableBy(cells, func(a, b geom.Cell) bool {
		if mostConstrainedFirst {
			return counts[a] < counts[b]
		}
		return counts[a] > counts[b]
	})
}
