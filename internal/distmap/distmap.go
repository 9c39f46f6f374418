// Package distmap computes the exit-depth BFS distance map (§4.3): the
// minimum number of steps from each playable, non-occupied cell to an
// "exit seed" cell (one on the boundary, or adjacent to a blocker).
// Grounded on the teacher's multi-source traversal style in voronoi.go
// (flood fill seeded from multiple origins across a shared grid), adapted
// from "nearest snake head" to "nearest exit seed".
package distmap

import (
	"container/list"
	"sort"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
)

// Map holds the per-cell BFS depth computed from the current occupancy.
// Unreachable cells are simply absent, per §4.3 ("undefined... treated as
// 0 or skipped by callers").
type Map struct {
	Depth map[geom.Cell]int
}

// Compute runs multi-source BFS from every playable, non-occupied cell
// that touches the grid boundary or has an obstacle neighbor (the seed
// set), each starting at depth 1.
func Compute(g *grid.Grid, occ *grid.Occupancy) *Map {
	depth := make(map[geom.Cell]int)
	queue := list.New()

	isSeed := func(cell geom.Cell) bool {
		if cell.Row == 0 || cell.Row == g.Rows-1 || cell.Col == 0 || cell.Col == g.Cols-1 {
			return true
		}
		for _, d := range geom.AllDirections {
			n := cell.Add(d)
			if !g.Contains(n) {
				continue
			}
			if g.IsObstacle(n) {
				return true
			}
		}
		return false
	}

	for _, cell := range g.PlayableCells() {
		if occ.Occupied(cell) {
			continue
		}
		if isSeed(cell) {
			depth[cell] = 1
			queue.PushBack(cell)
		}
	}

	for queue.Len() > 0 {
		front := queue.Front()
		queue.Remove(front)
		cur := front.Value.(geom.Cell)
		d := depth[cur]

		for _, dir := range geom.AllDirections {
			n := cur.Add(dir)
			if !g.Contains(n) || !g.IsPlayable(n) || occ.Occupied(n) {
				continue
			}
			if _, seen := depth[n]; seen {
				continue
			}
			depth[n] = d + 1
			queue.PushBack(n)
		}
	}

	return &Map{Depth: depth}
}

// DepthOf returns the depth of cell, and whether it was reachable.
func (m *Map) DepthOf(cell geom.Cell) (int, bool) {
	d, ok := m.Depth[cell]
	return d, ok
}

// Cache holds a sorted start-candidate list plus the distance map it was
// derived from, invalidated lazily by filtering now-occupied entries on
// retrieval (§9 "Distance map cache").
type Cache struct {
	grid       *grid.Grid
	occ        *grid.Occupancy
	distMap    *Map
	candidates []geom.Cell
}

// NewCache computes a fresh distance map and a candidate list ordered by
// less func (typically "deepest first" for SmartDynamic, but the caller
// supplies the comparator since each strategy orders differently).
func NewCache(g *grid.Grid, occ *grid.Occupancy, less func(a, b geom.Cell, m *Map) bool) *Cache {
	c := &Cache{grid: g, occ: occ}
	c.rebuild(less)
	return c
}

func (c *Cache) rebuild(less func(a, b geom.Cell, m *Map) bool) {
	c.distMap = Compute(c.grid, c.occ)
	cells := c.grid.PlayableCells()
	candidates := make([]geom.Cell, 0, len(cells))
	for _, cell := range cells {
		if !c.occ.Occupied(cell) {
			candidates = append(candidates, cell)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return less(candidates[i], candidates[j], c.distMap) })
	c.candidates = candidates
}

// Next pops the next occupied-filtered candidate, repopulating the cache
// when exhausted (per §9). less must match the comparator NewCache used
// for consistent ordering across repopulations.
func (c *Cache) Next(less func(a, b geom.Cell, m *Map) bool) (geom.Cell, bool) {
	for {
		for len(c.candidates) > 0 {
			cell := c.candidates[0]
			c.candidates = c.candidates[1:]
			if !c.occ.Occupied(cell) {
				return cell, true
			}
		}
		remaining := false
		for _, cell := range c.grid.PlayableCells() {
			if !c.occ.Occupied(cell) {
				remaining = true
				break
			}
		}
		if !remaining {
			return geom.Cell{}, false
		}
		c.rebuild(less)
	}
}

// DistanceMap returns the most recently computed distance map.
func (c *Cache) DistanceMap() *Map { return c.distMap }
