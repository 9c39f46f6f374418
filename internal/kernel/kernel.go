// Package kernel implements the Path Search Kernel (§4.4): an iterative
// DFS, driven by an explicit frame stack rather than recursion, that grows
// a single snake path satisfying length, bend, and head-exit constraints.
//
// The iterative-stack-of-frames shape is grounded on the teacher's MCTS
// tree walk (mcts.go selectNode), which also avoids recursion in favor of
// an explicit loop over mutable frame state; the constraint-driven
// backtracking itself has no teacher analogue (the teacher never grows a
// single deterministic path — it expands an adversarial search tree) and
// is written fresh against §4.4.
package kernel

import (
	"math/rand"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/raycast"
)

// NeighborContext is the state visible to a neighbor-ordering hook at one
// DFS frame.
type NeighborContext struct {
	Path  []geom.Cell
	Bends int
	Grid  *grid.Grid
	Occ   *grid.Occupancy
	Rand  *rand.Rand
}

// NeighborOrderer orders admissible candidate cells for the next step of
// the path, per the active strategy's heuristic (§4.5).
type NeighborOrderer interface {
	OrderNeighbors(ctx NeighborContext, candidates []geom.Cell) []geom.Cell
}

// Constraints bounds the search, per §4.4's kernel input.
type Constraints struct {
	LengthMin, LengthMax int
	BendMin, BendMax     int
	NodeBudget           int
}

// frame is one level of the explicit DFS stack: the path and bend count at
// that depth, the ordered neighbor list to try, and the next index to try.
type frame struct {
	path      []geom.Cell
	bends     int
	neighbors []geom.Cell
	nextIdx   int
}

// Search runs the iterative DFS from start and returns a satisfying path,
// or ok=false if none was found within the node budget. occ is mutated
// only transiently: Search never leaves cells marked occupied on return,
// since a path is just a plan until the caller commits it.
func Search(g *grid.Grid, occ *grid.Occupancy, start geom.Cell, c Constraints, orderer NeighborOrderer, rng *rand.Rand) ([]geom.Cell, bool) {
	if !g.IsPlayable(start) || occ.Occupied(start) {
		return nil, false
	}

	inPath := map[geom.Cell]struct{}{start: {}}
	stack := []frame{{path: []geom.Cell{start}, bends: 0}}
	nodes := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.neighbors == nil {
			top.neighbors = admissibleNeighbors(g, occ, inPath, top.path[len(top.path)-1])
			top.neighbors = orderer.OrderNeighbors(NeighborContext{
				Path: top.path, Bends: top.bends, Grid: g, Occ: occ, Rand: rng,
			}, top.neighbors)
		}

		if len(top.path) >= c.LengthMin {
			if tryAccept(g, occ, top.path, top.bends, c, rng) {
				return append([]geom.Cell(nil), top.path...), true
			}
		}

		if len(top.path) >= c.LengthMax {
			popFrame(&stack, inPath)
			continue
		}

		nodes++
		if nodes > c.NodeBudget {
			return nil, false
		}

		advanced := false
		for top.nextIdx < len(top.neighbors) {
			next := top.neighbors[top.nextIdx]
			top.nextIdx++

			newBends := top.bends
			if len(top.path) >= 2 {
				prevDir := top.path[len(top.path)-1].Sub(top.path[len(top.path)-2])
				stepDir := next.Sub(top.path[len(top.path)-1])
				if stepDir != prevDir {
					newBends++
				}
			}
			if newBends > c.BendMax {
				continue
			}

			newPath := append(append([]geom.Cell(nil), top.path...), next)
			inPath[next] = struct{}{}
			stack = append(stack, frame{path: newPath, bends: newBends})
			advanced = true
			break
		}

		if !advanced {
			popFrame(&stack, inPath)
		}
	}

	return nil, false
}

func popFrame(stack *[]frame, inPath map[geom.Cell]struct{}) {
	s := *stack
	top := s[len(s)-1]
	delete(inPath, top.path[len(top.path)-1])
	*stack = s[:len(s)-1]
}

// tryAccept tests the head-exit predicate for the current path (with the
// path itself as a blocker, forbidding the ray from piercing its own
// body). If it exits and the bend floor is met, it accepts outright at
// LengthMax, or stops early with probability 0.3 otherwise (§4.4).
func tryAccept(g *grid.Grid, occ *grid.Occupancy, path []geom.Cell, bends int, c Constraints, rng *rand.Rand) bool {
	head := path[len(path)-1]
	dir := head.Sub(path[len(path)-2])

	blockers := unionBlockers{occ: occ, extra: pathBlockers(path)}

	if !raycast.CanExit(g, blockers, head, dir) {
		return false
	}
	if bends < c.BendMin {
		return false
	}
	if len(path) >= c.LengthMax {
		return true
	}
	return rng.Float64() < 0.3
}

func pathBlockers(path []geom.Cell) map[geom.Cell]struct{} {
	m := make(map[geom.Cell]struct{}, len(path))
	for _, c := range path {
		m[c] = struct{}{}
	}
	return m
}

type unionBlockers struct {
	occ   *grid.Occupancy
	extra map[geom.Cell]struct{}
}

func (u unionBlockers) Occupied(cell geom.Cell) bool {
	if _, ok := u.extra[cell]; ok {
		return true
	}
	return u.occ.Occupied(cell)
}

func admissibleNeighbors(g *grid.Grid, occ *grid.Occupancy, inPath map[geom.Cell]struct{}, from geom.Cell) []geom.Cell {
	cands := raycast.Neighbors(g, from)
	out := make([]geom.Cell, 0, len(cands))
	for _, n := range cands {
		if !g.IsPlayable(n) {
			continue
		}
		if occ.Occupied(n) {
			continue
		}
		if _, used := inPath[n]; used {
			continue
		}
		out = append(out, n)
	}
	return out
}
