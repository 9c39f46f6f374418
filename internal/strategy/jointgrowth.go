package strategy

import (
	"math/rand"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/raycast"
)

// jointFrame is one step of the lock-step multi-path DFS: the paths grown
// so far for every mirror (lead path first), the bend count per path, and
// the ordered candidate list for the lead's next cell at this depth.
type jointFrame struct {
	paths     [][]geom.Cell
	bends     []int
	neighbors []geom.Cell
	nextIdx   int
}

// GrowJoint implements §4.6's joint growth: a lock-step DFS that advances
// the lead path A one cell at a time, and for every mirror transform
// derives an "ideal" move by reflecting A's new cell, falling back to any
// other admissible extension of that mirror's path when the ideal cell is
// already occupied, in its own path, or off the playable mask. Every path
// advances together or the whole step is backtracked, mirroring the base
// kernel's frame-stack shape (kernel.Search) one level higher: a frame here
// holds k+1 paths instead of one.
func (s *symmetric) GrowJoint(g *grid.Grid, occ *grid.Occupancy, start geom.Cell, c kernel.Constraints, rng *rand.Rand) ([][]geom.Cell, bool) {
	allTransforms := mirrors(s.symType, g)

	starts := make([]geom.Cell, 0, len(allTransforms)+1)
	starts = append(starts, start)
	transforms := make([]func(geom.Cell) geom.Cell, 0, len(allTransforms))
	seen := map[geom.Cell]struct{}{start: {}}
	for _, t := range allTransforms {
		m := t(start)
		if _, dup := seen[m]; dup {
			continue // self-mirror start, e.g. the center cell under radial symmetry
		}
		if !g.IsPlayable(m) || occ.Occupied(m) {
			return nil, false
		}
		seen[m] = struct{}{}
		starts = append(starts, m)
		transforms = append(transforms, t)
	}

	inPath := make(map[geom.Cell]struct{}, len(starts))
	for _, st := range starts {
		inPath[st] = struct{}{}
	}

	stack := []jointFrame{{
		paths: wrapSingletons(starts),
		bends: make([]int, len(starts)),
	}}
	nodes := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		lead := top.paths[0]

		if top.neighbors == nil {
			top.neighbors = admissibleJointNeighbors(g, occ, inPath, lead[len(lead)-1])
			top.neighbors = s.OrderNeighbors(kernel.NeighborContext{
				Path: lead, Bends: top.bends[0], Grid: g, Occ: occ, Rand: rng,
			}, top.neighbors)
		}

		if len(lead) >= c.LengthMin {
			if tryAcceptJoint(g, occ, top.paths, top.bends, c, rng) {
				return copyPaths(top.paths), true
			}
		}

		if len(lead) >= c.LengthMax {
			popJointFrame(&stack, inPath)
			continue
		}

		nodes++
		if nodes > c.NodeBudget {
			return nil, false
		}

		advanced := false
		for top.nextIdx < len(top.neighbors) {
			leadNext := top.neighbors[top.nextIdx]
			top.nextIdx++

			newPaths, newBends, ok := extendAllPaths(g, occ, inPath, top.paths, top.bends, leadNext, transforms, c)
			if !ok {
				continue
			}

			for _, p := range newPaths {
				inPath[p[len(p)-1]] = struct{}{}
			}
			stack = append(stack, jointFrame{paths: newPaths, bends: newBends})
			advanced = true
			break
		}

		if !advanced {
			popJointFrame(&stack, inPath)
		}
	}

	return nil, false
}

func wrapSingletons(cells []geom.Cell) [][]geom.Cell {
	out := make([][]geom.Cell, len(cells))
	for i, c := range cells {
		out[i] = []geom.Cell{c}
	}
	return out
}

func copyPaths(paths [][]geom.Cell) [][]geom.Cell {
	out := make([][]geom.Cell, len(paths))
	for i, p := range paths {
		out[i] = append([]geom.Cell(nil), p...)
	}
	return out
}

func popJointFrame(stack *[]jointFrame, inPath map[geom.Cell]struct{}) {
	s := *stack
	top := s[len(s)-1]
	for _, p := range top.paths {
		delete(inPath, p[len(p)-1])
	}
	*stack = s[:len(s)-1]
}

// admissibleJointNeighbors is admissibleNeighbors from the kernel package,
// reimplemented here since the lead path's candidate set must be checked
// against the joint inPath set (every mirror's cells), not just its own.
func admissibleJointNeighbors(g *grid.Grid, occ *grid.Occupancy, inPath map[geom.Cell]struct{}, from geom.Cell) []geom.Cell {
	cands := raycast.Neighbors(g, from)
	out := make([]geom.Cell, 0, len(cands))
	for _, n := range cands {
		if !g.IsPlayable(n) || occ.Occupied(n) {
			continue
		}
		if _, used := inPath[n]; used {
			continue
		}
		out = append(out, n)
	}
	return out
}

// extendAllPaths advances the lead path to leadNext and every mirror path to
// its reflected cell, falling back to any other admissible extension of a
// mirror's own path when the ideal reflected cell is unusable. Returns
// ok=false if any path — lead or mirror — cannot advance at all.
func extendAllPaths(g *grid.Grid, occ *grid.Occupancy, inPath map[geom.Cell]struct{}, paths [][]geom.Cell, bends []int, leadNext geom.Cell, transforms []func(geom.Cell) geom.Cell, c kernel.Constraints) ([][]geom.Cell, []int, bool) {
	newPaths := make([][]geom.Cell, len(paths))
	newBends := make([]int, len(paths))

	lead := paths[0]
	leadBend := bendDelta(lead, leadNext)
	if leadBend+bends[0] > c.BendMax {
		return nil, nil, false
	}
	newPaths[0] = append(append([]geom.Cell(nil), lead...), leadNext)
	newBends[0] = bends[0] + leadBend

	claimed := map[geom.Cell]struct{}{leadNext: {}}

	for i, t := range transforms {
		path := paths[i+1]
		ideal := t(leadNext)

		next, ok := pickMirrorMove(g, occ, inPath, claimed, path, ideal, bends[i+1], c)
		if !ok {
			return nil, nil, false
		}

		delta := bendDelta(path, next)
		newPaths[i+1] = append(append([]geom.Cell(nil), path...), next)
		newBends[i+1] = bends[i+1] + delta
		claimed[next] = struct{}{}
	}

	return newPaths, newBends, true
}

// pickMirrorMove returns ideal if it's a legal extension of path (playable,
// unclaimed this step, not already in any joint path, within the bend
// budget); otherwise it adaptively falls back to the first other admissible
// neighbor of path's tail that meets the same tests (§4.6 "adaptive
// fallback when the ideal mirrored cell is unavailable").
func pickMirrorMove(g *grid.Grid, occ *grid.Occupancy, inPath map[geom.Cell]struct{}, claimed map[geom.Cell]struct{}, path []geom.Cell, ideal geom.Cell, bendsSoFar int, c kernel.Constraints) (geom.Cell, bool) {
	tail := path[len(path)-1]

	if legalJointMove(g, occ, inPath, claimed, path, ideal, bendsSoFar, c) {
		return ideal, true
	}

	for _, cand := range raycast.Neighbors(g, tail) {
		if cand == ideal {
			continue
		}
		if legalJointMove(g, occ, inPath, claimed, path, cand, bendsSoFar, c) {
			return cand, true
		}
	}

	return geom.Cell{}, false
}

func legalJointMove(g *grid.Grid, occ *grid.Occupancy, inPath map[geom.Cell]struct{}, claimed map[geom.Cell]struct{}, path []geom.Cell, cand geom.Cell, bendsSoFar int, c kernel.Constraints) bool {
	if !g.IsPlayable(cand) || occ.Occupied(cand) {
		return false
	}
	if _, used := inPath[cand]; used {
		return false
	}
	if _, taken := claimed[cand]; taken {
		return false
	}
	if bendDelta(path, cand)+bendsSoFar > c.BendMax {
		return false
	}
	return true
}

func bendDelta(path []geom.Cell, next geom.Cell) int {
	if len(path) < 2 {
		return 0
	}
	prevDir := path[len(path)-1].Sub(path[len(path)-2])
	stepDir := next.Sub(path[len(path)-1])
	if stepDir != prevDir {
		return 1
	}
	return 0
}

// tryAcceptJoint mirrors kernel.tryAccept across every path at once: every
// head must clear the exit raycast under the combined occupancy of all
// sibling paths (plus the board's real occupancy), and every path must meet
// the bend floor. Acceptance at LengthMax is unconditional; below it, a
// single 0.3 draw governs the whole joint step, keeping every mirror's
// stopping point in lock-step (§4.6).
func tryAcceptJoint(g *grid.Grid, occ *grid.Occupancy, paths [][]geom.Cell, bends []int, c kernel.Constraints, rng *rand.Rand) bool {
	combined := make(map[geom.Cell]struct{})
	for _, p := range paths {
		for _, cell := range p {
			combined[cell] = struct{}{}
		}
	}
	blockers := jointBlockers{occ: occ, extra: combined}

	for i, p := range paths {
		if bends[i] < c.BendMin {
			return false
		}
		head := p[len(p)-1]
		dir := head.Sub(p[len(p)-2])
		if !raycast.CanExit(g, blockers, head, dir) {
			return false
		}
	}

	lead := paths[0]
	if len(lead) >= c.LengthMax {
		return true
	}
	return rng.Float64() < 0.3
}

type jointBlockers struct {
	occ   *grid.Occupancy
	extra map[geom.Cell]struct{}
}

func (j jointBlockers) Occupied(cell geom.Cell) bool {
	if _, ok := j.extra[cell]; ok {
		return true
	}
	return j.occ.Occupied(cell)
}
