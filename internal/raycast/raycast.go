// Package raycast implements orthogonal neighbor enumeration and the
// straight-line exit raycast (§4.2). The blocker-set parameter pattern
// mirrors the teacher's generateSafeMoves (board.go), which builds a
// per-direction admissibility list by checking bounds and a blocker
// lookup before accepting a candidate move.
package raycast

import "github.com/snakeoutgen/generator/internal/geom"

// Grid is the minimal surface raycast needs from a board: bounds checking.
// internal/grid.Grid satisfies this.
type Grid interface {
	Contains(cell geom.Cell) bool
}

// Blockers reports whether a cell currently blocks movement/raycasts.
// internal/grid.Occupancy satisfies this.
type Blockers interface {
	Occupied(cell geom.Cell) bool
}

// Neighbors returns the up-to-four in-bounds 4-connected cells of cell, in
// the fixed order Up, Down, Left, Right.
func Neighbors(g Grid, cell geom.Cell) []geom.Cell {
	out := make([]geom.Cell, 0, 4)
	for _, d := range geom.AllDirections {
		n := cell.Add(d)
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Cast walks from origin+direction in steps of direction. It returns true
// iff every stepped cell is in bounds and unblocked until the walker steps
// off the grid edge; it returns false as soon as a stepped cell is
// blocked. Void cells (in bounds but not playable) are traversed, not
// treated as exits: only falling off the grid counts as an exit (§4.2).
func Cast(g Grid, blockers Blockers, origin geom.Cell, dir geom.Direction) bool {
	cur := origin.Add(dir)
	for g.Contains(cur) {
		if blockers.Occupied(cur) {
			return false
		}
		cur = cur.Add(dir)
	}
	return true
}

// CanExit is the exit predicate (§4.2): a snake's head facing dir can exit
// iff Cast from the head through the caller's blocker set reaches the
// boundary. Whether the snake's own cells block is up to that set.
func CanExit(g Grid, blockers Blockers, head geom.Cell, dir geom.Direction) bool {
	if dir.IsZero() {
		return false
	}
	return Cast(g, blockers, head, dir)
}

// excludingSet adapts a Blockers view to additionally exclude a fixed set
// of cells from being considered occupied. The validator's removal
// predicate uses it to treat one snake's cells as non-blocking for its own
// ray while every other snake still blocks, and the strategies' start
// filter uses it to ignore the candidate start cell. The placement-time
// exit predicate in internal/kernel does the opposite: it adds the growing
// path to the blockers (§9 "Raycast with self-exclusion").
type excludingSet struct {
	Blockers
	excluded map[geom.Cell]struct{}
}

// Excluding returns a Blockers view that reports unoccupied for any cell in
// excluded, regardless of what the underlying view says.
func Excluding(b Blockers, excluded map[geom.Cell]struct{}) Blockers {
	return &excludingSet{Blockers: b, excluded: excluded}
}

func (e *excludingSet) Occupied(cell geom.Cell) bool {
	if _, skip := e.excluded[cell]; skip {
		return false
	}
	return e.Blockers.Occupied(cell)
}
