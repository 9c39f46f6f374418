// Package snake defines the ordered-cell-chain snake type (§3) and its
// derived properties (facing direction, bend count). Generalized from the
// teacher's live-game Snake (api.go), which tracked a moving Body/Head for
// a Battlesnake match, into an immutable placed path with a fixed head end.
package snake

import "github.com/snakeoutgen/generator/internal/geom"

// Snake is an ordered list of cells [tail ... head]. Path[0] is the tail,
// Path[len-1] is the head.
type Snake struct {
	Path    []geom.Cell
	ColorID int
}

// Head returns the snake's head cell.
func (s Snake) Head() geom.Cell { return s.Path[len(s.Path)-1] }

// Tail returns the snake's tail cell.
func (s Snake) Tail() geom.Cell { return s.Path[0] }

// Len returns the number of cells in the path.
func (s Snake) Len() int { return len(s.Path) }

// Facing returns the head's facing direction: head minus the cell before it.
// Undefined (zero Direction) for a length-1 path, which the invariants in
// §3 forbid (every snake has length >= 2).
func (s Snake) Facing() geom.Direction {
	if len(s.Path) < 2 {
		return geom.Direction{}
	}
	head := s.Path[len(s.Path)-1]
	prev := s.Path[len(s.Path)-2]
	return head.Sub(prev)
}

// Bends counts interior indices where the step direction changes, per §3.
func (s Snake) Bends() int {
	if len(s.Path) < 3 {
		return 0
	}
	bends := 0
	prevDir := s.Path[1].Sub(s.Path[0])
	for i := 2; i < len(s.Path); i++ {
		dir := s.Path[i].Sub(s.Path[i-1])
		if dir != prevDir {
			bends++
		}
		prevDir = dir
	}
	return bends
}

// Cells returns the path unchanged; a convenience alias used at call sites
// that want to read "all cells" rather than "the ordered path".
func (s Snake) Cells() []geom.Cell { return s.Path }
