package strategy

import (
	"math/rand"
	"sort"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/snake"
)

// SymmetryType names the mirror transform used by the symmetric strategy
// and by §4.6's joint growth.
type SymmetryType string

const (
	SymmetryHorizontal SymmetryType = "horizontal"
	SymmetryVertical   SymmetryType = "vertical"
	SymmetryBoth       SymmetryType = "both"
	SymmetryRadial     SymmetryType = "radial"
)

// mirrors returns the mirror transforms active for t, per §4.6.
func mirrors(t SymmetryType, g *grid.Grid) []func(geom.Cell) geom.Cell {
	horizontal := func(c geom.Cell) geom.Cell { return geom.Cell{Row: g.Rows - 1 - c.Row, Col: c.Col} }
	vertical := func(c geom.Cell) geom.Cell { return geom.Cell{Row: c.Row, Col: g.Cols - 1 - c.Col} }
	diagonal := func(c geom.Cell) geom.Cell { return geom.Cell{Row: g.Rows - 1 - c.Row, Col: g.Cols - 1 - c.Col} }
	radial := diagonal // same transform, different symmetry name in §4.6

	switch t {
	case SymmetryHorizontal:
		return []func(geom.Cell) geom.Cell{horizontal}
	case SymmetryVertical:
		return []func(geom.Cell) geom.Cell{vertical}
	case SymmetryBoth:
		return []func(geom.Cell) geom.Cell{horizontal, vertical, diagonal}
	case SymmetryRadial:
		return []func(geom.Cell) geom.Cell{radial}
	default:
		return []func(geom.Cell) geom.Cell{vertical}
	}
}

// symmetric places a snake and its mirror images as a consistent set via
// adaptive joint growth (§4.6), rather than the base kernel.
type symmetric struct {
	symType SymmetryType
}

func newSymmetric(_ *grid.Grid) Strategy {
	return &symmetric{symType: SymmetryVertical}
}

func (s *symmetric) ID() ID { return Symmetrical }

// WithSymmetryType returns a copy of s configured for the given symmetry
// type, if s is the Symmetrical strategy; otherwise it returns s unchanged.
// The generator driver calls this when a request names a symmetry type
// explicitly, without needing to know the strategy's concrete type.
func WithSymmetryType(s Strategy, t SymmetryType) Strategy {
	if _, ok := s.(*symmetric); ok {
		return &symmetric{symType: t}
	}
	return s
}

func (s *symmetric) PickStarts(g *grid.Grid, occ *grid.Occupancy, rng *rand.Rand) []geom.Cell {
	transforms := mirrors(s.symType, g)
	cells := unoccupiedPlayableCells(g, occ)
	if len(cells) == 0 {
		return nil
	}

	valid := cells[:0]
	for _, c := range cells {
		ok := true
		for _, t := range transforms {
			m := t(c)
			if m == c {
				continue // self-mirror cell, e.g. the center under radial symmetry
			}
			if !g.IsPlayable(m) || occ.Occupied(m) {
				ok = false
				break
			}
		}
		if ok {
			valid = append(valid, c)
		}
	}
	rng.Shuffle(len(valid), func(i, j int) { valid[i], valid[j] = valid[j], valid[i] })
	return valid
}

// OrderNeighbors prefers neighbors whose mirror cells are also
// playable-and-free, per §4.5; it is reused directly inside GrowJoint's
// per-step candidate ordering for the lead path A.
func (s *symmetric) OrderNeighbors(ctx kernel.NeighborContext, candidates []geom.Cell) []geom.Cell {
	transforms := mirrors(s.symType, ctx.Grid)
	out := append([]geom.Cell(nil), candidates...)
	score := make(map[geom.Cell]int, len(out))
	for _, c := range out {
		good := 0
		for _, t := range transforms {
			m := t(c)
			if m == c || (ctx.Grid.IsPlayable(m) && !ctx.Occ.Occupied(m)) {
				good++
			}
		}
		score[c] = good
	}
	sort.SliceStable(out, func(i, j int) bool { return score[out[i]] > score[out[j]] })
	return out
}

func (s *symmetric) RunFill(g *grid.Grid, occ *grid.Occupancy, placed *[]snake.Snake, fp FillParams, colorer *Colorer, rng *rand.Rand) []string {
	return runMultiPassFill(g, occ, placed, fp, colorer, rng, true)
}
