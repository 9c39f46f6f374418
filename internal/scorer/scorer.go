// Package scorer implements the Difficulty Scorer (§4.10): three
// unbounded sub-scores — snake load, freedom/friction, obstacle cost —
// summed into a single difficulty value.
package scorer

import (
	"math"

	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/snake"
	"github.com/snakeoutgen/generator/internal/validator"
)

// Breakdown carries the three named sub-scores alongside the total.
type Breakdown struct {
	S, F, O float64
	Total   float64
}

// Details are the scorer's diagnostic accompaniment, per §6's Difficulty
// entry point output.
type Details struct {
	GridBounds    [2]int // rows, cols — from the grid if present, else the bounding box
	TotalSnakes   int
	SolveDepth    int
	OccupiedCells int
}

// Score computes S, F, O, and the total for a level. gridRows/gridCols are
// the request's declared grid dimensions; if both are zero, the bounding
// box of snake and obstacle cells is used instead (§4.10 "falls back to
// the bounding box").
func Score(g *grid.Grid, snakes []snake.Snake, result validator.Result, gridRows, gridCols int) (Breakdown, Details) {
	s := snakeLoad(snakes)
	f := freedom(snakes, g, gridRows, gridCols, result)
	o := obstacleCost(g)

	total := round1(s + f + o)

	rows, cols := gridRows, gridCols
	if rows == 0 && cols == 0 {
		minR, minC, maxR, maxC := boundingBox(g, snakes)
		rows, cols = maxR-minR+1, maxC-minC+1
	}

	occupied := 0
	for _, sn := range snakes {
		occupied += sn.Len()
	}

	return Breakdown{S: round1(s), F: round1(f), O: round1(o), Total: total},
		Details{GridBounds: [2]int{rows, cols}, TotalSnakes: len(snakes), SolveDepth: result.Steps, OccupiedCells: occupied}
}

// snakeLoad is S = 2·snakes + 0.25·avg_length + 0.5·avg_bends.
func snakeLoad(snakes []snake.Snake) float64 {
	if len(snakes) == 0 {
		return 0
	}
	var totalLen, totalBends int
	for _, sn := range snakes {
		totalLen += sn.Len()
		totalBends += sn.Bends()
	}
	avgLen := float64(totalLen) / float64(len(snakes))
	avgBends := float64(totalBends) / float64(len(snakes))
	return 2*float64(len(snakes)) + 0.25*avgLen + 0.5*avgBends
}

// freedom is F = 5·avg_stuck_ratio + (bounding_box_area/100) + 2·solve_depth.
func freedom(snakes []snake.Snake, g *grid.Grid, gridRows, gridCols int, result validator.Result) float64 {
	var area float64
	if gridRows > 0 && gridCols > 0 {
		area = float64(gridRows * gridCols)
	} else {
		minR, minC, maxR, maxC := boundingBox(g, snakes)
		area = float64((maxR - minR + 1) * (maxC - minC + 1))
	}
	return 5*result.AvgStuckRatio + area/100 + 2*float64(result.Steps)
}

// obstacleCost is O = 1·walls + 2.5·holes + 3·tunnel_pairs + 3·wall_breaks
// + 5·iced_locked + 5·key_locked.
func obstacleCost(g *grid.Grid) float64 {
	var walls, holes, wallBreaks, icedLocked, keyLocked float64
	tunnelCells := 0

	for _, obs := range g.Obstacles() {
		switch obs.Kind {
		case grid.Wall:
			walls++
		case grid.WallBreak:
			wallBreaks++
		case grid.Hole:
			holes++
		case grid.Tunnel:
			tunnelCells++
		case grid.IcedSnake:
			icedLocked++
		case grid.KeySnake:
			keyLocked++
		}
	}
	tunnelPairs := float64(tunnelCells / 2)

	return 1*walls + 2.5*holes + 3*tunnelPairs + 3*wallBreaks + 5*icedLocked + 5*keyLocked
}

func boundingBox(g *grid.Grid, snakes []snake.Snake) (minR, minC, maxR, maxC int) {
	first := true
	consider := func(r, c int) {
		if first {
			minR, maxR, minC, maxC = r, r, c, c
			first = false
			return
		}
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
		if c < minC {
			minC = c
		}
		if c > maxC {
			maxC = c
		}
	}

	for _, sn := range snakes {
		for _, cell := range sn.Cells() {
			consider(cell.Row, cell.Col)
		}
	}
	for cell := range g.Obstacles() {
		consider(cell.Row, cell.Col)
	}

	if first {
		return 0, 0, 0, 0
	}
	return minR, minC, maxR, maxC
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
