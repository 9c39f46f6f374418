package render

import (
	"math"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/snake"
)

// NearestOccupant computes, for every playable cell, the index into
// snakes of the nearest occupant by Manhattan distance to that snake's
// closest cell, with ties left unassigned (-1). Repurposed from the
// teacher's per-snake-head territory-control Voronoi diagram
// (voronoi.go's GenerateVoronoi2) into a "which placed snake owns this
// empty region" diagnostic overlay, since levels here have no single
// controlling head the way a live game's remaining snakes do.
func NearestOccupant(g *grid.Grid, snakes []snake.Snake) [][]int {
	result := make([][]int, g.Rows)
	for r := range result {
		result[r] = make([]int, g.Cols)
		for c := range result[r] {
			result[r][c] = -1
		}
	}

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := geom.Cell{Row: r, Col: c}
			if !g.IsPlayable(cell) {
				continue
			}

			minDist := math.MaxInt32
			nearest := -1
			for i, sn := range snakes {
				d := nearestCellDistance(cell, sn)
				if d < minDist {
					minDist = d
					nearest = i
				} else if d == minDist {
					nearest = -1
				}
			}
			result[r][c] = nearest
		}
	}

	return result
}

func nearestCellDistance(cell geom.Cell, sn snake.Snake) int {
	min := math.MaxInt32
	for _, c := range sn.Cells() {
		d := manhattan(cell, c)
		if d < min {
			min = d
		}
	}
	return min
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
