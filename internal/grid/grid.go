// Package grid implements the immutable board model (§4.1): dimensions,
// playable mask, obstacle map, and tunnel pairing. Grounded on the teacher's
// Board type (api.go) generalized from a live multi-snake game board to a
// static level under construction.
package grid

import (
	"fmt"

	"github.com/snakeoutgen/generator/internal/geom"
)

// ObstacleInput is the boundary-facing description of one obstacle, as
// supplied by the external request (§6 "Obstacle input records").
type ObstacleInput struct {
	Kind           ObstacleKind
	Cells          []geom.Cell
	Color          string
	Direction      string
	WallBreakCount int
}

// Grid is the immutable board model: dimensions, the effective playable
// mask (request mask minus blocking obstacle cells), and the obstacle map.
type Grid struct {
	Rows, Cols int

	playable [][]bool
	obstacle map[geom.Cell]*Obstacle
}

// New builds a Grid from request dimensions, an optional playable mask
// (nil means "all true"), and the obstacle list. Blocking obstacle
// positions are subtracted from the playable mask; IcedSnake and KeySnake
// cells stay playable. Tunnel colors not appearing exactly
// twice are a hard error, per §4.1.
func New(rows, cols int, mask [][]bool, obstacles []ObstacleInput) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d", rows, cols)
	}

	playable := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		playable[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			if mask == nil {
				playable[r][c] = true
				continue
			}
			if r < len(mask) && c < len(mask[r]) {
				playable[r][c] = mask[r][c]
			}
		}
	}

	g := &Grid{
		Rows:     rows,
		Cols:     cols,
		playable: playable,
		obstacle: make(map[geom.Cell]*Obstacle),
	}

	tunnelsByColor := make(map[string][]geom.Cell)

	for _, in := range obstacles {
		for _, cell := range in.Cells {
			if !g.Contains(cell) {
				return nil, fmt.Errorf("grid: obstacle cell %+v out of bounds", cell)
			}
			obs := &Obstacle{
				Kind:            in.Kind,
				WallBreakCount:  in.WallBreakCount,
				HoleColor:       in.Color,
				TunnelColor:     in.Color,
				TunnelDirection: in.Direction,
			}
			g.obstacle[cell] = obs
			if obs.Blocks() {
				g.playable[cell.Row][cell.Col] = false
			}
			if in.Kind == Tunnel {
				tunnelsByColor[in.Color] = append(tunnelsByColor[in.Color], cell)
			}
		}
	}

	for color, cells := range tunnelsByColor {
		if len(cells) != 2 {
			return nil, fmt.Errorf("grid: tunnel color %q must appear exactly twice, found %d", color, len(cells))
		}
		a, b := cells[0], cells[1]
		aCopy, bCopy := a, b
		g.obstacle[a].TunnelPartner = &bCopy
		g.obstacle[b].TunnelPartner = &aCopy
	}

	return g, nil
}

// Contains reports whether cell lies within the grid's dimensions.
func (g *Grid) Contains(cell geom.Cell) bool {
	return cell.Row >= 0 && cell.Row < g.Rows && cell.Col >= 0 && cell.Col < g.Cols
}

// IsPlayable reports whether cell may carry a snake or obstacle: in bounds,
// marked playable by the request mask, and not a blocking obstacle cell.
func (g *Grid) IsPlayable(cell geom.Cell) bool {
	if !g.Contains(cell) {
		return false
	}
	return g.playable[cell.Row][cell.Col]
}

// IsObstacle reports whether cell carries any obstacle.
func (g *Grid) IsObstacle(cell geom.Cell) bool {
	_, ok := g.obstacle[cell]
	return ok
}

// Obstacle returns the obstacle at cell, if any.
func (g *Grid) Obstacle(cell geom.Cell) (*Obstacle, bool) {
	o, ok := g.obstacle[cell]
	return o, ok
}

// TunnelPartner returns the paired cell of a tunnel, if cell is a tunnel
// obstacle with a resolved partner.
func (g *Grid) TunnelPartner(cell geom.Cell) (geom.Cell, bool) {
	o, ok := g.obstacle[cell]
	if !ok || o.Kind != Tunnel || o.TunnelPartner == nil {
		return geom.Cell{}, false
	}
	return *o.TunnelPartner, true
}

// Obstacles returns all obstacle cells and their records. Callers must not
// mutate the returned records.
func (g *Grid) Obstacles() map[geom.Cell]*Obstacle {
	return g.obstacle
}

// PlayableCells returns every cell the request mask marks playable and that
// carries no blocking obstacle, in row-major order.
func (g *Grid) PlayableCells() []geom.Cell {
	cells := make([]geom.Cell, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := geom.Cell{Row: r, Col: c}
			if g.IsPlayable(cell) {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}
