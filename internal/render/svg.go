package render

import (
	"bytes"
	"fmt"
	"image/color"

	svg "github.com/ajstarks/svgo"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/snake"
)

// SVG renders the level as a vector image: one rect per cell, using the
// same palette as PNG.
func SVG(g *grid.Grid, snakes []snake.Snake) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(g.Cols*cellSize, g.Rows*cellSize)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.IsPlayable(geom.Cell{Row: r, Col: c}) {
				svgCell(canvas, r, c, colorFloor)
			}
		}
	}

	for cell, obs := range g.Obstacles() {
		switch obs.Kind {
		case grid.Wall, grid.WallBreak:
			svgCell(canvas, cell.Row, cell.Col, colorWall)
		case grid.Hole:
			svgCell(canvas, cell.Row, cell.Col, colorHole)
		case grid.Tunnel:
			svgCell(canvas, cell.Row, cell.Col, colorTun)
		}
	}

	for _, sn := range snakes {
		col := snakeColor(sn.ColorID)
		for _, c := range sn.Cells() {
			svgCell(canvas, c.Row, c.Col, col)
		}
	}

	canvas.End()
	return buf.Bytes()
}

func svgCell(canvas *svg.SVG, row, col int, c color.RGBA) {
	canvas.Rect(col*cellSize, row*cellSize, cellSize, cellSize,
		fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B))
}
