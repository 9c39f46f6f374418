package api

import (
	"github.com/snakeoutgen/generator/internal/apierr"
	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/snake"
)

func toCell(p CellPos) geom.Cell {
	return geom.Cell{Row: p.Row, Col: p.Col}
}

func buildGrid(rows, cols int, mask [][]bool, obstacles []ObstacleReq) (*grid.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, apierr.InvalidInput("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	if mask != nil && len(mask) != rows {
		return nil, apierr.InvalidInput("playable_mask has %d rows, expected %d", len(mask), rows)
	}
	for i, row := range mask {
		if len(row) != cols {
			return nil, apierr.InvalidInput("playable_mask row %d has %d cols, expected %d", i, len(row), cols)
		}
	}

	inputs := make([]grid.ObstacleInput, 0, len(obstacles))
	for _, o := range obstacles {
		kind, err := parseObstacleKind(o.Type)
		if err != nil {
			return nil, err
		}

		cells := make([]geom.Cell, 0, len(o.Cells)+1)
		if len(o.Cells) > 0 {
			for _, c := range o.Cells {
				cells = append(cells, toCell(c))
			}
		} else {
			cells = append(cells, geom.Cell{Row: o.Row, Col: o.Col})
		}

		inputs = append(inputs, grid.ObstacleInput{
			Kind: kind, Cells: cells, Color: o.Color,
			Direction: o.Direction, WallBreakCount: o.Count,
		})
	}

	g, err := grid.New(rows, cols, mask, inputs)
	if err != nil {
		return nil, apierr.InvalidInput("%s", err.Error())
	}
	return g, nil
}

func parseObstacleKind(t string) (grid.ObstacleKind, error) {
	switch t {
	case "wall":
		return grid.Wall, nil
	case "wall_break":
		return grid.WallBreak, nil
	case "hole":
		return grid.Hole, nil
	case "tunnel":
		return grid.Tunnel, nil
	case "iced_snake":
		return grid.IcedSnake, nil
	case "key_snake":
		return grid.KeySnake, nil
	default:
		return 0, apierr.InvalidInput("unknown obstacle type %q", t)
	}
}

func buildSnakes(reqs []SnakeReq) ([]snake.Snake, error) {
	out := make([]snake.Snake, 0, len(reqs))
	for i, s := range reqs {
		if len(s.Path) < 2 {
			return nil, apierr.InvalidInput("snake %d has length %d, minimum is 2", i, len(s.Path))
		}
		path := make([]geom.Cell, len(s.Path))
		for j, p := range s.Path {
			path[j] = toCell(p)
		}
		out = append(out, snake.Snake{Path: path, ColorID: s.ColorID})
	}
	return out, nil
}

func parseColors(colors []string) []int {
	if len(colors) == 0 {
		return nil
	}
	out := make([]int, len(colors))
	for i := range colors {
		out[i] = i
	}
	return out
}
