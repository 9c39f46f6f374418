package api

import (
	"math/rand"

	"github.com/snakeoutgen/generator/internal/encode"
	"github.com/snakeoutgen/generator/internal/fill"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/ids"
	"github.com/snakeoutgen/generator/internal/snake"
	"github.com/snakeoutgen/generator/internal/strategy"
	"github.com/snakeoutgen/generator/internal/validator"
)

// FillGaps runs the Fill-gaps entry point: rebuild the existing level,
// run Smart Fill against it, and re-encode the combined result.
func FillGaps(req FillGapsRequest) (FillGapsResponse, error) {
	g, err := buildGrid(req.Rows, req.Cols, req.PlayableMask, req.Obstacles)
	if err != nil {
		return FillGapsResponse{}, err
	}
	existing, err := buildSnakes(req.Snakes)
	if err != nil {
		return FillGapsResponse{}, err
	}

	occ := grid.NewOccupancy(g)
	for _, sn := range existing {
		occ.Add(sn.Cells()...)
	}

	nodeBudget := req.NodeBudget
	if nodeBudget <= 0 {
		nodeBudget = 1500
	}

	rng := rand.New(rand.NewSource(req.Seed))
	colorer := strategy.NewColorer(parseColors(req.Colors))

	added, fillLogs := fill.Run(g, occ, existing, fill.Params{
		LengthMin: req.MinLength, LengthMax: req.MaxLength,
		BendMin: req.MinBends, BendMax: req.MaxBends,
		NodeBudget: nodeBudget,
	}, colorer, rng)

	allSnakes := append(append([]snake.Snake(nil), existing...), added...)
	result := validator.Run(g, allSnakes)
	items := encode.Encode(g, allSnakes, ids.New)

	return FillGapsResponse{
		LevelJSON:   toAPIItems(items),
		Logs:        fillLogs,
		IsSolvable:  result.IsSolvable,
		StuckCount:  result.RemainedCount,
		SnakesAdded: len(added),
	}, nil
}
