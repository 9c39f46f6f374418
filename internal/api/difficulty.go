package api

import (
	"github.com/snakeoutgen/generator/internal/scorer"
	"github.com/snakeoutgen/generator/internal/validator"
)

// Difficulty runs the Difficulty entry point: rebuild the grid and snake
// list, validate once for the dynamic metrics, then score.
func Difficulty(req DifficultyRequest) (DifficultyResponse, error) {
	g, err := buildGrid(req.Rows, req.Cols, nil, req.Obstacles)
	if err != nil {
		return DifficultyResponse{}, err
	}
	snakes, err := buildSnakes(req.Snakes)
	if err != nil {
		return DifficultyResponse{}, err
	}

	result := validator.Run(g, snakes)
	breakdown, details := scorer.Score(g, snakes, result, req.Rows, req.Cols)

	return DifficultyResponse{
		DifficultyScore: breakdown.Total,
		Breakdown:       DifficultyBreakdown{S: breakdown.S, F: breakdown.F, O: breakdown.O},
		Details: DifficultyDetails{
			GridBounds:    details.GridBounds,
			TotalSnakes:   details.TotalSnakes,
			SolveDepth:    details.SolveDepth,
			OccupiedCells: details.OccupiedCells,
		},
	}, nil
}
