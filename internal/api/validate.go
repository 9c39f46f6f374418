package api

import "github.com/snakeoutgen/generator/internal/validator"

// Validate runs the Validate entry point: rebuild the grid and snake
// list from the request and run the Solvability Validator.
func Validate(req ValidateRequest) (ValidateResponse, error) {
	g, err := buildGrid(req.Rows, req.Cols, nil, req.Obstacles)
	if err != nil {
		return ValidateResponse{}, err
	}
	snakes, err := buildSnakes(req.Snakes)
	if err != nil {
		return ValidateResponse{}, err
	}

	result := validator.Run(g, snakes)

	return ValidateResponse{
		IsSolvable:    result.IsSolvable,
		RemainedCount: result.RemainedCount,
		TotalSnakes:   result.TotalSnakes,
		Steps:         result.Steps,
		Logs:          result.Logs,
	}, nil
}
