package api

import (
	"log/slog"

	"github.com/snakeoutgen/generator/internal/apierr"
	"github.com/snakeoutgen/generator/internal/encode"
	"github.com/snakeoutgen/generator/internal/generator"
	"github.com/snakeoutgen/generator/internal/ids"
	"github.com/snakeoutgen/generator/internal/strategy"
)

// Generate runs the Generate entry point: build the grid, run the
// Generator Driver over the requested strategy, and encode the best
// attempt.
func Generate(req GenerateRequest, logger *slog.Logger) (GenerateResponse, error) {
	return GenerateStreaming(req, logger, nil)
}

// GenerateStreaming is Generate plus an optional onAttempt callback, fired
// synchronously after each retry is scored. Used by cmd/server's
// WebSocket endpoint to stream live retry telemetry; Generate itself just
// calls this with a nil callback.
func GenerateStreaming(req GenerateRequest, logger *slog.Logger, onAttempt func(int, generator.Attempt)) (GenerateResponse, error) {
	g, err := buildGrid(req.Rows, req.Cols, req.PlayableMask, req.Obstacles)
	if err != nil {
		return GenerateResponse{}, err
	}
	if err := validateGenerateParams(req); err != nil {
		return GenerateResponse{}, err
	}

	nodeBudget := req.NodeBudget
	if nodeBudget <= 0 {
		nodeBudget = 1500
	}

	driverReq := generator.Request{
		Strategy: strategy.ID(req.Strategy),
		SymType:  strategy.SymmetryType(req.SymmetryType),
		Params: strategy.Params{
			ArrowCount: req.ArrowCount,
			LengthMin:  req.MinLength, LengthMax: req.MaxLength,
			BendMin: req.MinBends, BendMax: req.MaxBends,
			NodeBudget: nodeBudget,
			BonusFill:  req.BonusFill,
			Colors:     parseColors(req.Colors),
		},
		Seed:      req.Seed,
		OnAttempt: onAttempt,
	}

	outcome := generator.Run(g, driverReq, logger)
	best := outcome.Best

	items := encode.Encode(g, best.Snakes, ids.New)

	return GenerateResponse{
		LevelJSON:       toAPIItems(items),
		Logs:            append(append([]string(nil), outcome.Logs...), best.Logs...),
		IsSolvable:      best.Result.IsSolvable,
		StuckCount:      best.Result.RemainedCount,
		CoveragePercent: best.Coverage,
	}, nil
}

func validateGenerateParams(req GenerateRequest) error {
	if req.ArrowCount < 1 {
		return apierr.InvalidInput("arrow_count must be >= 1")
	}
	if req.MinLength < 2 || req.MaxLength < req.MinLength {
		return apierr.InvalidInput("min_length must be >= 2 and max_length >= min_length")
	}
	if req.MinBends < 0 || req.MaxBends < req.MinBends {
		return apierr.InvalidInput("min_bends must be >= 0 and max_bends >= min_bends")
	}
	return nil
}

func toAPIItems(items []encode.Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		positions := make([]Position, len(it.Position))
		for j, p := range it.Position {
			positions[j] = Position{X: p.X, Y: p.Y}
		}
		out[i] = Item{
			ItemID: it.ItemID, ItemType: it.ItemType,
			Position: positions, ColorID: it.ColorID,
			ItemValueConfig: it.ItemValueConfig,
		}
	}
	return out
}
