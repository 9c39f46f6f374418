package api_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeoutgen/generator/internal/api"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateProducesEncodedSolvableLevel(t *testing.T) {
	req := api.GenerateRequest{
		ArrowCount: 3,
		Rows:       8, Cols: 8,
		MinLength: 2, MaxLength: 4,
		MinBends: 0, MaxBends: 4,
		Strategy:   "SMART_DYNAMIC",
		NodeBudget: 800,
		Seed:       1,
	}

	resp, err := api.Generate(req, discardLogger())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.LevelJSON)
}

func TestGenerateRejectsInvalidArrowCount(t *testing.T) {
	req := api.GenerateRequest{
		ArrowCount: 0,
		Rows:       5, Cols: 5,
		MinLength: 2, MaxLength: 3,
		Strategy: "SMART_DYNAMIC",
	}

	_, err := api.Generate(req, discardLogger())
	assert.Error(t, err)
}

func TestGenerateRejectsBadGridDimensions(t *testing.T) {
	req := api.GenerateRequest{
		ArrowCount: 1,
		Rows:       0, Cols: 5,
		MinLength: 2, MaxLength: 3,
		Strategy: "SMART_DYNAMIC",
	}

	_, err := api.Generate(req, discardLogger())
	assert.Error(t, err)
}

func TestValidateRoundTripsASolvableLevel(t *testing.T) {
	req := api.ValidateRequest{
		Rows: 5, Cols: 5,
		Snakes: []api.SnakeReq{
			{Path: []api.CellPos{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, ColorID: 0},
		},
	}

	resp, err := api.Validate(req)
	require.NoError(t, err)
	assert.True(t, resp.IsSolvable)
	assert.Equal(t, 1, resp.TotalSnakes)
}

func TestValidateRejectsTooShortSnake(t *testing.T) {
	req := api.ValidateRequest{
		Rows: 5, Cols: 5,
		Snakes: []api.SnakeReq{
			{Path: []api.CellPos{{Row: 2, Col: 0}}, ColorID: 0},
		},
	}

	_, err := api.Validate(req)
	assert.Error(t, err)
}

func TestDifficultyScoresASimpleLevel(t *testing.T) {
	req := api.DifficultyRequest{
		Rows: 5, Cols: 5,
		Snakes: []api.SnakeReq{
			{Path: []api.CellPos{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, ColorID: 0},
		},
	}

	resp, err := api.Difficulty(req)
	require.NoError(t, err)
	assert.Greater(t, resp.DifficultyScore, 0.0)
	assert.Equal(t, 1, resp.Details.TotalSnakes)
}

func TestFillGapsAddsSnakesToAnEmptyLevel(t *testing.T) {
	req := api.FillGapsRequest{
		Rows: 10, Cols: 10,
		MinLength: 2, MaxLength: 3,
		MinBends: 0, MaxBends: 4,
		NodeBudget: 500,
		Seed:       3,
	}

	resp, err := api.FillGaps(req)
	require.NoError(t, err)
	assert.Greater(t, resp.SnakesAdded, 0)
	assert.True(t, resp.IsSolvable)
}

func TestFillGapsRejectsUnknownObstacleType(t *testing.T) {
	req := api.FillGapsRequest{
		Rows: 5, Cols: 5,
		Obstacles: []api.ObstacleReq{{Type: "not_a_real_type", Row: 0, Col: 0}},
	}

	_, err := api.FillGaps(req)
	assert.Error(t, err)
}
