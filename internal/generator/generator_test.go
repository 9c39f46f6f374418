package generator_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeoutgen/generator/internal/generator"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/strategy"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunScoresAndReturnsBestAttempt(t *testing.T) {
	g, err := grid.New(10, 10, nil, nil)
	require.NoError(t, err)

	outcome := generator.Run(g, generator.Request{
		Strategy: strategy.SmartDynamic,
		Params: strategy.Params{
			ArrowCount: 3, LengthMin: 2, LengthMax: 4,
			BendMin: 0, BendMax: 4, NodeBudget: 500,
		},
		Seed: 42,
	}, discardLogger())

	require.NotEmpty(t, outcome.AttemptLog)
	assert.LessOrEqual(t, len(outcome.AttemptLog), generator.MaxRetries)
	assert.NotEmpty(t, outcome.Best.Snakes)
}

func TestRunDowngradesUnknownStrategy(t *testing.T) {
	g, err := grid.New(8, 8, nil, nil)
	require.NoError(t, err)

	outcome := generator.Run(g, generator.Request{
		Strategy: strategy.ID("NOT_A_REAL_STRATEGY"),
		Params: strategy.Params{
			ArrowCount: 2, LengthMin: 2, LengthMax: 3,
			BendMin: 0, BendMax: 4, NodeBudget: 300,
		},
		Seed: 1,
	}, discardLogger())

	require.NotEmpty(t, outcome.Logs)
	assert.Contains(t, outcome.Logs, "unknown strategy requested, downgrading to SMART_DYNAMIC")
}

func TestRunEveryAttemptIsScored(t *testing.T) {
	g, err := grid.New(6, 6, nil, nil)
	require.NoError(t, err)

	outcome := generator.Run(g, generator.Request{
		Strategy: strategy.SpiralFill,
		Params: strategy.Params{
			ArrowCount: 4, LengthMin: 2, LengthMax: 3,
			BendMin: 0, BendMax: 4, NodeBudget: 1000,
		},
		Seed: 5,
	}, discardLogger())

	for _, attempt := range outcome.AttemptLog {
		assert.Equal(t, coverageScore(attempt.Result.IsSolvable, attempt.Coverage), attempt.Score)
	}
}

func coverageScore(solvable bool, coverage int) int {
	score := coverage
	if solvable {
		score += 1000
	}
	return score
}
