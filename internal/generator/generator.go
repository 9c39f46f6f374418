// Package generator implements the Generator Driver (§4.8): it runs a
// strategy up to MaxRetries independent times over the same grid, scores
// each attempt, and keeps the best.
package generator

import (
	"log/slog"
	"math/rand"

	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/snake"
	"github.com/snakeoutgen/generator/internal/strategy"
	"github.com/snakeoutgen/generator/internal/validator"
)

// MaxRetries bounds the number of independent attempts (§4.8, §5).
const MaxRetries = 20

// shortCircuitCoverage is the coverage at which a solvable attempt is
// accepted immediately without exhausting the remaining retries.
const shortCircuitCoverage = 95

// Request bundles one generation call's parameters, independent of any
// transport-layer request type.
type Request struct {
	Strategy strategy.ID
	SymType  strategy.SymmetryType // only consulted for strategy.Symmetrical
	Params   strategy.Params
	Seed     int64

	// OnAttempt, if set, is called synchronously after each attempt is
	// scored, in retry order starting at 1. Used by cmd/server's
	// WebSocket endpoint to stream live retry telemetry to a caller
	// without changing Run's own control flow.
	OnAttempt func(attemptNumber int, a Attempt)
}

// Attempt is one scored retry.
type Attempt struct {
	Snakes   []snake.Snake
	Logs     []string
	Result   validator.Result
	Score    int
	Coverage int
}

// Outcome is the driver's final decision: the best attempt seen across all
// retries, plus the accumulated diagnostic trail.
type Outcome struct {
	Best       Attempt
	Logs       []string
	AttemptLog []Attempt
}

// Run executes up to MaxRetries attempts and returns the best, per §4.8's
// scoring rule: 1000·is_solvable + coverage_percent, short-circuiting once
// a solvable attempt reaches shortCircuitCoverage.
func Run(g *grid.Grid, req Request, logger *slog.Logger) Outcome {
	id := req.Strategy
	var driverLogs []string

	if !validStrategy(id) {
		driverLogs = append(driverLogs, "unknown strategy requested, downgrading to SMART_DYNAMIC")
		logger.Warn("unknown strategy downgraded", "requested", id)
		id = strategy.SmartDynamic
	}

	rng := rand.New(rand.NewSource(req.Seed))

	var best Attempt
	haveBest := false
	var attempts []Attempt

	for i := 0; i < MaxRetries; i++ {
		s := strategy.New(id, g)
		if id == strategy.Symmetrical && req.SymType != "" {
			s = strategy.WithSymmetryType(s, req.SymType)
		}

		occ := grid.NewOccupancy(g)
		snakes, genLogs := strategy.Generate(s, g, occ, req.Params, rng)
		result := validator.Run(g, snakes)

		coverage := coveragePercent(g, snakes)
		score := coverageScore(result.IsSolvable, coverage)

		attempt := Attempt{
			Snakes:   snakes,
			Logs:     append(append([]string(nil), genLogs...), result.Logs...),
			Result:   result,
			Score:    score,
			Coverage: coverage,
		}
		attempts = append(attempts, attempt)

		logger.Info("generation attempt scored",
			"attempt", i+1, "strategy", id, "solvable", result.IsSolvable,
			"coverage", coverage, "score", score)

		if req.OnAttempt != nil {
			req.OnAttempt(i+1, attempt)
		}

		if !haveBest || attempt.Score > best.Score {
			best = attempt
			haveBest = true
		}

		if result.IsSolvable && coverage >= shortCircuitCoverage {
			driverLogs = append(driverLogs, "short-circuiting: solvable attempt reached target coverage")
			break
		}
	}

	if !best.Result.IsSolvable {
		driverLogs = append(driverLogs, "best attempt across all retries is unsolvable")
		logger.Warn("unsolvable best attempt", "remained", best.Result.RemainedCount)
	}

	return Outcome{Best: best, Logs: driverLogs, AttemptLog: attempts}
}

func validStrategy(id strategy.ID) bool {
	switch id {
	case strategy.SmartDynamic, strategy.RandomAdaptive, strategy.EdgeHugger,
		strategy.MaxClump, strategy.SpiralFill, strategy.Symmetrical:
		return true
	default:
		return false
	}
}

func coverageScore(solvable bool, coverage int) int {
	score := coverage
	if solvable {
		score += 1000
	}
	return score
}

func coveragePercent(g *grid.Grid, snakes []snake.Snake) int {
	playable := len(g.PlayableCells())
	if playable == 0 {
		return 0
	}
	occupied := 0
	for _, sn := range snakes {
		occupied += sn.Len()
	}
	return occupied * 100 / playable
}
