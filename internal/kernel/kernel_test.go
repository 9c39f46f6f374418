package kernel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
)

type identityOrderer struct{}

func (identityOrderer) OrderNeighbors(_ kernel.NeighborContext, candidates []geom.Cell) []geom.Cell {
	return candidates
}

func TestSearchAcceptsAtLengthMaxUnconditionally(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	rng := rand.New(rand.NewSource(1))

	path, ok := kernel.Search(g, occ, geom.Cell{Row: 2, Col: 2}, kernel.Constraints{
		LengthMin: 3, LengthMax: 3, BendMin: 0, BendMax: 4, NodeBudget: 1000,
	}, identityOrderer{}, rng)

	require.True(t, ok)
	assert.Len(t, path, 3)
	assert.Equal(t, geom.Cell{Row: 2, Col: 2}, path[0])
}

func TestSearchFailsWhenStartOccupied(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	occ.Add(geom.Cell{Row: 2, Col: 2})
	rng := rand.New(rand.NewSource(1))

	_, ok := kernel.Search(g, occ, geom.Cell{Row: 2, Col: 2}, kernel.Constraints{
		LengthMin: 2, LengthMax: 4, NodeBudget: 1000,
	}, identityOrderer{}, rng)

	assert.False(t, ok)
}

func TestSearchFailsWhenStartUnplayable(t *testing.T) {
	mask := [][]bool{
		{true, true},
		{false, true},
	}
	g, err := grid.New(2, 2, mask, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	rng := rand.New(rand.NewSource(1))

	_, ok := kernel.Search(g, occ, geom.Cell{Row: 1, Col: 0}, kernel.Constraints{
		LengthMin: 1, LengthMax: 2, NodeBudget: 1000,
	}, identityOrderer{}, rng)

	assert.False(t, ok)
}

func TestSearchHonorsBendFloorByTurning(t *testing.T) {
	// Wall at {2,0} blocks the straight continuation from {1,0}, forcing
	// the length-3 path through {1,0} to turn into {1,1}; with Down tried
	// before Right, that is the path the identity order finds first.
	g, err := grid.New(3, 3, nil, []grid.ObstacleInput{
		{Kind: grid.Wall, Cells: []geom.Cell{{Row: 2, Col: 0}}},
	})
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	rng := rand.New(rand.NewSource(1))

	path, ok := kernel.Search(g, occ, geom.Cell{Row: 0, Col: 0}, kernel.Constraints{
		LengthMin: 3, LengthMax: 3, BendMin: 1, BendMax: 4, NodeBudget: 1000,
	}, identityOrderer{}, rng)

	require.True(t, ok)
	assert.Equal(t, []geom.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, path)
}

func TestSearchFailsWhenNodeBudgetExhausted(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	rng := rand.New(rand.NewSource(1))

	_, ok := kernel.Search(g, occ, geom.Cell{Row: 2, Col: 2}, kernel.Constraints{
		LengthMin: 3, LengthMax: 5, NodeBudget: 0,
	}, identityOrderer{}, rng)

	assert.False(t, ok)
}

func TestSearchNeverLeavesOccupancyMutated(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	rng := rand.New(rand.NewSource(1))

	before := occ.Count()
	_, ok := kernel.Search(g, occ, geom.Cell{Row: 2, Col: 2}, kernel.Constraints{
		LengthMin: 3, LengthMax: 3, NodeBudget: 1000,
	}, identityOrderer{}, rng)

	require.True(t, ok)
	assert.Equal(t, before, occ.Count())
}
