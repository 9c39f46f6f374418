package strategy_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/strategy"
)

func TestGrowJointProducesDisjointMirroredPaths(t *testing.T) {
	g, err := grid.New(6, 6, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	rng := rand.New(rand.NewSource(7))

	s := strategy.New(strategy.Symmetrical, g)
	s = strategy.WithSymmetryType(s, strategy.SymmetryVertical)
	grower, ok := s.(strategy.JointGrower)
	require.True(t, ok)

	paths, ok := grower.GrowJoint(g, occ, geom.Cell{Row: 2, Col: 0}, kernel.Constraints{
		LengthMin: 3, LengthMax: 3, BendMin: 0, BendMax: 4, NodeBudget: 5000,
	}, rng)

	require.True(t, ok)
	require.Len(t, paths, 2)
	assert.Equal(t, geom.Cell{Row: 2, Col: 0}, paths[0][0])
	assert.Equal(t, geom.Cell{Row: 2, Col: 5}, paths[1][0]) // vertical mirror: col -> Cols-1-col

	seen := make(map[geom.Cell]bool)
	for _, p := range paths {
		assert.Len(t, p, 3)
		for _, c := range p {
			assert.False(t, seen[c], "paths must not overlap")
			seen[c] = true
		}
	}
}

func TestGrowJointFailsWhenMirrorStartOccupied(t *testing.T) {
	g, err := grid.New(6, 6, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	occ.Add(geom.Cell{Row: 2, Col: 5}) // the vertical mirror of {2,0}
	rng := rand.New(rand.NewSource(7))

	s := strategy.WithSymmetryType(strategy.New(strategy.Symmetrical, g), strategy.SymmetryVertical)
	grower := s.(strategy.JointGrower)

	_, ok := grower.GrowJoint(g, occ, geom.Cell{Row: 2, Col: 0}, kernel.Constraints{
		LengthMin: 3, LengthMax: 3, NodeBudget: 5000,
	}, rng)

	assert.False(t, ok)
}

func TestGrowJointRadialSelfMirrorCenterActsAsSinglePath(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	rng := rand.New(rand.NewSource(3))

	s := strategy.WithSymmetryType(strategy.New(strategy.Symmetrical, g), strategy.SymmetryRadial)
	grower := s.(strategy.JointGrower)

	// {2,2} is the board center: its diagonal/radial mirror is itself, so
	// only one path should be grown.
	paths, ok := grower.GrowJoint(g, occ, geom.Cell{Row: 2, Col: 2}, kernel.Constraints{
		LengthMin: 3, LengthMax: 3, BendMin: 0, BendMax: 4, NodeBudget: 5000,
	}, rng)

	require.True(t, ok)
	require.Len(t, paths, 1)
	assert.Equal(t, geom.Cell{Row: 2, Col: 2}, paths[0][0])
}

func TestGrowJointNeverLeavesOccupancyMutated(t *testing.T) {
	g, err := grid.New(6, 6, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	rng := rand.New(rand.NewSource(7))

	s := strategy.WithSymmetryType(strategy.New(strategy.Symmetrical, g), strategy.SymmetryVertical)
	grower := s.(strategy.JointGrower)

	before := occ.Count()
	_, ok := grower.GrowJoint(g, occ, geom.Cell{Row: 2, Col: 0}, kernel.Constraints{
		LengthMin: 3, LengthMax: 3, NodeBudget: 5000,
	}, rng)

	require.True(t, ok)
	assert.Equal(t, before, occ.Count())
}
