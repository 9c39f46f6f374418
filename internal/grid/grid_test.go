package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
)

func TestNewAllPlayableByDefault(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)

	assert.True(t, g.IsPlayable(geom.Cell{Row: 0, Col: 0}))
	assert.True(t, g.IsPlayable(geom.Cell{Row: 4, Col: 4}))
	assert.False(t, g.IsPlayable(geom.Cell{Row: 5, Col: 0}))
}

func TestNewWallSubtractsFromPlayable(t *testing.T) {
	g, err := grid.New(5, 5, nil, []grid.ObstacleInput{
		{Kind: grid.Wall, Cells: []geom.Cell{{Row: 2, Col: 2}}},
	})
	require.NoError(t, err)

	assert.False(t, g.IsPlayable(geom.Cell{Row: 2, Col: 2}))
	assert.True(t, g.IsObstacle(geom.Cell{Row: 2, Col: 2}))
}

func TestNewTunnelRequiresExactlyTwoCells(t *testing.T) {
	_, err := grid.New(5, 5, nil, []grid.ObstacleInput{
		{Kind: grid.Tunnel, Cells: []geom.Cell{{Row: 0, Col: 0}}, Color: "red"},
	})
	assert.Error(t, err)
}

func TestNewTunnelPairsPartners(t *testing.T) {
	g, err := grid.New(5, 5, nil, []grid.ObstacleInput{
		{Kind: grid.Tunnel, Cells: []geom.Cell{{Row: 0, Col: 0}}, Color: "red", Direction: "right"},
		{Kind: grid.Tunnel, Cells: []geom.Cell{{Row: 4, Col: 4}}, Color: "red", Direction: "left"},
	})
	require.NoError(t, err)

	partner, ok := g.TunnelPartner(geom.Cell{Row: 0, Col: 0})
	require.True(t, ok)
	assert.Equal(t, geom.Cell{Row: 4, Col: 4}, partner)
}

func TestNewObstacleOutOfBoundsIsError(t *testing.T) {
	_, err := grid.New(3, 3, nil, []grid.ObstacleInput{
		{Kind: grid.Wall, Cells: []geom.Cell{{Row: 10, Col: 10}}},
	})
	assert.Error(t, err)
}

func TestIcedAndKeySnakeObstaclesDoNotBlock(t *testing.T) {
	g, err := grid.New(3, 3, nil, []grid.ObstacleInput{
		{Kind: grid.IcedSnake, Cells: []geom.Cell{{Row: 1, Col: 1}}},
	})
	require.NoError(t, err)

	assert.True(t, g.IsPlayable(geom.Cell{Row: 1, Col: 1}))
	assert.True(t, g.IsObstacle(geom.Cell{Row: 1, Col: 1}))
}

func TestPlayableCellsExcludesObstacles(t *testing.T) {
	g, err := grid.New(2, 2, nil, []grid.ObstacleInput{
		{Kind: grid.Wall, Cells: []geom.Cell{{Row: 0, Col: 0}}},
	})
	require.NoError(t, err)

	cells := g.PlayableCells()
	assert.Len(t, cells, 3)
	assert.NotContains(t, cells, geom.Cell{Row: 0, Col: 0})
}
