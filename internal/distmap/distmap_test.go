package distmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeoutgen/generator/internal/distmap"
	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
)

func TestComputeBoundaryCellsAreDepthOne(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)

	m := distmap.Compute(g, occ)

	d, ok := m.DepthOf(geom.Cell{Row: 0, Col: 0})
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestComputeInteriorCellDepthIncreasesInward(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)

	m := distmap.Compute(g, occ)

	center, ok := m.DepthOf(geom.Cell{Row: 2, Col: 2})
	require.True(t, ok)
	edge, ok := m.DepthOf(geom.Cell{Row: 0, Col: 2})
	require.True(t, ok)

	assert.Greater(t, center, edge)
}

func TestComputeOccupiedCellsAreUnreachable(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	occ.Add(geom.Cell{Row: 2, Col: 2})

	m := distmap.Compute(g, occ)

	_, ok := m.DepthOf(geom.Cell{Row: 2, Col: 2})
	assert.False(t, ok)
}

func TestCacheNextYieldsEveryFreeCellThenReportsExhaustion(t *testing.T) {
	g, err := grid.New(2, 2, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)

	less := func(a, b geom.Cell, m *distmap.Map) bool {
		da, _ := m.DepthOf(a)
		db, _ := m.DepthOf(b)
		return da < db
	}
	cache := distmap.NewCache(g, occ, less)

	seen := make(map[geom.Cell]bool)
	for i := 0; i < 4; i++ {
		cell, ok := cache.Next(less)
		require.True(t, ok)
		seen[cell] = true
		occ.Add(cell)
	}
	assert.Len(t, seen, 4)

	_, ok := cache.Next(less)
	assert.False(t, ok)
}
