package raycast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/raycast"
)

func TestCastExitsOnClearPath(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)

	assert.True(t, raycast.Cast(g, occ, geom.Cell{Row: 2, Col: 2}, geom.Right))
}

func TestCastBlockedByOccupiedCell(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	occ.Add(geom.Cell{Row: 2, Col: 4})

	assert.False(t, raycast.Cast(g, occ, geom.Cell{Row: 2, Col: 2}, geom.Right))
}

func TestCastTraversesVoidsWithoutExiting(t *testing.T) {
	// Voids (playable=false but unoccupied) must be traversed, not treated
	// as an exit in themselves — only falling off the grid counts.
	mask := [][]bool{
		{true, true, true},
		{true, false, true},
		{true, true, true},
	}
	g, err := grid.New(3, 3, mask, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)

	assert.True(t, raycast.Cast(g, occ, geom.Cell{Row: 1, Col: 0}, geom.Right))
}

func TestCanExitZeroDirectionIsFalse(t *testing.T) {
	g, err := grid.New(3, 3, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)

	assert.False(t, raycast.CanExit(g, occ, geom.Cell{Row: 1, Col: 1}, geom.Direction{}))
}

func TestExcludingTreatsExcludedCellsAsUnoccupied(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)
	occ := grid.NewOccupancy(g)
	blocker := geom.Cell{Row: 2, Col: 3}
	occ.Add(blocker)

	excluded := map[geom.Cell]struct{}{blocker: {}}
	view := raycast.Excluding(occ, excluded)

	assert.False(t, view.Occupied(blocker))
	assert.True(t, raycast.Cast(g, view, geom.Cell{Row: 2, Col: 2}, geom.Right))
}

func TestNeighborsFixedOrder(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)

	got := raycast.Neighbors(g, geom.Cell{Row: 2, Col: 2})
	want := []geom.Cell{{Row: 1, Col: 2}, {Row: 3, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 3}}
	assert.Equal(t, want, got)
}
