package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeoutgen/generator/internal/encode"
	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/snake"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return string(rune('a' + n - 1))
	}
}

func TestEncodeSnakeIsHeadFirstAndCentered(t *testing.T) {
	g, err := grid.New(5, 5, nil, nil)
	require.NoError(t, err)

	sn := snake.Snake{
		Path:    []geom.Cell{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
		ColorID: 3,
	}

	items := encode.Encode(g, []snake.Snake{sn}, sequentialIDs())

	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, "snake", item.ItemType)
	require.NotNil(t, item.ColorID)
	assert.Equal(t, 3, *item.ColorID)
	require.Len(t, item.Position, 3)

	// bounding box: row 2..2, col 0..2 -> center row 2, center col 1.
	// head is {2,2}: x = 2-1=1, y = 2-2=0.
	assert.Equal(t, encode.Position{X: 1, Y: 0}, item.Position[0])
	// tail is {2,0}: x = 0-1=-1, y = 2-2=0.
	assert.Equal(t, encode.Position{X: -1, Y: 0}, item.Position[2])
}

func TestEncodeWallProducesSingleCellItem(t *testing.T) {
	g, err := grid.New(3, 3, nil, []grid.ObstacleInput{
		{Kind: grid.Wall, Cells: []geom.Cell{{Row: 1, Col: 1}}},
	})
	require.NoError(t, err)

	items := encode.Encode(g, nil, sequentialIDs())

	require.Len(t, items, 1)
	assert.Equal(t, "wall", items[0].ItemType)
	assert.Equal(t, []encode.Position{{X: 0, Y: 0}}, items[0].Position)
}

func TestEncodeTunnelPairEmittedOnce(t *testing.T) {
	g, err := grid.New(5, 5, nil, []grid.ObstacleInput{
		{Kind: grid.Tunnel, Cells: []geom.Cell{{Row: 0, Col: 0}}, Color: "red", Direction: "right"},
		{Kind: grid.Tunnel, Cells: []geom.Cell{{Row: 4, Col: 4}}, Color: "red", Direction: "left"},
	})
	require.NoError(t, err)

	items := encode.Encode(g, nil, sequentialIDs())

	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, "tunel", item.ItemType)
	require.Len(t, item.Position, 2)

	cfg, ok := item.ItemValueConfig.(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 1, cfg["directX"])
	assert.Equal(t, 0, cfg["directY"])
}

func TestEncodeWallBreakCarriesCount(t *testing.T) {
	g, err := grid.New(3, 3, nil, []grid.ObstacleInput{
		{Kind: grid.WallBreak, Cells: []geom.Cell{{Row: 1, Col: 1}}, WallBreakCount: 2},
	})
	require.NoError(t, err)

	items := encode.Encode(g, nil, sequentialIDs())

	require.Len(t, items, 1)
	cfg, ok := items[0].ItemValueConfig.(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 2, cfg["count"])
}
