// Package encode implements the Output Encoder (§4.11): it translates the
// internal entity list (snakes + obstacle map) into a center-origin
// coordinate JSON-shaped record list for the external API.
package encode

import (
	"sort"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/snake"
)

// Item is one record of the level JSON schema (§6).
type Item struct {
	ItemID          string      `json:"itemID"`
	ItemType        string      `json:"itemType"`
	Position        []Position  `json:"position"`
	ColorID         *int        `json:"colorID"`
	ItemValueConfig interface{} `json:"itemValueConfig"`
}

// Position is one {x,y} pair in the bounding-box-centered coordinate
// system.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// tunnelDirection maps a stored direction string to the {directX,directY}
// vector convention of §4.11: y is inverted relative to row, matching the
// same y-flip used for cell coordinates.
var tunnelDirection = map[string]Position{
	"up":    {X: 0, Y: 1},
	"down":  {X: 0, Y: -1},
	"left":  {X: -1, Y: 0},
	"right": {X: 1, Y: 0},
}

// idFunc supplies a fresh id string per call; the caller (internal/api)
// wires this to internal/ids so the encoder itself stays free of any
// concrete id-generation dependency.
type idFunc func() string

// Encode translates snakes plus g's obstacle map into the level's item
// list, centered on the min-max bounding box centroid of all snake and
// obstacle cells. Obstacles are emitted in row-major cell order, so a
// tunnel pair is reported from its first cell in that order.
func Encode(g *grid.Grid, snakes []snake.Snake, newID idFunc) []Item {
	centerRow, centerCol := centroid(g, snakes)

	toPos := func(c geom.Cell) Position {
		return Position{X: c.Col - centerCol, Y: centerRow - c.Row}
	}

	var items []Item

	for _, sn := range snakes {
		positions := make([]Position, 0, sn.Len())
		cells := sn.Cells()
		for i := len(cells) - 1; i >= 0; i-- {
			positions = append(positions, toPos(cells[i]))
		}
		colorID := sn.ColorID
		items = append(items, Item{
			ItemID:   newID(),
			ItemType: "snake",
			Position: positions,
			ColorID:  &colorID,
		})
	}

	emittedTunnel := make(map[geom.Cell]struct{})

	obstacles := g.Obstacles()
	obstacleCells := make([]geom.Cell, 0, len(obstacles))
	for cell := range obstacles {
		obstacleCells = append(obstacleCells, cell)
	}
	sort.Slice(obstacleCells, func(i, j int) bool {
		if obstacleCells[i].Row != obstacleCells[j].Row {
			return obstacleCells[i].Row < obstacleCells[j].Row
		}
		return obstacleCells[i].Col < obstacleCells[j].Col
	})

	for _, cell := range obstacleCells {
		obs := obstacles[cell]
		switch obs.Kind {
		case grid.Wall:
			items = append(items, Item{ItemID: newID(), ItemType: "wall", Position: []Position{toPos(cell)}})
		case grid.WallBreak:
			items = append(items, Item{
				ItemID: newID(), ItemType: "wallBreak", Position: []Position{toPos(cell)},
				ItemValueConfig: map[string]int{"count": obs.WallBreakCount},
			})
		case grid.Hole:
			items = append(items, Item{ItemID: newID(), ItemType: "hole", Position: []Position{toPos(cell)}})
		case grid.Tunnel:
			if _, done := emittedTunnel[cell]; done {
				continue
			}
			if obs.TunnelPartner != nil {
				emittedTunnel[*obs.TunnelPartner] = struct{}{}
			}
			emittedTunnel[cell] = struct{}{}

			positions := []Position{toPos(cell)}
			if obs.TunnelPartner != nil {
				positions = append(positions, toPos(*obs.TunnelPartner))
			}
			items = append(items, Item{
				ItemID: newID(), ItemType: "tunel", Position: positions,
				ItemValueConfig: tunnelVector(obs.TunnelDirection),
			})
		}
	}

	return items
}

func tunnelVector(direction string) map[string]int {
	v, ok := tunnelDirection[direction]
	if !ok {
		v = Position{}
	}
	return map[string]int{"directX": v.X, "directY": v.Y}
}

func centroid(g *grid.Grid, snakes []snake.Snake) (row, col int) {
	first := true
	var minR, minC, maxR, maxC int

	consider := func(c geom.Cell) {
		if first {
			minR, maxR, minC, maxC = c.Row, c.Row, c.Col, c.Col
			first = false
			return
		}
		if c.Row < minR {
			minR = c.Row
		}
		if c.Row > maxR {
			maxR = c.Row
		}
		if c.Col < minC {
			minC = c.Col
		}
		if c.Col > maxC {
			maxC = c.Col
		}
	}

	for _, sn := range snakes {
		for _, c := range sn.Cells() {
			consider(c)
		}
	}
	for c := range g.Obstacles() {
		consider(c)
	}

	if first {
		return 0, 0
	}
	return (minR + maxR) / 2, (minC + maxC) / 2
}
