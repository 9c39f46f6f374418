package grid

import "github.com/snakeoutgen/generator/internal/geom"

// ObstacleKind tags the variant of an Obstacle, per the obstacle taxonomy.
type ObstacleKind int

const (
	// Wall is an impassable cell or cell group; blocks snake bodies and raycasts.
	Wall ObstacleKind = iota
	// WallBreak behaves as Wall during generation; the difficulty scorer
	// counts it distinctly from a plain Wall.
	WallBreak
	// Hole is a single impassable cell during generation; blocks raycasts.
	Hole
	// Tunnel pairs two same-colored cells; each stores a back-reference to
	// its partner and the direction a snake would exit toward.
	Tunnel
	// IcedSnake decorates a placed snake with an ice lock. It never blocks a
	// raycast itself (it travels with a snake, not a cell) but contributes to
	// the obstacle cost (O) sub-score. Carried over from original_source's
	// difficulty formula, which the distilled spec.md never fully modeled.
	IcedSnake
	// KeySnake decorates a placed snake with a key lock. Same non-blocking,
	// scorer-only behavior as IcedSnake.
	KeySnake
)

// Obstacle is a tagged record describing one placed obstacle.
type Obstacle struct {
	Kind ObstacleKind

	// WallBreakCount is the number of hits required to clear a WallBreak.
	WallBreakCount int

	// HoleColor is the optional color id of a Hole.
	HoleColor string

	// TunnelColor is shared by exactly two Tunnel obstacles.
	TunnelColor string
	// TunnelDirection is the exit direction string as given by the caller
	// ("up", "down", "left", "right").
	TunnelDirection string
	// TunnelPartner is filled in by Grid construction once both cells of a
	// tunnel color have been located.
	TunnelPartner *geom.Cell
}

// Blocks reports whether this obstacle kind blocks snake bodies and
// raycasts. IcedSnake and KeySnake decorate a snake rather than a cell and
// never block anything on their own.
func (o Obstacle) Blocks() bool {
	switch o.Kind {
	case Wall, WallBreak, Hole, Tunnel:
		return true
	default:
		return false
	}
}
