// Package strategy implements the six interchangeable generation
// heuristics (§4.5). Each supplies start-cell ordering and neighbor
// ordering hooks around the shared Path Search Kernel, and optionally a
// fill pass. Reimplemented as tagged variants behind a small capability
// interface rather than a class hierarchy, per the design note in §9.
package strategy

import (
	"math/rand"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/kernel"
	"github.com/snakeoutgen/generator/internal/snake"
)

// ID names one of the six heuristics, per §6 "strategy".
type ID string

const (
	SmartDynamic   ID = "SMART_DYNAMIC"
	RandomAdaptive ID = "RANDOM_ADAPTIVE"
	EdgeHugger     ID = "EDGE_HUGGER"
	MaxClump       ID = "MAX_CLUMP"
	SpiralFill     ID = "SPIRAL_FILL"
	Symmetrical    ID = "SYMMETRICAL"
)

// Strategy supplies the two hooks every heuristic shares: start-cell
// ordering and neighbor ordering. It also satisfies kernel.NeighborOrderer
// directly so the kernel can take a Strategy without adaptation.
type Strategy interface {
	kernel.NeighborOrderer

	ID() ID

	// PickStarts returns an ordered list of candidate start cells for the
	// next snake placement, given the current occupancy.
	PickStarts(g *grid.Grid, occ *grid.Occupancy, rng *rand.Rand) []geom.Cell
}

// JointGrower is implemented by strategies that replace the base kernel
// with a multi-path lock-step search (currently only Symmetrical, §4.6).
// When a Strategy implements JointGrower, Generate calls GrowJoint instead
// of kernel.Search for every start candidate.
type JointGrower interface {
	GrowJoint(g *grid.Grid, occ *grid.Occupancy, start geom.Cell, c kernel.Constraints, rng *rand.Rand) ([][]geom.Cell, bool)
}

// FillRunner is the optional third hook: a strategy-specific bonus fill
// pass run after the main placement loop. Strategies that don't implement
// it simply aren't type-asserted to it.
type FillRunner interface {
	RunFill(g *grid.Grid, occ *grid.Occupancy, placed *[]snake.Snake, params FillParams, colorer *Colorer, rng *rand.Rand) []string
}

// FillParams carries the length/bend constraints the fill pass needs to
// synthesize new snakes.
type FillParams struct {
	LengthMin, LengthMax int
	BendMin, BendMax     int
	NodeBudget           int
}

// Params bundles the per-attempt generation parameters (§6 Generate
// entry point inputs, minus grid/mask/obstacles which live on *grid.Grid).
type Params struct {
	ArrowCount           int
	LengthMin, LengthMax int
	BendMin, BendMax     int
	NodeBudget           int
	BonusFill            bool
	Colors               []int
}

// New constructs a Strategy instance for id. Unknown ids fall through to
// SmartDynamic here; the logged §7 "Unknown strategy" downgrade happens one
// layer up, in internal/generator, which is the only place with a logger.
func New(id ID, g *grid.Grid) Strategy {
	switch id {
	case EdgeHugger:
		return newEdgeHugger(g)
	case MaxClump:
		return newMaxClump(g)
	case SpiralFill:
		return newSpiralFill(g)
	case Symmetrical:
		return newSymmetric(g)
	case RandomAdaptive:
		return newRandomAdaptive(g)
	default:
		return newSmartDynamic(g)
	}
}

// Colorer hands out the next color id from a palette round-robin, shared
// by every strategy's placement loop.
type Colorer struct {
	colors []int
	next   int
}

// NewColorer builds a Colorer; an empty palette falls back to color 0.
func NewColorer(colors []int) *Colorer {
	if len(colors) == 0 {
		colors = []int{0}
	}
	return &Colorer{colors: colors}
}

// Next returns the next color id in round-robin order.
func (c *Colorer) Next() int {
	v := c.colors[c.next%len(c.colors)]
	c.next++
	return v
}
