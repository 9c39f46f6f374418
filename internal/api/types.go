// Package api implements the four external entry points of §6: Generate,
// Validate, Difficulty, and FillGaps. It owns request/response JSON
// shapes and the conversion between them and the internal grid/snake/
// strategy types; callers (cmd/server, cmd/snakeoutgen) never touch
// internal/grid or internal/snake directly.
package api

// CellPos is one {row,col} pair as it appears in a request.
type CellPos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ObstacleReq is one obstacle entity as supplied by a caller.
type ObstacleReq struct {
	Type      string    `json:"type"` // wall | wall_break | hole | tunnel | iced_snake | key_snake
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Cells     []CellPos `json:"cells,omitempty"`
	Color     string    `json:"color,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Count     int       `json:"count,omitempty"`
}

// SnakeReq is one existing snake as supplied to Validate/Difficulty/FillGaps.
type SnakeReq struct {
	Path    []CellPos `json:"path"`
	ColorID int       `json:"colorID"`
}

// GenerateRequest is the Generate entry point's input (§6).
type GenerateRequest struct {
	ArrowCount int `json:"arrow_count"`

	Rows int `json:"rows"`
	Cols int `json:"cols"`
	// PlayableMask is R rows of C booleans; nil means all-true.
	PlayableMask [][]bool `json:"playable_mask,omitempty"`

	MinLength int `json:"min_length"`
	MaxLength int `json:"max_length"`
	MinBends  int `json:"min_bends"`
	MaxBends  int `json:"max_bends"`

	Obstacles []ObstacleReq `json:"obstacles,omitempty"`
	Colors    []string      `json:"colors,omitempty"`

	Strategy     string `json:"strategy"`
	SymmetryType string `json:"symmetry_type,omitempty"`
	BonusFill    bool   `json:"bonus_fill"`

	NodeBudget int   `json:"node_budget,omitempty"`
	Seed       int64 `json:"seed"`
}

// GenerateResponse is the Generate entry point's output (§6).
type GenerateResponse struct {
	LevelJSON       []Item   `json:"level_json"`
	Logs            []string `json:"logs"`
	IsSolvable      bool     `json:"is_solvable"`
	StuckCount      int      `json:"stuck_count"`
	CoveragePercent int      `json:"coverage_percent"`
}

// Item mirrors internal/encode.Item with JSON tags exposed at the API
// boundary; kept as a distinct type so encode's internal representation
// can evolve without changing the wire schema.
type Item struct {
	ItemID          string      `json:"itemID"`
	ItemType        string      `json:"itemType"`
	Position        []Position  `json:"position"`
	ColorID         *int        `json:"colorID"`
	ItemValueConfig interface{} `json:"itemValueConfig"`
}

// Position is one {x,y} pair in encoder output.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ValidateRequest is the Validate entry point's input (§6).
type ValidateRequest struct {
	Rows      int           `json:"R"`
	Cols      int           `json:"C"`
	Snakes    []SnakeReq    `json:"snakes"`
	Obstacles []ObstacleReq `json:"obstacles,omitempty"`
}

// ValidateResponse is the Validate entry point's output (§6).
type ValidateResponse struct {
	IsSolvable    bool     `json:"is_solvable"`
	RemainedCount int      `json:"remained_count"`
	TotalSnakes   int      `json:"total_snakes"`
	Steps         int      `json:"steps"`
	Logs          []string `json:"logs"`
}

// DifficultyRequest is the Difficulty entry point's input (§6): same
// shape as Validate.
type DifficultyRequest = ValidateRequest

// DifficultyResponse is the Difficulty entry point's output (§6).
type DifficultyResponse struct {
	DifficultyScore float64            `json:"difficulty_score"`
	Breakdown       DifficultyBreakdown `json:"breakdown"`
	Details         DifficultyDetails   `json:"details"`
}

// DifficultyBreakdown carries the three named sub-scores.
type DifficultyBreakdown struct {
	S float64 `json:"S"`
	F float64 `json:"F"`
	O float64 `json:"O"`
}

// DifficultyDetails carries the scorer's diagnostic accompaniment.
type DifficultyDetails struct {
	GridBounds    [2]int `json:"grid_bounds"`
	TotalSnakes   int    `json:"total_snakes"`
	SolveDepth    int    `json:"solve_depth"`
	OccupiedCells int    `json:"occupied_cells"`
}

// FillGapsRequest is the Fill-gaps entry point's input (§6).
type FillGapsRequest struct {
	Rows         int           `json:"R"`
	Cols         int           `json:"C"`
	Snakes       []SnakeReq    `json:"snakes"`
	Obstacles    []ObstacleReq `json:"obstacles,omitempty"`
	PlayableMask [][]bool      `json:"playable_mask,omitempty"`
	Colors       []string      `json:"colors,omitempty"`
	MinLength    int           `json:"min_length"`
	MaxLength    int           `json:"max_length"`
	MinBends     int           `json:"min_bends"`
	MaxBends     int           `json:"max_bends"`
	NodeBudget   int           `json:"node_budget,omitempty"`
	Seed         int64         `json:"seed"`
}

// FillGapsResponse is the Fill-gaps entry point's output: the same shape
// as GenerateResponse plus a count of newly added snakes.
type FillGapsResponse struct {
	LevelJSON   []Item   `json:"level_json"`
	Logs        []string `json:"logs"`
	IsSolvable  bool     `json:"is_solvable"`
	StuckCount  int      `json:"stuck_count"`
	SnakesAdded int      `json:"snakes_added"`
}
