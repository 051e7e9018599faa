package domain

// Grid is a 9x9 value matrix; 0 means empty.
type Grid [9][9]uint8

// Filled reports the number of nonzero cells.
func (g *Grid) Filled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Clamp forces the coordinate into the 9x9 range.
func (c CellCoord) Clamp() CellCoord {
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row > 8 {
		c.Row = 8
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if c.Col > 8 {
		c.Col = 8
	}
	return c
}

// Puzzle is a carved puzzle with its solution and generation metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Givens     Grid       `json:"givens"`
	Solution   Grid       `json:"solution"`
	Removed    int        `json:"removed"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Hint describes a suggested placement for the UI.
type Hint struct {
	Cell    CellCoord `json:"cell"`
	Value   uint8     `json:"value"`
	Message string    `json:"message,omitempty"`
}

// SaveRecord is the persisted form of a game session. Puzzle, Solution and
// User are pointers so a missing grid is distinguishable from an empty one;
// everything else degrades to a default on load. The undo log is never part
// of the record.
type SaveRecord struct {
	Puzzle     *Grid          `json:"puzzle"`
	Solution   *Grid          `json:"solution"`
	User       *Grid          `json:"user"`
	Notes      *[9][9]NoteSet `json:"notes,omitempty"`
	WrongMarks *[9][9]bool    `json:"wrongMarks,omitempty"`
	Selection  CellCoord      `json:"selection"`
	Difficulty string         `json:"difficulty,omitempty"`
	Revealed   bool           `json:"revealed,omitempty"`
}

// SaveMeta is a lightweight save-slot listing entry.
type SaveMeta struct {
	ID         string `json:"id"`
	Difficulty string `json:"difficulty,omitempty"`
}
