// Package puzzle defines the shared puzzle instance model and the registry
// through which the platform discovers game generators.
package puzzle

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/puzzle-forge/internal/config"
	"github.com/vovakirdan/puzzle-forge/internal/core"
)

// Blank is the cell value representing hidden/unfilled cells in the
// player-facing grid.
const Blank = 0

// ErrShapeMismatch reports puzzle/solution grids whose shapes or non-blank
// cells disagree.
var ErrShapeMismatch = errors.New("puzzle: puzzle and solution shapes disagree")

// Meta describes how an instance was produced.
type Meta struct {
	Game       string
	Difficulty config.Difficulty
	Size       int
	Seed       int64
	// Unique is false when the generator fell back to a puzzle it could
	// not prove unique within its attempt budget.
	Unique bool
}

// Instance is one generated puzzle: the player-facing grid with blanks,
// the fully determined solution, and metadata. Instances are created on
// demand from a seed and consumed read-only afterwards; player progress is
// tracked elsewhere on a separate grid.
type Instance struct {
	Puzzle   *core.Grid[int]
	Solution *core.Grid[int]
	Meta     Meta
}

// Validate checks the structural invariants: identical dimensions, and
// every non-blank puzzle cell equal to the corresponding solution cell.
func (in *Instance) Validate() error {
	p, s := in.Puzzle, in.Solution
	if p == nil || s == nil {
		return fmt.Errorf("%w: missing grid", ErrShapeMismatch)
	}
	if p.Rows != s.Rows || p.Cols != s.Cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, p.Rows, p.Cols, s.Rows, s.Cols)
	}
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			if v := p.Cells[r][c]; v != Blank && v != s.Cells[r][c] {
				return fmt.Errorf("%w: cell (%d,%d) puzzle=%d solution=%d",
					ErrShapeMismatch, r, c, v, s.Cells[r][c])
			}
		}
	}
	return nil
}
