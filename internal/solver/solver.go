// Package solver implements a generic backtracking engine for
// constraint-satisfaction puzzles over integer grids. Each game supplies
// its own candidate enumeration and validity predicate; the engine is used
// both to solve puzzles and to certify that a generated puzzle has exactly
// one solution.
package solver

import (
	"context"

	"github.com/vovakirdan/puzzle-forge/internal/core"
)

// Blank is the cell value treated as unassigned.
const Blank = 0

// Candidates returns the values to try for an empty cell, in the order the
// search should try them. Shuffled candidate orders make the engine double
// as a randomized grid filler.
type Candidates func(g *core.Grid[int], cell core.Coord) []int

// Valid reports whether placing v at cell keeps the partial assignment
// consistent. It is called before the value is written.
type Valid func(g *core.Grid[int], cell core.Coord, v int) bool

// Stats reports the work one search performed. Nodes counts visited search
// states, including solution leaves.
type Stats struct {
	Nodes int
}

// EmptyCells returns all blank cells of g in row-major order, the default
// worklist for Solve.
func EmptyCells(g *core.Grid[int]) []core.Coord {
	var out []core.Coord
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c] == Blank {
				out = append(out, core.C(r, c))
			}
		}
	}
	return out
}

// Solve runs SolveContext without cancellation and discards the stats.
func Solve(g *core.Grid[int], empties []core.Coord, candidates Candidates, valid Valid, maxSolutions int) []*core.Grid[int] {
	solutions, _ := SolveContext(context.Background(), g, empties, candidates, valid, maxSolutions)
	return solutions
}

// SolveContext runs a depth-first search over the caller-ordered list of
// empty cells, trying caller-ordered candidate values and pruning with
// valid. It collects at most maxSolutions solved grids and stops as soon
// as that many are found, or as soon as ctx is cancelled; on cancellation
// the solutions found so far are returned. The input grid is never
// mutated; an unsolvable input yields an empty slice, not an error.
// Termination is guaranteed because the cell index strictly advances on
// every recursive step.
func SolveContext(ctx context.Context, g *core.Grid[int], empties []core.Coord, candidates Candidates, valid Valid, maxSolutions int) ([]*core.Grid[int], Stats) {
	if maxSolutions <= 0 {
		return nil, Stats{}
	}
	s := &search{
		ctx:        ctx,
		work:       g.Clone(),
		empties:    empties,
		candidates: candidates,
		valid:      valid,
		max:        maxSolutions,
	}
	s.dfs(0)
	return s.solutions, Stats{Nodes: s.nodes}
}

// Unique reports whether the puzzle has exactly one solution. It searches
// for up to two solutions, the standard shortcut for proving uniqueness
// without full enumeration.
func Unique(g *core.Grid[int], empties []core.Coord, candidates Candidates, valid Valid) bool {
	return len(Solve(g, empties, candidates, valid, 2)) == 1
}

// search carries the mutable state of one Solve call explicitly, so the
// recursion stays referentially transparent and testable in isolation.
type search struct {
	ctx        context.Context
	work       *core.Grid[int]
	empties    []core.Coord
	candidates Candidates
	valid      Valid
	max        int
	nodes      int
	solutions  []*core.Grid[int]
}

// dfs returns true when the search should unwind: enough solutions have
// been collected or the context was cancelled.
func (s *search) dfs(idx int) bool {
	if s.ctx.Err() != nil {
		return true
	}
	s.nodes++
	if idx == len(s.empties) {
		s.solutions = append(s.solutions, s.work.Clone())
		return len(s.solutions) >= s.max
	}
	cell := s.empties[idx]
	for _, v := range s.candidates(s.work, cell) {
		if !s.valid(s.work, cell, v) {
			continue
		}
		s.work.Set(cell, v)
		if s.dfs(idx + 1) {
			return true
		}
		s.work.Set(cell, Blank)
	}
	return false
}
