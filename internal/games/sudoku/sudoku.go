// Package sudoku generates classic 9×9 sudoku puzzles with a certified
// unique solution. It is a direct instantiation of the generic
// backtracking engine: candidate shuffling turns the solver into a random
// grid filler, and the uniqueness check guards every carve step.
package sudoku

import (
	"fmt"

	"github.com/vovakirdan/puzzle-forge/internal/config"
	"github.com/vovakirdan/puzzle-forge/internal/core"
	"github.com/vovakirdan/puzzle-forge/internal/puzzle"
	"github.com/vovakirdan/puzzle-forge/internal/solver"
)

const (
	size = 9
	box  = 3
)

func init() {
	puzzle.Register("sudoku", func() puzzle.Generator { return &Generator{} })
}

// Generator builds sudoku instances.
type Generator struct{}

func (*Generator) ID() string    { return "sudoku" }
func (*Generator) Title() string { return "Sudoku" }

// Generate fills a full random solution, then removes clues in shuffled
// order, reverting any removal that would admit a second solution. The
// target number of givens comes from the difficulty table; if the carve
// order gets stuck above the target the puzzle is still valid, just more
// generous than asked.
func (g *Generator) Generate(cfg config.Config, opts puzzle.Options) (*puzzle.Instance, error) {
	rng := core.NewRand(opts.Seed)

	solution, err := fill(rng)
	if err != nil {
		return nil, err
	}

	work := solution.Clone()
	givens := size * size
	target := cfg.Sudoku.Givens.For(opts.Difficulty)

	for _, p := range rng.Perm(size * size) {
		if givens <= target {
			break
		}
		cell := core.C(p/size, p%size)
		old := work.At(cell)
		work.Set(cell, puzzle.Blank)
		if solver.Unique(work, solver.EmptyCells(work), orderedCandidates, validPlacement) {
			givens--
		} else {
			work.Set(cell, old)
		}
	}

	return &puzzle.Instance{
		Puzzle:   work,
		Solution: solution,
		Meta: puzzle.Meta{
			Game:       g.ID(),
			Difficulty: opts.Difficulty,
			Size:       size,
			Seed:       opts.Seed,
			Unique:     true,
		},
	}, nil
}

// fill solves the empty grid with per-cell shuffled candidates, producing
// a uniformly scrambled full solution.
func fill(rng *core.SeededRand) (*core.Grid[int], error) {
	empty := core.NewGrid(size, size, puzzle.Blank)
	shuffled := func(g *core.Grid[int], cell core.Coord) []int {
		vals := make([]int, size)
		for i := range vals {
			vals[i] = i + 1
		}
		rng.Shuffle(size, func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
		return vals
	}

	solutions := solver.Solve(empty, solver.EmptyCells(empty), shuffled, validPlacement, 1)
	if len(solutions) == 0 {
		return nil, fmt.Errorf("sudoku: failed to fill a %dx%d grid", size, size)
	}
	return solutions[0], nil
}

// orderedCandidates is the deterministic 1..9 candidate order used for
// uniqueness certification.
func orderedCandidates(*core.Grid[int], core.Coord) []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
}

// validPlacement enforces the row, column, and 3×3 box constraints.
func validPlacement(g *core.Grid[int], cell core.Coord, v int) bool {
	for i := 0; i < size; i++ {
		if g.Cells[cell.Row][i] == v || g.Cells[i][cell.Col] == v {
			return false
		}
	}
	br, bc := (cell.Row/box)*box, (cell.Col/box)*box
	for dr := 0; dr < box; dr++ {
		for dc := 0; dc < box; dc++ {
			if g.Cells[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
