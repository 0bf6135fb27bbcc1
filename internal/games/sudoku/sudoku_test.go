package sudoku

import (
	"testing"

	"github.com/vovakirdan/puzzle-forge/internal/config"
	"github.com/vovakirdan/puzzle-forge/internal/core"
	"github.com/vovakirdan/puzzle-forge/internal/puzzle"
	"github.com/vovakirdan/puzzle-forge/internal/solver"
)

func generate(t *testing.T, seed int64, d config.Difficulty) *puzzle.Instance {
	t.Helper()
	g := &Generator{}
	in, err := g.Generate(config.Default(), puzzle.Options{Seed: seed, Difficulty: d})
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	return in
}

func assertSolved(t *testing.T, g *core.Grid[int]) {
	t.Helper()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			v := g.Cells[r][c]
			if v < 1 || v > 9 {
				t.Fatalf("cell (%d,%d) = %d, not in 1..9", r, c, v)
			}
			g.Cells[r][c] = puzzle.Blank
			if !validPlacement(g, core.C(r, c), v) {
				g.Cells[r][c] = v
				t.Fatalf("cell (%d,%d) = %d violates a constraint", r, c, v)
			}
			g.Cells[r][c] = v
		}
	}
}

func TestGenerateSolutionValid(t *testing.T) {
	in := generate(t, 42, config.Normal)
	assertSolved(t, in.Solution)
	if err := in.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate(t, 1234, config.Hard)
	b := generate(t, 1234, config.Hard)
	if !core.Equal(a.Puzzle, b.Puzzle) || !core.Equal(a.Solution, b.Solution) {
		t.Error("same seed produced different instances")
	}

	c := generate(t, 1235, config.Hard)
	if core.Equal(a.Puzzle, c.Puzzle) {
		t.Error("adjacent seeds produced identical puzzles")
	}
}

func TestGenerateUniqueSolution(t *testing.T) {
	in := generate(t, 7, config.Easy)
	if !in.Meta.Unique {
		t.Fatal("sudoku instances must be certified unique")
	}
	if !solver.Unique(in.Puzzle, solver.EmptyCells(in.Puzzle), orderedCandidates, validPlacement) {
		t.Error("generated puzzle admits more than one solution")
	}
}

func TestGenerateGivensFollowDifficulty(t *testing.T) {
	cfg := config.Default()

	countGivens := func(in *puzzle.Instance) int {
		n := 0
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				if in.Puzzle.Cells[r][c] != puzzle.Blank {
					n++
				}
			}
		}
		return n
	}

	easy := countGivens(generate(t, 5, config.Easy))
	hard := countGivens(generate(t, 5, config.Hard))

	// Carving stops at the target; stuck carves can only leave extras.
	if easy < cfg.Sudoku.Givens.Easy {
		t.Errorf("easy givens = %d, below target %d", easy, cfg.Sudoku.Givens.Easy)
	}
	if hard < cfg.Sudoku.Givens.Hard {
		t.Errorf("hard givens = %d, below target %d", hard, cfg.Sudoku.Givens.Hard)
	}
	if easy <= hard {
		t.Errorf("easy (%d givens) should keep more clues than hard (%d)", easy, hard)
	}
}
