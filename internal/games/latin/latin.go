// Package latin generates n×n Latin-square puzzles: fill the grid so that
// every row and column contains 1..n exactly once. The solved grid comes
// from the Latin-square builder; carving then hides cells and the generic
// solver certifies uniqueness of what remains.
package latin

import (
	"github.com/vovakirdan/puzzle-forge/internal/config"
	"github.com/vovakirdan/puzzle-forge/internal/core"
	"github.com/vovakirdan/puzzle-forge/internal/latinsquare"
	"github.com/vovakirdan/puzzle-forge/internal/puzzle"
	"github.com/vovakirdan/puzzle-forge/internal/solver"
)

// maxAttempts bounds the carve-and-verify loop. When no attempt yields a
// provably unique puzzle, the last carve is accepted anyway: for the small
// boards this game uses, availability beats strict uniqueness.
const maxAttempts = 8

func init() {
	puzzle.Register("latin", func() puzzle.Generator { return &Generator{} })
}

// Generator builds Latin-square puzzle instances.
type Generator struct{}

func (*Generator) ID() string    { return "latin" }
func (*Generator) Title() string { return "Latin Square" }

func (g *Generator) Generate(cfg config.Config, opts puzzle.Options) (*puzzle.Instance, error) {
	n := opts.Size
	if n <= 0 {
		n = cfg.Latin.Size.For(opts.Difficulty)
	}
	rng := core.NewRand(opts.Seed)

	solution := latinsquare.Generate(n, rng)
	clues := int(float64(n*n)*cfg.Latin.ClueRatio.For(opts.Difficulty) + 0.5)
	if clues < 1 {
		clues = 1
	}

	candidates := func(*core.Grid[int], core.Coord) []int {
		vals := make([]int, n)
		for i := range vals {
			vals[i] = i + 1
		}
		return vals
	}

	var carved *core.Grid[int]
	unique := false
	for attempt := 0; attempt < maxAttempts && !unique; attempt++ {
		carved = solution.Clone()
		for _, p := range rng.Perm(n * n)[:n*n-clues] {
			carved.Set(core.C(p/n, p%n), puzzle.Blank)
		}
		unique = solver.Unique(carved, solver.EmptyCells(carved), candidates, validPlacement)
	}

	return &puzzle.Instance{
		Puzzle:   carved,
		Solution: solution,
		Meta: puzzle.Meta{
			Game:       g.ID(),
			Difficulty: opts.Difficulty,
			Size:       n,
			Seed:       opts.Seed,
			Unique:     unique,
		},
	}, nil
}

// validPlacement enforces row and column uniqueness.
func validPlacement(g *core.Grid[int], cell core.Coord, v int) bool {
	for i := 0; i < g.Cols; i++ {
		if g.Cells[cell.Row][i] == v {
			return false
		}
	}
	for i := 0; i < g.Rows; i++ {
		if g.Cells[i][cell.Col] == v {
			return false
		}
	}
	return true
}
