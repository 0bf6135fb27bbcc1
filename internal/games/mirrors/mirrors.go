package mirrors

import (
	"github.com/vovakirdan/puzzle-forge/internal/config"
	"github.com/vovakirdan/puzzle-forge/internal/core"
	"github.com/vovakirdan/puzzle-forge/internal/puzzle"
)

func init() {
	puzzle.Register("mirrors", func() puzzle.Generator { return &Generator{} })
}

// Generator builds mirror-visibility boards. The published puzzle keeps
// the mirrors and blanks the occupants; the clues are recomputed from the
// solution with AllClues whenever a consumer needs them.
type Generator struct{}

func (*Generator) ID() string    { return "mirrors" }
func (*Generator) Title() string { return "Mirrors" }

// Generate fills an n-by-n board with mirrors at the configured density
// and random occupants everywhere else, then derives the puzzle by hiding
// the occupants. Clue-based uniqueness is not certified, so Meta.Unique
// stays false.
func (g *Generator) Generate(cfg config.Config, opts puzzle.Options) (*puzzle.Instance, error) {
	rng := core.NewRand(opts.Seed)

	n := opts.Size
	if n <= 0 {
		n = cfg.Mirrors.Size.For(opts.Difficulty)
	}
	density := cfg.Mirrors.MirrorDensity.For(opts.Difficulty)

	solution := core.NewGrid(n, n, Empty)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Float64() < density {
				if rng.Intn(2) == 0 {
					solution.Cells[r][c] = MirrorSlash
				} else {
					solution.Cells[r][c] = MirrorBackslash
				}
			} else {
				solution.Cells[r][c] = Ghost + rng.Intn(3)
			}
		}
	}

	board := solution.Clone()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch board.Cells[r][c] {
			case Ghost, Vampire, Zombie:
				board.Cells[r][c] = puzzle.Blank
			}
		}
	}

	return &puzzle.Instance{
		Puzzle:   board,
		Solution: solution,
		Meta: puzzle.Meta{
			Game:       g.ID(),
			Difficulty: opts.Difficulty,
			Size:       n,
			Seed:       opts.Seed,
			Unique:     false,
		},
	}, nil
}
