// Package pyramid generates solvable card-elimination deals: a 28-card
// triangular layout and a 24-card pile. Cards pair away when their ranks
// sum to thirteen; kings leave alone. Solvability is decided by a bitmask
// memoized state-space search, and the deal generator reshuffles until it
// finds a deal the search can clear.
package pyramid

import (
	"github.com/vovakirdan/puzzle-forge/internal/config"
	"github.com/vovakirdan/puzzle-forge/internal/core"
	"github.com/vovakirdan/puzzle-forge/internal/puzzle"
)

const (
	// Rows of the triangular layout; row r holds r+1 cards.
	Rows = 7
	// PyramidCards is the triangular number for Rows.
	PyramidCards = 28
	// StockCards is the rest of a 52-card deck.
	StockCards = 24
	// KingRank removes alone; any two ranks summing to PairSum pair away.
	KingRank = 13
	PairSum  = 13
)

// Deal is one shuffled layout. Pyramid cards are indexed row by row from
// the apex: row r starts at r*(r+1)/2.
type Deal struct {
	Pyramid [PyramidCards]int
	Stock   [StockCards]int
}

// rowOf returns the pyramid row containing index idx.
func rowOf(idx int) int {
	r := 0
	for rowStart(r+1) <= idx {
		r++
	}
	return r
}

// rowStart returns the first index of pyramid row r.
func rowStart(r int) int {
	return r * (r + 1) / 2
}

// children returns the two covering indices below idx, or ok=false on the
// bottom row.
func children(idx int) (left, right int, ok bool) {
	r := rowOf(idx)
	if r == Rows-1 {
		return 0, 0, false
	}
	pos := idx - rowStart(r)
	left = rowStart(r+1) + pos
	return left, left + 1, true
}

// NewDeal shuffles a standard 52-card deck (ranks only; suits do not
// matter for elimination) and deals 28 cards to the pyramid and 24 to the
// stock.
func NewDeal(rng *core.SeededRand) Deal {
	deck := make([]int, 52)
	for i := range deck {
		deck[i] = i%KingRank + 1
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	var d Deal
	copy(d.Pyramid[:], deck[:PyramidCards])
	copy(d.Stock[:], deck[PyramidCards:])
	return d
}

func init() {
	puzzle.Register("pyramid", func() puzzle.Generator { return &Generator{} })
}

// Generator builds solvable pyramid deals.
type Generator struct{}

func (*Generator) ID() string    { return "pyramid" }
func (*Generator) Title() string { return "Pyramid" }

// Generate reshuffles until the search proves a deal clearable, within the
// configured attempt budget. When the budget runs out the last deal is
// returned anyway with Meta.Unique unset: an occasionally unwinnable deal
// beats returning nothing.
func (g *Generator) Generate(cfg config.Config, opts puzzle.Options) (*puzzle.Instance, error) {
	rng := core.NewRand(opts.Seed)

	attempts := cfg.Pyramid.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var deal Deal
	solvable := false
	for attempt := 0; attempt < attempts && !solvable; attempt++ {
		deal = NewDeal(rng)
		solvable = Solvable(deal, cfg.Pyramid.MaxNodes)
	}

	grid := dealGrid(deal)
	return &puzzle.Instance{
		Puzzle:   grid,
		Solution: grid.Clone(),
		Meta: puzzle.Meta{
			Game:       g.ID(),
			Difficulty: opts.Difficulty,
			Size:       Rows,
			Seed:       opts.Seed,
			Unique:     solvable,
		},
	}, nil
}

// dealGrid encodes a deal as a grid: rows 0..6 hold the pyramid rows
// left-aligned, row 7 holds the stock. Cells outside the layout are 0.
// The whole deal is visible to the player, so puzzle and solution match.
func dealGrid(d Deal) *core.Grid[int] {
	g := core.NewGrid(Rows+1, StockCards, 0)
	for idx, rank := range d.Pyramid {
		r := rowOf(idx)
		g.Cells[r][idx-rowStart(r)] = rank
	}
	for i, rank := range d.Stock {
		g.Cells[Rows][i] = rank
	}
	return g
}
