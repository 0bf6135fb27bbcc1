package solver

import (
	"context"
	"testing"

	"github.com/vovakirdan/puzzle-forge/internal/core"
)

// rowColValid enforces row/column uniqueness, the Latin-square constraint.
func rowColValid(g *core.Grid[int], cell core.Coord, v int) bool {
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

// fixedCandidates returns the same candidate list for every cell.
func fixedCandidates(vals ...int) Candidates {
	return func(*core.Grid[int], core.Coord) []int {
		return vals
	}
}

func mustGrid(t *testing.T, rows [][]int) *core.Grid[int] {
	t.Helper()
	g, err := core.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return g
}

func TestSolveSingleCandidate(t *testing.T) {
	// [[0,2],[2,0]] with candidate set {1} and row/column uniqueness has
	// exactly one completion: [[1,2],[2,1]].
	g := mustGrid(t, [][]int{
		{0, 2},
		{2, 0},
	})

	solutions := Solve(g, EmptyCells(g), fixedCandidates(1), rowColValid, 10)
	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, expected 1", len(solutions))
	}
	want := mustGrid(t, [][]int{
		{1, 2},
		{2, 1},
	})
	if !core.Equal(solutions[0], want) {
		t.Errorf("solution = %v, expected %v", solutions[0].Cells, want.Cells)
	}
	// The input grid must not be touched.
	if g.Cells[0][0] != 0 || g.Cells[1][1] != 0 {
		t.Error("Solve mutated its input grid")
	}
}

func TestSolveUnsolvable(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0},
		{0, 1},
	})
	// Candidate 1 conflicts everywhere; no solution, no panic, no error.
	solutions := Solve(g, EmptyCells(g), fixedCandidates(1), rowColValid, 5)
	if len(solutions) != 0 {
		t.Errorf("got %d solutions for unsolvable grid, expected 0", len(solutions))
	}
}

func TestSolveMaxSolutionsEarlyExit(t *testing.T) {
	// Empty 3x3 Latin grid has 12 completions; cap at 2.
	g := core.NewGrid(3, 3, Blank)
	solutions := Solve(g, EmptyCells(g), fixedCandidates(1, 2, 3), rowColValid, 2)
	if len(solutions) != 2 {
		t.Errorf("got %d solutions, expected maxSolutions = 2", len(solutions))
	}

	if Solve(g, EmptyCells(g), fixedCandidates(1, 2, 3), rowColValid, 0) != nil {
		t.Error("maxSolutions <= 0 should yield nil")
	}
}

func TestSolveContextCountsNodes(t *testing.T) {
	// Two forced placements plus the solution leaf: exactly three states.
	g := mustGrid(t, [][]int{
		{0, 2},
		{2, 0},
	})
	_, stats := SolveContext(context.Background(), g, EmptyCells(g), fixedCandidates(1), rowColValid, 10)
	if stats.Nodes != 3 {
		t.Errorf("stats.Nodes = %d, expected 3", stats.Nodes)
	}

	// A wide-open grid has to explore strictly more states than a forced one.
	open := core.NewGrid(3, 3, Blank)
	_, openStats := SolveContext(context.Background(), open, EmptyCells(open), fixedCandidates(1, 2, 3), rowColValid, 100)
	if openStats.Nodes <= stats.Nodes {
		t.Errorf("open grid explored %d nodes, expected more than %d", openStats.Nodes, stats.Nodes)
	}
}

func TestSolveContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := core.NewGrid(3, 3, Blank)
	solutions, stats := SolveContext(ctx, g, EmptyCells(g), fixedCandidates(1, 2, 3), rowColValid, 100)
	if len(solutions) != 0 {
		t.Errorf("cancelled search returned %d solutions, expected 0", len(solutions))
	}
	if stats.Nodes != 0 {
		t.Errorf("cancelled search expanded %d nodes, expected 0", stats.Nodes)
	}
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want bool
	}{
		{
			name: "forced completion",
			rows: [][]int{
				{1, 2, 0},
				{0, 3, 1},
				{3, 0, 2},
			},
			want: true,
		},
		{
			name: "wide open",
			rows: [][]int{
				{0, 0, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
			want: false,
		},
		{
			name: "dead cell",
			rows: [][]int{
				{1, 2, 0},
				{0, 0, 3},
				{0, 0, 0},
			},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows)
			got := Unique(g, EmptyCells(g), fixedCandidates(1, 2, 3), rowColValid)
			if got != tc.want {
				t.Errorf("Unique() = %v, expected %v", got, tc.want)
			}
		})
	}
}

// bruteForceCount enumerates every assignment of 1..n to the empty cells
// and counts full valid Latin completions. Only viable for tiny grids.
func bruteForceCount(g *core.Grid[int]) int {
	empties := EmptyCells(g)
	work := g.Clone()
	n := g.Rows

	validFull := func() bool {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				v := work.Cells[r][c]
				for i := 0; i < n; i++ {
					if i != c && work.Cells[r][i] == v {
						return false
					}
					if i != r && work.Cells[i][c] == v {
						return false
					}
				}
			}
		}
		return true
	}

	count := 0
	var enumerate func(idx int)
	enumerate = func(idx int) {
		if idx == len(empties) {
			if validFull() {
				count++
			}
			return
		}
		for v := 1; v <= n; v++ {
			work.Set(empties[idx], v)
			enumerate(idx + 1)
		}
		work.Set(empties[idx], Blank)
	}
	enumerate(0)
	return count
}

func TestUniqueAgainstBruteForce(t *testing.T) {
	rng := core.NewRand(77)

	for trial := 0; trial < 30; trial++ {
		// Random 3x3 puzzle with 4-6 givens taken from a fixed Latin square.
		base := mustGrid(t, [][]int{
			{1, 2, 3},
			{2, 3, 1},
			{3, 1, 2},
		})
		g := base.Clone()
		blanks := 3 + rng.Intn(3)
		for _, p := range rng.Perm(9)[:blanks] {
			g.Set(core.C(p/3, p%3), Blank)
		}

		want := bruteForceCount(g) == 1
		got := Unique(g, EmptyCells(g), fixedCandidates(1, 2, 3), rowColValid)
		if got != want {
			t.Fatalf("trial %d: Unique() = %v, brute force count says %v\ngrid: %v",
				trial, got, want, g.Cells)
		}
	}
}
