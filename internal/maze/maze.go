// Package maze carves perfect mazes with the recursive-backtracking
// algorithm over the odd-coordinate lattice. The result is a spanning
// tree: exactly one simple path exists between any two passage cells.
package maze

import "github.com/vovakirdan/puzzle-forge/internal/core"

// Cell is a single maze cell.
type Cell uint8

const (
	Wall Cell = iota
	Passage
)

// Maze is a carved grid plus its conventional entry and exit cells.
type Maze struct {
	Grid  *core.Grid[Cell]
	Start core.Coord
	End   core.Coord
}

// jump directions: two-step moves between odd-lattice cells.
var jumps = [4]core.Coord{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}

// Generate carves a maze of the given dimensions. Even dimensions are
// rounded down to the nearest odd value so the outer wall stays intact.
// Carving starts at (1,1); at each step the four two-step jump directions
// are shuffled with the seeded RNG and every in-bounds unvisited candidate
// is carved through and descended into. An explicit stack replaces host
// recursion so deep mazes cannot overflow the call stack.
// Start is (1,1) and End is (height-2, width-2) by convention.
func Generate(width, height int, rng *core.SeededRand) Maze {
	if width%2 == 0 {
		width--
	}
	if height%2 == 0 {
		height--
	}
	if width < 3 {
		width = 3
	}
	if height < 3 {
		height = 3
	}

	g := core.NewGrid(height, width, Wall)
	start := core.C(1, 1)
	g.Set(start, Passage)

	type frame struct {
		at   core.Coord
		dirs [4]core.Coord
		next int
	}
	push := func(stack []frame, at core.Coord) []frame {
		f := frame{at: at, dirs: jumps}
		rng.Shuffle(4, func(i, j int) { f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i] })
		return append(stack, f)
	}

	stack := push(nil, start)
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next >= len(f.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := f.dirs[f.next]
		f.next++

		to := f.at.Add(d.Row, d.Col)
		if !g.InBounds(to) || g.At(to) != Wall {
			continue
		}
		// Carve the wall between the current cell and the jump target.
		g.Set(f.at.Add(d.Row/2, d.Col/2), Passage)
		g.Set(to, Passage)
		stack = push(stack, to)
	}

	return Maze{
		Grid:  g,
		Start: start,
		End:   core.C(height-2, width-2),
	}
}
