// Package mirrors generates mirror-visibility puzzles: a grid of diagonal
// mirrors and hidden occupants, with border clues counting how many
// occupants each sight line sees. Ghosts show up only in mirrors (after a
// reflection), vampires only in direct sight (before any reflection),
// zombies always. The player reconstructs the occupants from the clues.
package mirrors

import "github.com/vovakirdan/puzzle-forge/internal/core"

// Cell codes. Zero is the shared blank marker, so all real content starts
// at 1.
const (
	Empty           = 1
	MirrorSlash     = 2 // /
	MirrorBackslash = 3 // \
	Ghost           = 4 // counted only after >= 1 reflection
	Vampire         = 5 // counted only before any reflection
	Zombie          = 6 // always counted
)

// Dir is a cardinal ray direction.
type Dir uint8

const (
	Up Dir = iota
	Down
	Left
	Right
)

// Delta returns the row/col step for the direction.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Fixed 4-entry reflection tables, one per mirror orientation.
var (
	reflectSlash     = [4]Dir{Up: Right, Down: Left, Left: Down, Right: Up}
	reflectBackslash = [4]Dir{Up: Left, Down: Right, Left: Up, Right: Down}
)

// Ray is a sight line entering the grid: the first in-bounds cell and the
// travel direction.
type Ray struct {
	Start core.Coord
	Dir   Dir
}

// rayState is the cycle-guard key; mirror loops revisit a position with
// the same heading.
type rayState struct {
	at  core.Coord
	dir Dir
}

// CountVisible traces the ray through the grid and returns how many
// occupants it sees. Mirrors deflect per the reflection tables; the trace
// ends on leaving the grid or on revisiting an identical
// (position, direction) state.
func CountVisible(g *core.Grid[int], ray Ray) int {
	count := 0
	reflections := 0
	visited := make(map[rayState]bool)

	at, dir := ray.Start, ray.Dir
	for g.InBounds(at) {
		st := rayState{at: at, dir: dir}
		if visited[st] {
			break
		}
		visited[st] = true

		switch g.At(at) {
		case MirrorSlash:
			dir = reflectSlash[dir]
			reflections++
		case MirrorBackslash:
			dir = reflectBackslash[dir]
			reflections++
		case Ghost:
			if reflections >= 1 {
				count++
			}
		case Vampire:
			if reflections == 0 {
				count++
			}
		case Zombie:
			count++
		}

		dr, dc := dir.Delta()
		at = at.Add(dr, dc)
	}
	return count
}

// Clues are the border counts, one per entry ray: Top/Bottom indexed by
// column, Left/Right indexed by row.
type Clues struct {
	Top    []int
	Bottom []int
	Left   []int
	Right  []int
}

// AllClues casts every border ray and collects the counts.
func AllClues(g *core.Grid[int]) Clues {
	clues := Clues{
		Top:    make([]int, g.Cols),
		Bottom: make([]int, g.Cols),
		Left:   make([]int, g.Rows),
		Right:  make([]int, g.Rows),
	}
	for c := 0; c < g.Cols; c++ {
		clues.Top[c] = CountVisible(g, Ray{Start: core.C(0, c), Dir: Down})
		clues.Bottom[c] = CountVisible(g, Ray{Start: core.C(g.Rows-1, c), Dir: Up})
	}
	for r := 0; r < g.Rows; r++ {
		clues.Left[r] = CountVisible(g, Ray{Start: core.C(r, 0), Dir: Right})
		clues.Right[r] = CountVisible(g, Ray{Start: core.C(r, g.Cols-1), Dir: Left})
	}
	return clues
}

// Verify recounts a candidate grid against the expected clues.
func Verify(g *core.Grid[int], want Clues) bool {
	got := AllClues(g)
	return intsEqual(got.Top, want.Top) &&
		intsEqual(got.Bottom, want.Bottom) &&
		intsEqual(got.Left, want.Left) &&
		intsEqual(got.Right, want.Right)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
