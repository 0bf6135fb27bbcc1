package core

import "errors"

// ErrRaggedGrid is returned when caller-supplied rows do not all have the
// same length.
var ErrRaggedGrid = errors.New("core: ragged grid rows")

// Grid is a rows×cols container of cell values. Rows are independently
// allocated; no two rows alias the same backing array.
type Grid[T any] struct {
	Rows  int
	Cols  int
	Cells [][]T
}

// NewGrid creates a grid with every cell set to initial.
func NewGrid[T any](rows, cols int, initial T) *Grid[T] {
	cells := make([][]T, rows)
	for r := range cells {
		cells[r] = make([]T, cols)
		for c := range cells[r] {
			cells[r][c] = initial
		}
	}
	return &Grid[T]{Rows: rows, Cols: cols, Cells: cells}
}

// FromRows builds a grid from caller-supplied rows, copying them into
// freshly allocated storage. Returns ErrRaggedGrid if the rows differ in
// length, so shape violations surface eagerly instead of corrupting later
// indexing.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	g := &Grid[T]{Rows: len(rows)}
	if g.Rows > 0 {
		g.Cols = len(rows[0])
	}
	g.Cells = make([][]T, g.Rows)
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, ErrRaggedGrid
		}
		g.Cells[r] = make([]T, g.Cols)
		copy(g.Cells[r], row)
	}
	return g, nil
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns the cell value at c. Callers must bounds-check first.
func (g *Grid[T]) At(c Coord) T {
	return g.Cells[c.Row][c.Col]
}

// Set writes the cell value at c. Callers must bounds-check first.
func (g *Grid[T]) Set(c Coord, v T) {
	g.Cells[c.Row][c.Col] = v
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([][]T, g.Rows)
	for r := range cells {
		cells[r] = make([]T, g.Cols)
		copy(cells[r], g.Cells[r])
	}
	return &Grid[T]{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// orthogonal and diagonal step offsets, in fixed order so that every
// traversal built on Neighbors expands deterministically.
var (
	orthoSteps = [4]Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	diagSteps  = [4]Coord{{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1}}
)

// Neighbors returns the bounds-checked adjacent coordinates of c: the 4
// orthogonal neighbors, plus the 4 diagonal ones when diagonal is true.
// The order is fixed (up, down, left, right, then diagonals).
func (g *Grid[T]) Neighbors(c Coord, diagonal bool) []Coord {
	out := make([]Coord, 0, 8)
	for _, d := range orthoSteps {
		n := c.Add(d.Row, d.Col)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	if diagonal {
		for _, d := range diagSteps {
			n := c.Add(d.Row, d.Col)
			if g.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Equal reports whether two grids have the same dimensions and contents.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < a.Cols; c++ {
			if a.Cells[r][c] != b.Cells[r][c] {
				return false
			}
		}
	}
	return true
}
