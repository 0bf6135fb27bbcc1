package core

import "testing"

func mustGrid(t *testing.T, rows [][]int) *Grid[int] {
	t.Helper()
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return g
}

func sameValue(v, startValue int) bool { return v == startValue }

func TestConnectedRegion(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 1, 1},
	})

	region := ConnectedRegion(g, C(0, 0), sameValue, false)
	if len(region) != 5 {
		t.Errorf("region size = %d, expected 5", len(region))
	}
	for _, c := range region {
		if g.At(c) != 1 {
			t.Errorf("region contains non-matching cell %v", c)
		}
	}
}

func TestConnectedRegionDiagonal(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0},
		{0, 1},
	})

	if got := len(ConnectedRegion(g, C(0, 0), sameValue, false)); got != 1 {
		t.Errorf("orthogonal region size = %d, expected 1", got)
	}
	if got := len(ConnectedRegion(g, C(0, 0), sameValue, true)); got != 2 {
		t.Errorf("diagonal region size = %d, expected 2", got)
	}
}

func TestConnectedRegionOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2, 0)
	if got := ConnectedRegion(g, C(5, 5), sameValue, false); got != nil {
		t.Errorf("out-of-bounds start should yield nil, got %v", got)
	}
}

func TestFullyConnected(t *testing.T) {
	isLand := func(v int) bool { return v == 1 }

	tests := []struct {
		name string
		rows [][]int
		want bool
	}{
		{
			name: "single blob",
			rows: [][]int{
				{1, 1, 0},
				{0, 1, 0},
				{0, 1, 1},
			},
			want: true,
		},
		{
			name: "two components",
			rows: [][]int{
				{1, 0, 1},
				{0, 0, 0},
				{0, 0, 0},
			},
			want: false,
		},
		{
			name: "no matching cells is vacuously connected",
			rows: [][]int{
				{0, 0},
				{0, 0},
			},
			want: true,
		},
		{
			name: "single cell",
			rows: [][]int{
				{0, 1},
				{0, 0},
			},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows)
			if got := FullyConnected(g, isLand, false); got != tc.want {
				t.Errorf("FullyConnected() = %v, expected %v", got, tc.want)
			}
		})
	}
}

// unionFindConnected is a reference implementation used to cross-check the
// flood-fill answer on randomized grids.
func unionFindConnected(g *Grid[int], filter func(int) bool) bool {
	parent := make(map[Coord]Coord)
	var find func(Coord) Coord
	find = func(c Coord) Coord {
		if parent[c] != c {
			parent[c] = find(parent[c])
		}
		return parent[c]
	}
	union := func(a, b Coord) {
		parent[find(a)] = find(b)
	}

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if filter(g.Cells[r][c]) {
				parent[C(r, c)] = C(r, c)
			}
		}
	}
	for c := range parent {
		for _, n := range g.Neighbors(c, false) {
			if _, ok := parent[n]; ok {
				union(c, n)
			}
		}
	}

	roots := make(map[Coord]bool)
	for c := range parent {
		roots[find(c)] = true
	}
	return len(roots) <= 1
}

func TestFullyConnectedAgainstUnionFind(t *testing.T) {
	isLand := func(v int) bool { return v == 1 }
	rng := NewRand(1234)

	for trial := 0; trial < 200; trial++ {
		g := NewGrid(6, 6, 0)
		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				if rng.Float64() < 0.45 {
					g.Cells[r][c] = 1
				}
			}
		}
		got := FullyConnected(g, isLand, false)
		want := unionFindConnected(g, isLand)
		if got != want {
			t.Fatalf("trial %d: FullyConnected() = %v, union-find says %v\ngrid: %v",
				trial, got, want, g.Cells)
		}
	}
}
