// Package latinsquare builds random n×n Latin squares: grids in which every
// row and every column contains each of the symbols 1..n exactly once.
// These feed every puzzle whose solved form is a Latin square.
package latinsquare

import "github.com/vovakirdan/puzzle-forge/internal/core"

// Generate produces a random Latin square of order n. The first row is a
// shuffled permutation of 1..n, each following row is a cyclic left
// rotation of the previous one, and the row and column orders are then
// independently shuffled. Permuting rows or columns of a Latin square
// yields another Latin square, so validity is preserved by construction.
func Generate(n int, rng *core.SeededRand) *core.Grid[int] {
	base := make([]int, n)
	for i := range base {
		base[i] = i + 1
	}
	rng.Shuffle(n, func(i, j int) { base[i], base[j] = base[j], base[i] })

	rowOrder := rng.Perm(n)
	colOrder := rng.Perm(n)

	g := core.NewGrid(n, n, 0)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			// Row rowOrder[r] of the rotation pattern, column colOrder[c]:
			// a left rotation by k places symbol base[(col+k) mod n] at col.
			g.Cells[r][c] = base[(colOrder[c]+rowOrder[r])%n]
		}
	}
	return g
}
