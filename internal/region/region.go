// Package region partitions a square grid into connected regions by
// randomized growth: each region starts from a random seed cell and
// repeatedly annexes an unassigned orthogonal neighbor, so 4-connectivity
// holds by construction.
package region

import "github.com/vovakirdan/puzzle-forge/internal/core"

// Unassigned marks a cell not yet owned by any region.
const Unassigned = -1

// Region is an id plus the ordered list of member coordinates, in the
// order they were annexed.
type Region struct {
	ID    int
	Cells []core.Coord
}

// Partition is the result of a grow run: a grid of region ids and the
// per-region member lists.
type Partition struct {
	Grid    *core.Grid[int]
	Regions []Region
}

// Generate partitions a size×size grid into numRegions connected regions.
// It seeds numRegions distinct random cells, then repeatedly picks a
// random region that still has unassigned orthogonal neighbors and annexes
// one of them at random, until every cell is assigned.
//
// Adversarial seed placement can fully enclose a pocket no region can
// reach once growth elsewhere walls it off; rather than spinning forever,
// a starved pocket is reseeded as a fresh region appended to the result,
// so len(Regions) may exceed numRegions in that degenerate case.
func Generate(size, numRegions int, rng *core.SeededRand) Partition {
	if numRegions < 1 {
		numRegions = 1
	}
	if numRegions > size*size {
		numRegions = size * size
	}

	g := core.NewGrid(size, size, Unassigned)
	regions := make([]Region, 0, numRegions)

	// Distinct seed cells, one per region.
	seedPositions := rng.Perm(size * size)[:numRegions]
	for id, p := range seedPositions {
		at := core.C(p/size, p%size)
		g.Set(at, id)
		regions = append(regions, Region{ID: id, Cells: []core.Coord{at}})
	}

	remaining := size*size - numRegions
	for remaining > 0 {
		id := rng.Intn(len(regions))
		frontier := growthFrontier(g, regions[id])
		if len(frontier) == 0 {
			// This region may simply be surrounded by other regions; only
			// when every region is blocked is a pocket truly starved.
			if !anyCanGrow(g, regions) {
				at := reseedPocket(g, rng)
				newID := len(regions)
				g.Set(at, newID)
				regions = append(regions, Region{ID: newID, Cells: []core.Coord{at}})
				remaining--
			}
			continue
		}
		at := frontier[rng.Intn(len(frontier))]
		g.Set(at, regions[id].ID)
		regions[id].Cells = append(regions[id].Cells, at)
		remaining--
	}

	return Partition{Grid: g, Regions: regions}
}

// growthFrontier collects the unassigned orthogonal neighbors of a region.
func growthFrontier(g *core.Grid[int], reg Region) []core.Coord {
	seen := make(map[core.Coord]bool)
	var out []core.Coord
	for _, c := range reg.Cells {
		for _, n := range g.Neighbors(c, false) {
			if g.At(n) == Unassigned && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

func anyCanGrow(g *core.Grid[int], regions []Region) bool {
	for i := range regions {
		if len(growthFrontier(g, regions[i])) > 0 {
			return true
		}
	}
	return false
}

// reseedPocket picks one cell of the smallest unassigned pocket as the
// seed of a replacement region.
func reseedPocket(g *core.Grid[int], rng *core.SeededRand) core.Coord {
	visited := make(map[core.Coord]bool)
	var best []core.Coord
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			at := core.C(r, c)
			if g.At(at) != Unassigned || visited[at] {
				continue
			}
			pocket := core.ConnectedRegion(g, at, func(v, _ int) bool { return v == Unassigned }, false)
			for _, p := range pocket {
				visited[p] = true
			}
			if best == nil || len(pocket) < len(best) {
				best = pocket
			}
		}
	}
	return best[rng.Intn(len(best))]
}
