package core

// ConnectedRegion flood-fills from start, collecting every cell reachable
// through cells v for which match(v, startValue) is true. Adjacency is
// orthogonal, or 8-way when diagonal is set. The start cell is always
// included. Runs in O(rows*cols).
func ConnectedRegion[T any](g *Grid[T], start Coord, match func(v, startValue T) bool, diagonal bool) []Coord {
	if !g.InBounds(start) {
		return nil
	}
	startValue := g.At(start)
	visited := map[Coord]bool{start: true}
	queue := []Coord{start}
	region := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur, diagonal) {
			if visited[n] || !match(g.At(n), startValue) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
			region = append(region, n)
		}
	}
	return region
}

// FullyConnected reports whether all cells satisfying filter form a single
// connected region: one flood fill from any matching cell must reach every
// matching cell. Vacuously true when no cell matches.
func FullyConnected[T any](g *Grid[T], filter func(T) bool, diagonal bool) bool {
	var first Coord
	total := 0
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if filter(g.Cells[r][c]) {
				if total == 0 {
					first = C(r, c)
				}
				total++
			}
		}
	}
	if total == 0 {
		return true
	}
	region := ConnectedRegion(g, first, func(v, _ T) bool { return filter(v) }, diagonal)
	return len(region) == total
}
