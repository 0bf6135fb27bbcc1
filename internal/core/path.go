package core

// ShortestPath runs an unweighted BFS from start to end over cells for
// which passable is true, and returns the shortest path as an ordered,
// non-repeating sequence of adjacent coordinates inclusive of both
// endpoints. Returns nil if either endpoint is out of bounds or blocked,
// or if end is unreachable. Ties between equal-length paths are broken by
// the fixed neighbor expansion order, so results are deterministic.
func ShortestPath[T any](g *Grid[T], start, end Coord, passable func(T) bool, diagonal bool) []Coord {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil
	}
	if !passable(g.At(start)) || !passable(g.At(end)) {
		return nil
	}
	if start == end {
		return []Coord{start}
	}

	prev := map[Coord]Coord{start: start}
	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur, diagonal) {
			if _, seen := prev[n]; seen || !passable(g.At(n)) {
				continue
			}
			prev[n] = cur
			if n == end {
				return backtrackPath(prev, start, end)
			}
			queue = append(queue, n)
		}
	}
	return nil
}

// backtrackPath rebuilds the start→end path from the predecessor map.
func backtrackPath(prev map[Coord]Coord, start, end Coord) []Coord {
	var rev []Coord
	for cur := end; ; cur = prev[cur] {
		rev = append(rev, cur)
		if cur == start {
			break
		}
	}
	path := make([]Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
