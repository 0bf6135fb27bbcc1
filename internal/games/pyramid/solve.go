package pyramid

// state encodes a board position as two presence bitmasks plus the pile
// cursor: one bit per pyramid card, one bit per stock card. Small enough
// to be a map key, so every position is memoized.
type state struct {
	pyr    uint32
	stock  uint32
	cursor uint8
}

const (
	fullPyramid = uint32(1)<<PyramidCards - 1
	fullStock   = uint32(1)<<StockCards - 1
)

// Solvable reports whether the deal can be played to an empty pyramid.
// maxNodes caps the number of expanded states; past the cap the search
// gives up and reports false, keeping unsolvable deals from running away.
// Unsolvable input is an ordinary false, never an error.
func Solvable(d Deal, maxNodes int) bool {
	if maxNodes <= 0 {
		maxNodes = 1 << 17
	}
	s := &searcher{
		deal:     d,
		memo:     make(map[state]bool),
		maxNodes: maxNodes,
	}
	return s.solve(state{pyr: fullPyramid, stock: fullStock, cursor: 0})
}

type searcher struct {
	deal     Deal
	memo     map[state]bool
	nodes    int
	maxNodes int
}

// exposed reports whether pyramid card idx is present and uncovered.
func (s *searcher) exposed(pyr uint32, idx int) bool {
	if pyr&(1<<idx) == 0 {
		return false
	}
	l, r, ok := children(idx)
	if !ok {
		return true
	}
	return pyr&(1<<l) == 0 && pyr&(1<<r) == 0
}

// revealed returns the index of the current pile card: the first present
// stock card at or after the cursor.
func (s *searcher) revealed(st state) (int, bool) {
	for i := int(st.cursor); i < StockCards; i++ {
		if st.stock&(1<<i) != 0 {
			return i, true
		}
	}
	return 0, false
}

func (s *searcher) solve(st state) bool {
	if st.pyr == 0 {
		return true
	}
	if v, ok := s.memo[st]; ok {
		return v
	}
	if s.nodes >= s.maxNodes {
		return false
	}
	s.nodes++
	// Mark before recursing so revisiting the same position on the
	// current path reads as a dead end.
	s.memo[st] = false

	var open [PyramidCards]int
	openCount := 0
	for idx := 0; idx < PyramidCards; idx++ {
		if s.exposed(st.pyr, idx) {
			open[openCount] = idx
			openCount++
		}
	}

	// Moves in fixed priority order. Kings first: removing one can never
	// hurt, and trying it first shrinks the search sharply.
	for i := 0; i < openCount; i++ {
		idx := open[i]
		if s.deal.Pyramid[idx] != KingRank {
			continue
		}
		next := st
		next.pyr &^= 1 << idx
		if s.solve(next) {
			s.memo[st] = true
			return true
		}
	}

	// Pair two exposed pyramid cards.
	for i := 0; i < openCount; i++ {
		for j := i + 1; j < openCount; j++ {
			if s.deal.Pyramid[open[i]]+s.deal.Pyramid[open[j]] != PairSum {
				continue
			}
			next := st
			next.pyr &^= 1<<open[i] | 1<<open[j]
			if s.solve(next) {
				s.memo[st] = true
				return true
			}
		}
	}

	// Pair an exposed pyramid card with the revealed pile card.
	if top, ok := s.revealed(st); ok {
		for i := 0; i < openCount; i++ {
			if s.deal.Pyramid[open[i]]+s.deal.Stock[top] != PairSum {
				continue
			}
			next := st
			next.pyr &^= 1 << open[i]
			next.stock &^= 1 << top
			if s.solve(next) {
				s.memo[st] = true
				return true
			}
		}

		// Advance the pile cursor past the revealed card; once it passes the
		// last stock index, revealed() finds nothing and the move disappears.
		next := st
		next.cursor = uint8(top + 1)
		if s.solve(next) {
			s.memo[st] = true
			return true
		}
	}

	return false
}
