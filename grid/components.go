package grid

// ReachableFrom marks every traversable cell reachable from start by
// 8-directional moves, with the same diagonal rule as the search kernel:
// a diagonal step only needs the target cell open.
// The result is indexed row-major. If start is not traversable, nothing is marked.
//
// Time:   O(R·C·8).
// Memory: O(R·C).
func (g *Grid) ReachableFrom(start Coordinate) []bool {
	seen := make([]bool, len(g.open))
	if !g.Traversable(start) {
		return seen
	}
	g.flood(g.Index(start), seen, nil)

	return seen
}

// Components finds all 8-connected regions of traversable cells.
// Each component is a slice of row-major indices in BFS order;
// components are ordered by their first cell in row-major order.
//
// Time:   O(R·C·8).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.open))
	var comps [][]int
	for i, ok := range g.open {
		if !ok || seen[i] {
			continue
		}
		comps = append(comps, g.flood(i, seen, []int{}))
	}

	return comps
}

// flood runs a BFS from idx over open cells, marking seen.
// When comp is non-nil the visited indices are appended to it and returned.
func (g *Grid) flood(idx int, seen []bool, comp []int) []int {
	queue := []int{idx}
	seen[idx] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if comp != nil {
			comp = append(comp, u)
		}
		uc := g.CoordinateAt(u)
		for _, d := range Directions {
			vc := uc.Add(d)
			if !g.Traversable(vc) {
				continue
			}
			vi := g.Index(vc)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return comp
}
