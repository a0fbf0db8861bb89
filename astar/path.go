package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// ReconstructPath walks parent links from dest back to the cell that is its
// own parent (the source) and returns the route in source-to-destination order.
//
// It does not modify res, so repeated calls return equal slices.
// It panics (wrapping ErrPathUnavailable) when res.Outcome != FoundPath,
// when dest is outside the table, or when the parent chain is broken or cyclic.
//
// Complexity: O(L) for a route of L cells.
func ReconstructPath(res Result, dest grid.Coordinate) []grid.Coordinate {
	if res.Outcome != FoundPath {
		panic(fmt.Errorf("%w: outcome is %s", ErrPathUnavailable, res.Outcome))
	}
	if res.g == nil || len(res.Cells) != res.g.Len() || !res.g.InBounds(dest) {
		panic(fmt.Errorf("%w: no cell table for %v", ErrPathUnavailable, dest))
	}

	var rev []grid.Coordinate
	at := dest
	for steps := 0; ; steps++ {
		if steps > len(res.Cells) {
			panic(fmt.Errorf("%w: parent chain from %v does not terminate", ErrPathUnavailable, dest))
		}
		rev = append(rev, at)
		parent := res.Cells[res.g.Index(at)].Parent
		if parent == at {
			break
		}
		if parent == NoParent || !res.g.InBounds(parent) {
			panic(fmt.Errorf("%w: %v has no parent", ErrPathUnavailable, at))
		}
		at = parent
	}

	path := make([]grid.Coordinate, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	return path
}

// PathCost sums step costs along path: 1 per orthogonal move and √2 per
// diagonal move. It panics if two consecutive cells are not adjacent.
func PathCost(path []grid.Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if !grid.Adjacent(a, b) {
			panic(fmt.Sprintf("astar: %v and %v are not adjacent", a, b))
		}
		if a.Row != b.Row && a.Col != b.Col {
			total += math.Sqrt2
		} else {
			total++
		}
	}

	return total
}

// FindPath runs Search and, on FoundPath, reconstructs the route.
// For every other outcome the returned path is nil.
func FindPath(g *grid.Grid, src, dest grid.Coordinate, opts ...Option) ([]grid.Coordinate, Outcome, error) {
	res, err := Search(g, src, dest, opts...)
	if err != nil {
		return nil, res.Outcome, err
	}
	if res.Outcome != FoundPath {
		return nil, res.Outcome, nil
	}

	return ReconstructPath(res, dest), res.Outcome, nil
}
