package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Heuristic estimates the cost of moving from a to b.
type Heuristic func(a, b grid.Coordinate) float64

// Euclidean is the straight-line distance. Admissible and consistent for
// unit orthogonal and √2 diagonal steps.
func Euclidean(a, b grid.Coordinate) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Octile is the exact cost of an unobstructed 8-directional route:
// diagonal moves until aligned, then straight moves. Tighter than Euclidean
// and still admissible.
func Octile(a, b grid.Coordinate) float64 {
	dr := math.Abs(float64(a.Row - b.Row))
	dc := math.Abs(float64(a.Col - b.Col))
	return math.Max(dr, dc) + (math.Sqrt2-1)*math.Min(dr, dc)
}

// Zero always returns 0, turning the search into Dijkstra's algorithm.
func Zero(_, _ grid.Coordinate) float64 { return 0 }

// HeuristicByName resolves "euclidean", "octile" or "zero".
func HeuristicByName(name string) (Heuristic, error) {
	switch name {
	case "euclidean", "":
		return Euclidean, nil
	case "octile":
		return Octile, nil
	case "zero", "dijkstra":
		return Zero, nil
	default:
		return nil, fmt.Errorf("%w: unknown heuristic %q", ErrOptionViolation, name)
	}
}

// stepCost is 1 for orthogonal moves and √2 for diagonal moves.
func stepCost(d grid.Direction) float64 {
	if d.Diagonal() {
		return math.Sqrt2
	}
	return 1
}
