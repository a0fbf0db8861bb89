package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkComponents measures Components on a random 500×500 grid
// with roughly 60% open cells.
// Complexity: O(R×C×8)
func BenchmarkComponents(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	cells := make([]int, n*n)
	for i := range cells {
		if rng.Intn(10) < 6 {
			cells[i] = 1
		}
	}
	g := grid.MustFromFlat(n, n, cells)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}
