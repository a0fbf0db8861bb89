package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestReachableFrom_Diagonal confirms diagonal steps pass between two blocked flanks.
func TestReachableFrom_Diagonal(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 0},
		{0, 1},
	})
	require.NoError(t, err)

	seen := g.ReachableFrom(grid.Coordinate{Row: 0, Col: 0})
	assert.Equal(t, []bool{true, false, false, true}, seen)
}

// TestReachableFrom_Wall confirms a full row of blocked cells splits the grid.
func TestReachableFrom_Wall(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 1, 1},
		{0, 0, 0},
		{1, 1, 1},
	})
	require.NoError(t, err)

	seen := g.ReachableFrom(grid.Coordinate{Row: 2, Col: 0})
	for i, ok := range seen {
		c := g.CoordinateAt(i)
		assert.Equal(t, c.Row == 2, ok, "cell %v", c)
	}
}

// TestReachableFrom_BlockedStart returns an all-false table.
func TestReachableFrom_BlockedStart(t *testing.T) {
	g, err := grid.New([][]int{{0, 1}})
	require.NoError(t, err)

	assert.Equal(t, []bool{false, false}, g.ReachableFrom(grid.Coordinate{Row: 0, Col: 0}))
	assert.Equal(t, []bool{false, false}, g.ReachableFrom(grid.Coordinate{Row: 3, Col: 0}))
}

// TestComponents groups open cells by 8-connectivity.
func TestComponents(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 0, 0},
		{1, 1, 0, 0},
	})
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, []int{0, 5}, comps[0])
	assert.Equal(t, []int{3, 7}, comps[1])
	assert.Equal(t, []int{12, 13}, comps[2])
}

// TestComponents_AllBlocked yields no components.
func TestComponents_AllBlocked(t *testing.T) {
	g := grid.MustFromFlat(2, 2, []int{0, 0, 0, 0})
	assert.Empty(t, g.Components())
}
