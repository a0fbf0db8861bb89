package astar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// referenceRows is the classic 9×10 demo map. Row 3 is a wall with
// openings at columns 2, 4 and 9.
var referenceRows = [][]int{
	{1, 0, 1, 1, 1, 1, 0, 1, 1, 1},
	{1, 1, 1, 0, 1, 1, 1, 0, 1, 1},
	{1, 1, 1, 0, 1, 1, 0, 1, 0, 1},
	{0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
	{1, 1, 1, 0, 1, 1, 1, 0, 1, 0},
	{1, 0, 1, 1, 1, 1, 0, 1, 0, 0},
	{1, 0, 0, 0, 0, 1, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 1, 0, 1, 1, 1},
	{1, 1, 1, 0, 0, 0, 1, 0, 0, 1},
}

// referenceGrid builds the demo map; if sealed, row 3 is fully blocked.
func referenceGrid(t testing.TB, sealed bool) *grid.Grid {
	t.Helper()
	rows := make([][]int, len(referenceRows))
	for i, row := range referenceRows {
		rows[i] = append([]int(nil), row...)
	}
	if sealed {
		rows[3] = []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	}
	g, err := grid.New(rows)
	require.NoError(t, err)

	return g
}

// openGrid returns a rows×cols grid with every cell traversable.
func openGrid(t testing.TB, rows, cols int) *grid.Grid {
	t.Helper()
	cells := make([]int, rows*cols)
	for i := range cells {
		cells[i] = 1
	}

	return grid.MustFromFlat(rows, cols, cells)
}

func at(r, c int) grid.Coordinate { return grid.Coordinate{Row: r, Col: c} }
