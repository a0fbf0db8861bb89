package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// New, FromFlat and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 0}, {1}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.values)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.values, err, tc.err)
			}
		})
	}
}

// TestFromFlat_Errors covers declared sizes that disagree with storage.
func TestFromFlat_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		cells      []int
		err        error
	}{
		{"ZeroRows", 0, 3, nil, grid.ErrEmptyGrid},
		{"NegativeCols", 2, -1, nil, grid.ErrEmptyGrid},
		{"TooShort", 2, 2, []int{1, 1, 1}, grid.ErrDimensionMismatch},
		{"TooLong", 1, 2, []int{1, 1, 1}, grid.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromFlat(tc.rows, tc.cols, tc.cells)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestMustFromFlat_Panics ensures a dimension mismatch fails loudly.
func TestMustFromFlat_Panics(t *testing.T) {
	require.PanicsWithValue(t, grid.ErrDimensionMismatch, func() {
		grid.MustFromFlat(3, 3, []int{1, 1})
	})
	require.NotPanics(t, func() {
		grid.MustFromFlat(1, 2, []int{1, 0})
	})
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, 6, g.Len())

	valid := []grid.Coordinate{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []grid.Coordinate{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

// TestTraversable verifies the ≥1 open encoding and out-of-bounds handling.
func TestTraversable(t *testing.T) {
	g, err := grid.New([][]int{{1, 0, 7}, {-2, 1, 0}})
	require.NoError(t, err)

	require.True(t, g.Traversable(grid.Coordinate{Row: 0, Col: 0}))
	require.False(t, g.Traversable(grid.Coordinate{Row: 0, Col: 1}))
	require.True(t, g.Traversable(grid.Coordinate{Row: 0, Col: 2}), "values above 1 are open")
	require.False(t, g.Traversable(grid.Coordinate{Row: 1, Col: 0}), "negative values are blocked")
	require.False(t, g.Traversable(grid.Coordinate{Row: 5, Col: 5}))
}

// TestIndexRoundTrip checks Index and CoordinateAt are inverse on every cell.
func TestIndexRoundTrip(t *testing.T) {
	g := grid.MustFromFlat(3, 4, make([]int, 12))
	for i := 0; i < g.Len(); i++ {
		c := g.CoordinateAt(i)
		require.True(t, g.InBounds(c))
		require.Equal(t, i, g.Index(c))
	}
	require.Equal(t, grid.Coordinate{Row: 2, Col: 1}, g.CoordinateAt(9))
}

// TestNew_CopiesInput ensures later mutation of the caller's slice does not leak in.
func TestNew_CopiesInput(t *testing.T) {
	values := [][]int{{1, 1}, {1, 1}}
	g, err := grid.New(values)
	require.NoError(t, err)

	values[0][0] = 0
	require.True(t, g.Traversable(grid.Coordinate{Row: 0, Col: 0}))

	out := g.Values()
	out[1][1] = 0
	require.True(t, g.Traversable(grid.Coordinate{Row: 1, Col: 1}))
	require.Equal(t, [][]int{{1, 1}, {1, 1}}, g.Values())
}

//----------------------------------------------------------------------------//
// Coordinate and Direction Tests
//----------------------------------------------------------------------------//

func TestDirections_Order(t *testing.T) {
	names := make([]string, 0, len(grid.Directions))
	diagonals := 0
	for _, d := range grid.Directions {
		names = append(names, d.Name)
		if d.Diagonal() {
			diagonals++
		}
	}
	require.Equal(t, []string{"N", "S", "E", "W", "NE", "NW", "SE", "SW"}, names)
	require.Equal(t, 4, diagonals)
	for _, d := range grid.Directions[:4] {
		require.False(t, d.Diagonal(), d.Name)
	}
}

func TestAdjacent(t *testing.T) {
	origin := grid.Coordinate{Row: 4, Col: 4}
	for _, d := range grid.Directions {
		require.True(t, grid.Adjacent(origin, origin.Add(d)), d.Name)
	}
	require.False(t, grid.Adjacent(origin, origin))
	require.False(t, grid.Adjacent(origin, grid.Coordinate{Row: 6, Col: 4}))
	require.Equal(t, "(4,4)", origin.String())
}
