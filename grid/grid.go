package grid

// Grid is an immutable rows×cols occupancy map stored row-major.
// The zero value is not usable; build one with New or FromFlat.
type Grid struct {
	rows, cols int
	open       []bool
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// values[r][c] ≥ 1 marks (r,c) as traversable. The input is copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{rows: rows, cols: cols, open: make([]bool, rows*cols)}
	for r, row := range values {
		for c, v := range row {
			g.open[r*cols+c] = v >= 1
		}
	}

	return g, nil
}

// FromFlat constructs a Grid from row-major storage of exactly rows*cols cells.
// Returns ErrEmptyGrid if rows or cols is not positive and
// ErrDimensionMismatch if len(cells) != rows*cols.
func FromFlat(rows, cols int, cells []int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	g := &Grid{rows: rows, cols: cols, open: make([]bool, rows*cols)}
	for i, v := range cells {
		g.open[i] = v >= 1
	}

	return g, nil
}

// MustFromFlat is like FromFlat but panics on error.
// A size mismatch between declared dimensions and storage is a programming error.
func MustFromFlat(rows, cols int, cells []int) *Grid {
	g, err := FromFlat(rows, cols, cells)
	if err != nil {
		panic(err)
	}

	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows*cols, the size of any per-cell table over g.
func (g *Grid) Len() int { return len(g.open) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Traversable reports whether c is in bounds and not blocked.
func (g *Grid) Traversable(c Coordinate) bool {
	return g.InBounds(c) && g.open[g.Index(c)]
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// CoordinateAt converts a row-major index back to a Coordinate.
func (g *Grid) CoordinateAt(idx int) Coordinate {
	return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
}

// Values returns a fresh copy of the grid as 1 (open) / 0 (blocked) rows.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			if g.open[r*g.cols+c] {
				out[r][c] = 1
			}
		}
	}

	return out
}
