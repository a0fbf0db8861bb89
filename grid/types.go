package grid

import "fmt"

// Coordinate addresses a single cell by row and column.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the direction offset d.
func (c Coordinate) Add(d Direction) Coordinate {
	return Coordinate{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Direction is a single-step move on the grid.
type Direction struct {
	Name       string
	DRow, DCol int
}

// Diagonal reports whether the move changes both row and column.
func (d Direction) Diagonal() bool {
	return d.DRow != 0 && d.DCol != 0
}

// Directions holds the eight moves in expansion order:
// the four orthogonal moves first, then the four diagonals.
var Directions = [8]Direction{
	{Name: "N", DRow: -1, DCol: 0},
	{Name: "S", DRow: 1, DCol: 0},
	{Name: "E", DRow: 0, DCol: 1},
	{Name: "W", DRow: 0, DCol: -1},
	{Name: "NE", DRow: -1, DCol: 1},
	{Name: "NW", DRow: -1, DCol: -1},
	{Name: "SE", DRow: 1, DCol: 1},
	{Name: "SW", DRow: 1, DCol: -1},
}

// Adjacent reports whether b is one of the eight neighbors of a.
func Adjacent(a, b Coordinate) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}
