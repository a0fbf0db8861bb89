package gridio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// WriteResult prints the outcome message and, for FoundPath, the route one
// cell per line:
//
//	The destination cell is found
//
//	The Path is
//	(8,0)
//	...
func WriteResult(w io.Writer, outcome astar.Outcome, path []grid.Coordinate) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, outcome.Message())
	if outcome == astar.FoundPath {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "The Path is")
		for _, c := range path {
			fmt.Fprintln(bw, c)
		}
	}

	return bw.Flush()
}

// Map glyphs used by RenderMap.
const (
	GlyphOpen    = '.'
	GlyphBlocked = '#'
	GlyphPath    = '*'
	GlyphSource  = 'S'
	GlyphDest    = 'D'
)

// RenderMap draws g one row per line with the route overlaid.
// src and dest are drawn last so they stay visible on the route.
func RenderMap(w io.Writer, g *grid.Grid, path []grid.Coordinate, src, dest grid.Coordinate) error {
	canvas := make([][]byte, g.Rows())
	for r := range canvas {
		canvas[r] = make([]byte, g.Cols())
		for c := range canvas[r] {
			if g.Traversable(grid.Coordinate{Row: r, Col: c}) {
				canvas[r][c] = GlyphOpen
			} else {
				canvas[r][c] = GlyphBlocked
			}
		}
	}
	mark := func(c grid.Coordinate, glyph byte) {
		if g.InBounds(c) {
			canvas[c.Row][c.Col] = glyph
		}
	}
	for _, c := range path {
		mark(c, GlyphPath)
	}
	mark(src, GlyphSource)
	mark(dest, GlyphDest)

	bw := bufio.NewWriter(w)
	for _, row := range canvas {
		bw.Write(row)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
