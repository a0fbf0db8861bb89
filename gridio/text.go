package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// MaxLineBytes bounds a single text row (about two million cells).
const MaxLineBytes = 4 << 20

// ReadText parses a whitespace- or comma-separated grid of integers.
// Every non-empty, non-comment line is one row.
func ReadText(r io.Reader) (*grid.Grid, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: cell %d: %q is not an integer", ErrParse, line, i+1, f)
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d: %d cells, want %d", ErrParse, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrParse, line+1, err)
	}

	g, err := grid.New(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return g, nil
}

// LoadGrid reads a grid from path. Files ending in .yaml or .yml are read
// as scenarios and their grid section is returned; anything else is text.
func LoadGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		sc, err := ReadScenario(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return sc.Grid, nil
	default:
		g, err := ReadText(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	}
}

// ParseCoordinate parses "row,col" (spaces allowed) into a Coordinate.
func ParseCoordinate(s string) (grid.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Coordinate{}, fmt.Errorf("%w: coordinate %q must be row,col", ErrParse, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Coordinate{}, fmt.Errorf("%w: coordinate %q: bad row", ErrParse, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Coordinate{}, fmt.Errorf("%w: coordinate %q: bad col", ErrParse, s)
	}

	return grid.Coordinate{Row: r, Col: c}, nil
}
