package gridio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

// Query is one named search request.
type Query struct {
	Name string
	Src  grid.Coordinate
	Dest grid.Coordinate
}

// Scenario is a grid plus the queries to run against it.
type Scenario struct {
	Grid    *grid.Grid
	Queries []Query
}

// scenarioDoc mirrors the YAML layout:
//
//	grid:
//	  - [1, 0, 1]
//	queries:
//	  - name: corner
//	    src: [2, 0]
//	    dest: [0, 2]
type scenarioDoc struct {
	Grid    [][]int    `yaml:"grid"`
	Queries []queryDoc `yaml:"queries"`
}

type queryDoc struct {
	Name string `yaml:"name"`
	Src  []int  `yaml:"src"`
	Dest []int  `yaml:"dest"`
}

// ReadScenario decodes a YAML scenario.
// Queries without a name are named "q<index>".
func ReadScenario(r io.Reader) (*Scenario, error) {
	var doc scenarioDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrNoGrid
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(doc.Grid) == 0 {
		return nil, ErrNoGrid
	}
	g, err := grid.New(doc.Grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	sc := &Scenario{Grid: g, Queries: make([]Query, 0, len(doc.Queries))}
	for i, q := range doc.Queries {
		src, err := pair(q.Src)
		if err != nil {
			return nil, fmt.Errorf("%w: query %d src: %w", ErrParse, i, err)
		}
		dest, err := pair(q.Dest)
		if err != nil {
			return nil, fmt.Errorf("%w: query %d dest: %w", ErrParse, i, err)
		}
		name := q.Name
		if name == "" {
			name = fmt.Sprintf("q%d", i)
		}
		sc.Queries = append(sc.Queries, Query{Name: name, Src: src, Dest: dest})
	}

	return sc, nil
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := ReadScenario(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

func pair(v []int) (grid.Coordinate, error) {
	if len(v) != 2 {
		return grid.Coordinate{}, fmt.Errorf("want [row, col], got %d values", len(v))
	}
	return grid.Coordinate{Row: v[0], Col: v[1]}, nil
}
