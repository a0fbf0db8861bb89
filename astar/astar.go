package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// Search runs A* on g from src to dest.
//
// Preconditions, checked in order before any state is allocated
// (the first failing check decides the outcome):
//  1. src in bounds (InvalidSource), then dest in bounds (InvalidDestination).
//  2. src and dest traversable (Blocked).
//  3. src != dest (AlreadyAtDestination).
//
// Returns:
//
//   - Result with Outcome FoundPath or PathNotFound and the full cell table,
//     or a precondition Outcome with nil tables.
//   - err: ErrNilGrid or ErrOptionViolation; nil otherwise.
//
// Options customization:
//
//   - WithMode(ExitOnExtract): optimal termination instead of eager exit.
//   - WithHeuristic(h): replace the Euclidean estimate.
//   - WithMaxExpansions(n): stop after n expansions.
//   - WithOnExpand / WithOnRelax: observation hooks.
func Search(g *grid.Grid, src, dest grid.Coordinate, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{Outcome: PathNotFound}, cfg.err
	}
	if g == nil {
		return Result{Outcome: PathNotFound}, ErrNilGrid
	}

	res := Result{Source: src, Destination: dest}
	if outcome, ok := precheck(g, src, dest); !ok {
		res.Outcome = outcome
		return res, nil
	}

	r := &runner{
		g:       g,
		options: cfg,
		src:     src,
		dest:    dest,
		cells:   make([]CellRecord, g.Len()),
		closed:  make([]bool, g.Len()),
		open:    make(frontier, 0, g.Cols()+g.Rows()),
	}
	r.init()
	res.Outcome = r.process()
	res.Cells = r.cells
	res.Closed = r.closed
	res.Expanded = r.expanded
	res.Truncated = r.truncated
	res.g = g

	return res, nil
}

// precheck applies the early-exit checks. ok is false when one of them fired.
func precheck(g *grid.Grid, src, dest grid.Coordinate) (Outcome, bool) {
	if !g.InBounds(src) {
		return InvalidSource, false
	}
	if !g.InBounds(dest) {
		return InvalidDestination, false
	}
	if !g.Traversable(src) || !g.Traversable(dest) {
		return Blocked, false
	}
	if src == dest {
		return AlreadyAtDestination, false
	}
	return FoundPath, true
}

// runner holds the mutable state for a single search.
type runner struct {
	g         *grid.Grid // read-only
	options   Options
	src, dest grid.Coordinate
	cells     []CellRecord // row-major per-cell metadata
	closed    []bool       // finalized cells
	open      frontier
	seq       uint64 // next insertion number
	expanded  int
	truncated bool
}

// init resets every record to +Inf / NoParent and seeds the frontier with src at f = 0.
func (r *runner) init() {
	blank := unreached()
	for i := range r.cells {
		r.cells[i] = blank
	}
	r.cells[r.g.Index(r.src)] = CellRecord{F: 0, G: 0, H: 0, Parent: r.src}
	heap.Init(&r.open)
	r.push(r.src, 0)
}

func (r *runner) push(at grid.Coordinate, f float64) {
	heap.Push(&r.open, &frontierItem{at: at, f: f, seq: r.seq})
	r.seq++
}

// process is the main loop. It extracts the minimum-f cell, closes it and
// scans its neighbors until the destination is reached or the frontier is empty.
func (r *runner) process() Outcome {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*frontierItem)
		idx := r.g.Index(item.at)

		// Duplicate entry of a cell that was finalized through a cheaper push.
		if r.closed[idx] {
			continue
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			r.truncated = true
			return PathNotFound
		}

		r.closed[idx] = true
		r.expanded++
		r.options.OnExpand(item.at, r.cells[idx])

		if r.options.Mode == ExitOnExtract && item.at == r.dest {
			return FoundPath
		}
		if r.relax(item.at) {
			return FoundPath
		}
	}

	return PathNotFound
}

// relax scans the eight neighbors of cur in direction order and improves
// their records. It returns true when EagerExit sees the destination.
func (r *runner) relax(cur grid.Coordinate) bool {
	curRec := r.cells[r.g.Index(cur)]
	for _, d := range grid.Directions {
		nb := cur.Add(d)
		if !r.g.InBounds(nb) {
			continue
		}
		ni := r.g.Index(nb)
		newG := curRec.G + stepCost(d)

		if r.options.Mode == EagerExit && nb == r.dest {
			r.cells[ni] = CellRecord{F: newG, G: newG, H: 0, Parent: cur}
			return true
		}
		if r.closed[ni] || !r.g.Traversable(nb) {
			continue
		}

		newH := r.options.Heuristic(nb, r.dest)
		newF := newG + newH
		// Strictly better only; equal f keeps the first discovery.
		if newF >= r.cells[ni].F {
			continue
		}
		r.cells[ni] = CellRecord{F: newF, G: newG, H: newH, Parent: cur}
		r.push(nb, newF)
		r.options.OnRelax(cur, nb, r.cells[ni])
	}

	return false
}
