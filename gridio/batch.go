package gridio

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// BatchResult is the answer to one Query.
type BatchResult struct {
	Query    Query
	Outcome  astar.Outcome
	Path     []grid.Coordinate
	Cost     float64
	Expanded int
	Elapsed  time.Duration
	Err      error
}

// RunBatch answers every query against g using at most workers goroutines
// (workers <= 0 means runtime.NumCPU()). Each search owns its own state and
// g is only read, so the grid is shared without locking.
// Results are returned in query order. Queries not started before ctx is
// done carry ctx.Err().
func RunBatch(ctx context.Context, g *grid.Grid, queries []Query, workers int, opts ...astar.Option) []BatchResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]BatchResult, len(queries))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, q := range queries {
		results[i].Query = q
		select {
		case <-ctx.Done():
			results[i].Outcome = astar.PathNotFound
			results[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, q Query) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = runOne(g, q, opts)
		}(i, q)
	}
	wg.Wait()

	return results
}

func runOne(g *grid.Grid, q Query, opts []astar.Option) BatchResult {
	start := time.Now()
	res, err := astar.Search(g, q.Src, q.Dest, opts...)
	out := BatchResult{
		Query:    q,
		Outcome:  res.Outcome,
		Cost:     res.Cost(),
		Expanded: res.Expanded,
		Err:      err,
	}
	if err == nil && res.Outcome == astar.FoundPath {
		out.Path = astar.ReconstructPath(res, q.Dest)
	}
	out.Elapsed = time.Since(start)

	return out
}
