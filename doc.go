// Package gridpath plans routes on 2D occupancy grids with A*.
//
// 🚀 What is gridpath?
//
//	A small, deterministic path planner:
//		• grid/   – immutable occupancy Grid, Coordinate, 8-way Directions, components
//		• astar/  – Search, ReconstructPath, FindPath, outcome codes, options & hooks
//		• gridio/ – text & YAML loaders, result rendering, concurrent batches
//		• cmd/gridpath – CLI: search, batch, serve (HTTP + Prometheus metrics)
//
// ✨ Guarantees
//
//   - Same grid + same endpoints → same route, every time (ties go to the
//     earliest discovered cell)
//   - Straight steps cost 1, diagonal steps cost √2
//   - Outcomes are values, not errors: FoundPath, PathNotFound, InvalidSource,
//     InvalidDestination, Blocked, AlreadyAtDestination
//   - A Grid is read-only, so one map serves any number of goroutines
//
// Quick start:
//
//	g, _ := grid.New(rows)
//	path, outcome, err := astar.FindPath(g, grid.Coordinate{Row: 8}, grid.Coordinate{})
package gridpath
