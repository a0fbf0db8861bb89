// Package astar implements A* shortest-path search on a grid.Grid with
// 8-directional movement.
//
// Overview:
//
//   - Search expands cells in order of f = g + h, where g is the cost so far
//     and h is a heuristic estimate to the destination (Euclidean by default).
//   - Orthogonal steps cost 1, diagonal steps cost √2. A diagonal step only
//     needs its target cell open; the two flanking cells may be blocked.
//   - Neighbors are scanned in the fixed order N, S, E, W, NE, NW, SE, SW.
//   - Ties on f are broken by insertion order (earliest pushed wins), so the
//     same inputs always yield the same route.
//
// Outcomes:
//
// Precondition failures and "no route" are ordinary results, reported as an
// Outcome rather than an error: InvalidSource, InvalidDestination, Blocked,
// AlreadyAtDestination, PathNotFound, FoundPath. The checks run in that order
// before any search state is allocated. Errors are returned only for misuse
// (nil grid, invalid option).
//
// Termination modes:
//
//   - EagerExit (default): stop as soon as the destination is seen as a
//     neighbor of the cell being expanded. This reproduces the behavior of the
//     classic array-based kernels. The route is usually but not always optimal:
//     the expanding cell's g is not guaranteed minimal for the destination.
//   - ExitOnExtract: treat the destination like any other cell and stop only
//     when it is extracted from the frontier. With an admissible heuristic
//     the returned route has minimal cost.
//
// Path reconstruction:
//
// Search returns a per-cell table of CellRecord values. ReconstructPath walks
// parent links from the destination back to the source (whose parent is
// itself) and returns the route source-first. It panics when called on a
// result whose Outcome is not FoundPath.
//
// Complexity:
//
//   - Time:  O(N log N) with N = rows×cols (each relaxation pushes one heap entry,
//     at most 8 per expanded cell).
//   - Space: O(N) for the cell table, the closed table and the frontier.
//
// Thread safety:
//
// Each Search call owns its state. A *grid.Grid is read-only and may be shared
// by concurrent searches.
package astar
