// Package grid models a rectangular occupancy map for path planning.
//
// What:
//
//   - Grid wraps a rows×cols table of cells, each traversable or blocked.
//   - Coordinate addresses a cell as (Row, Col), row-major.
//   - Directions lists the eight moves (N, S, E, W, NE, NW, SE, SW) in the
//     fixed order used by the search kernel.
//   - ReachableFrom and Components give 8-connected flood information.
//
// Why:
//
//   - Robotics and game maps: a frozen snapshot of the world the planner
//     can borrow without copying.
//   - A Grid is immutable once built, so one value may be shared read-only
//     by any number of concurrent searches.
//
// Encoding:
//
//   - Integer input follows the usual convention 1 = open, 0 = blocked.
//     Any value ≥ 1 is treated as traversable.
//
// Complexity:
//
//   - New, FromFlat:  O(R×C) time and memory (deep copy).
//   - InBounds, Traversable, Index, CoordinateAt: O(1).
//   - ReachableFrom, Components: O(R×C×8), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimensionMismatch: flat storage length differs from rows×cols.
package grid
