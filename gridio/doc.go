// Package gridio moves grids and search requests in and out of the process.
//
// Input:
//
//   - ReadText parses a plain grid: one row per line, cells separated by
//     spaces or commas, '#' comments and blank lines ignored.
//   - ReadScenario parses a YAML document holding a grid and named queries.
//   - LoadGrid and LoadScenario open a file; LoadGrid picks the format by
//     extension (.yaml/.yml vs anything else).
//
// Output:
//
//   - WriteResult prints an outcome and route as "(row,col)" lines.
//   - RenderMap draws the grid with the route overlaid.
//
// Batch:
//
//   - RunBatch answers many queries against one shared grid on a bounded
//     pool of goroutines; results keep the order of the queries.
//
// All parse failures wrap ErrParse.
package gridio
