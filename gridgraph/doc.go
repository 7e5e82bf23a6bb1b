// Package gridgraph treats a 2D grid of cells as a search environment for
// astar.FindPath and dijkstra.Solve.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable PassThreshold.
//     Cells below it are walls; a passable cell's value is the cost of entering it.
//   - Implements astar.Environment[astar.Point]: Reset returns the configured
//     start and goal, Expand returns passable neighbours with their step costs.
//   - Identifies connected components of passable cells, so an unreachable
//     goal can be explained without searching.
//   - Parses maps from text or YAML and renders paths as ASCII.
//
// Map alphabet:
//
//	#      wall
//	.      open cell, cost 1
//	1..9   weighted cell, cost = digit
//	S, G   start and goal (cost 1)
//
// Complexity:
//
//   - Expand:              O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - Render:              O(W×H + len(path)).
//
// Options:
//
//   - GridOptions.PassThreshold: minimum value considered passable (≥ 1).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, diagonal cost ×√2).
//   - GridOptions.Start, GridOptions.Goal: endpoints returned by Reset.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: PassThreshold < 1.
//   - ErrOutOfBounds, ErrBlockedCell: endpoint or expanded cell is invalid.
//   - ErrBadMap: malformed text or YAML map.
//   - ErrNotAdjacent: PathCost found consecutive cells that are not neighbours.
package gridgraph
