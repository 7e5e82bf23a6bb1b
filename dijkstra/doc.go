// Package dijkstra provides an exhaustive uniform-cost shortest-path search
// over any astar.Environment with non-negative step costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source position to
//     every reachable position in O((V + E) log V) time.
//   - Solve calls Environment.Reset and returns one minimum-cost start→goal path.
//   - Supports optional path reconstruction, distance caps, and “impassable”
//     step thresholds.
//
// When to use:
//
//   - As the reference oracle for heuristic searches: astar.FindPath with an
//     admissible, consistent heuristic must return a path of the same cost.
//   - When no admissible heuristic exists for the environment.
//
// Error handling (sentinel errors):
//
//   - ErrNilEnvironment: a nil environment was passed.
//   - ErrNegativeWeight: Expand reported a negative or NaN step cost.
//   - ErrBadMaxDistance: (via panic) MaxDistance set to a negative value.
//   - ErrBadInfThreshold: (via panic) InfEdgeThreshold set to zero or a negative value.
//
// API reference:
//
//	func Dijkstra[P comparable](env astar.Environment[P], source P, opts ...Option) (dist map[P]float64, prev map[P]P, err error)
//	func Solve[P comparable](env astar.Environment[P], opts ...Option) (path []P, cost float64, found bool, err error)
//	func PathTo[P comparable](prev map[P]P, source, dest P) (path []P, ok bool)
//
// Thread safety:
//
//   - Each call owns its own state; the environment must not be mutated concurrently.
package dijkstra
