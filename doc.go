// Package lvpath is a small toolkit for best-first path search on grid-like
// environments.
//
// It brings together:
//
//   - astar/          — A* search over any Environment (Reset / Expand), with
//     Manhattan, Chebyshev, Octile and Zero heuristics
//   - dijkstra/       — exhaustive uniform-cost search over the same Environment,
//     used as the optimality reference
//   - gridgraph/      — rectangular grids with walls and weighted cells as an
//     Environment, text/YAML map loading and ASCII rendering
//   - cmd/lvpath      — command-line solver and verifier
//
// Quick ASCII example:
//
//	S . .        S . .
//	. # #   →    * # #
//	. . G        * * G
//
// finds the cost-4 detour around the wall.
package lvpath
